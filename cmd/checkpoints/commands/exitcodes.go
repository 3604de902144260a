package commands

import "errors"

// Exit codes returned by the checkpoints CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (rejected shift, missing car, no root, etc.).
	ExitFailure = 1

	// ExitUsageError indicates bad arguments, flags or configuration.
	ExitUsageError = 2
)

// usageError marks errors caused by how the CLI was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsageError
	}
	return ExitFailure
}
