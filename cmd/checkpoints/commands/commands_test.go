package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkpoints/internal/app"
	"checkpoints/internal/domain"
)

// run executes the CLI with args against a private home directory.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(app.EnvHome, "")
	t.Setenv(app.EnvLogLevel, "")
	t.Setenv(app.EnvLogFormat, "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--home", home, "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func createdID(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if id, ok := strings.CutPrefix(line, "ID: "); ok {
			return strings.TrimSpace(id)
		}
	}
	t.Fatalf("no ID in output %q", out)
	return ""
}

func TestNewShiftStatus(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "new", "--model", "Clio", "--seats", "4", "--gear", "9")
	require.NoError(t, err)
	id := createdID(t, out)

	out, err = run(t, home, "shift", id, "UP", "--times", "3")
	require.ErrorIs(t, err, domain.AboveMax)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Equal(t, "About to move gear up\nAbout to move gear up\nGear 9 -> 10\nGear cannot be above 10\n", out)

	out, err = run(t, home, "shift", id, "down")
	require.NoError(t, err)
	assert.Contains(t, out, "Gear 10 -> 9")

	out, err = run(t, home, "status", id)
	require.NoError(t, err)
	assert.Contains(t, out, "model=Clio seats=4 gear=9")
	assert.Regexp(t, `fingerprint=[0-9a-f]{12}\n$`, out)

	out, err = run(t, home, "list")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, id))
}

func TestNew_UsesConfigDefaults(t *testing.T) {
	home := t.TempDir()
	cfg := app.DefaultConfig()
	cfg.Defaults = app.DefaultsConfig{Model: "Twingo", Seats: 4, Gear: 3}
	require.NoError(t, cfg.Save(home+"/"+app.ConfigFilename))

	out, err := run(t, home, "new")
	require.NoError(t, err)
	id := createdID(t, out)

	out, err = run(t, home, "status", id)
	require.NoError(t, err)
	assert.Contains(t, out, "model=Twingo seats=4 gear=3")
}

func TestUsageErrors(t *testing.T) {
	home := t.TempDir()

	cases := [][]string{
		{"bogus"},
		{"bogus", "status"},
		{"shift", "car", "sideways"},
		{"shift", "car"},
		{"sqrt", "abc"},
		{"new", "--bogus"},
		{"shift", "car", "up", "--times", "0"},
	}
	for _, args := range cases {
		_, err := run(t, home, args...)
		require.Error(t, err, args)
		assert.Equal(t, ExitUsageError, ExitCode(err), args)
	}
}

func TestRuntimeErrors(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "status", "missing")
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
	assert.Equal(t, ExitFailure, ExitCode(err))

	_, err = run(t, home, "new", "--gear", "11")
	assert.ErrorIs(t, err, domain.OutOfRange)
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestShift_BelowMinMessage(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "new", "--gear", "0")
	require.NoError(t, err)
	id := createdID(t, out)

	out, err = run(t, home, "shift", id, "down")
	require.ErrorIs(t, err, domain.BelowMin)
	assert.Equal(t, "About to move gear down\nGear cannot be below 0\n", out)
}

func TestDelete(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "new", "--model", "Clio")
	require.NoError(t, err)
	id := createdID(t, out)

	out, err = run(t, home, "delete", id)
	require.NoError(t, err)
	assert.Equal(t, "Car "+id+" deleted.\n", out)

	_, err = run(t, home, "status", id)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
	assert.Equal(t, ExitFailure, ExitCode(err))

	out, err = run(t, home, "list")
	require.NoError(t, err)
	assert.Equal(t, "no cars\n", out)

	_, err = run(t, home, "delete", id)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
	assert.Equal(t, ExitFailure, ExitCode(err))

	_, err = run(t, home, "delete")
	assert.Equal(t, ExitUsageError, ExitCode(err))
}

func TestSqrt(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "sqrt", "16")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	_, err = run(t, home, "sqrt", "2")
	assert.ErrorIs(t, err, domain.NoRoot)

	_, err = run(t, home, "sqrt", "10001")
	assert.ErrorIs(t, err, domain.OutOfBounds)
}

func TestDemo(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "demo")
	require.NoError(t, err)
	want := `4
3
--- Car starting with gear 4 -----
About to move gear up
After moving gear up one: 5
About to move gear down
About to move gear down
After moving gear down two: 3
--- Car starting with gear 10 -----
About to move gear up
Gear cannot be above 10
--- Car starting with gear 0 -----
About to move gear down
Gear cannot be below 0
`
	assert.Equal(t, want, out)

	out, err = run(t, home, "list")
	require.NoError(t, err)
	assert.Equal(t, "no cars\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(domain.NoRoot))
	assert.Equal(t, ExitUsageError, ExitCode(usageError{domain.ErrUnknownDirection}))
}
