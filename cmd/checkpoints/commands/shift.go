package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"checkpoints/internal/domain"
)

// shift <car-id> <up|down>: move the car's gear, printing each attempt.
func shiftCmd() *cobra.Command {
	var times int
	cmd := &cobra.Command{
		Use:   "shift <car-id> <up|down>",
		Short: "Shift a car's gear up or down",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.CarID(args[0])
			dir, err := domain.ParseDirection(args[1])
			if err != nil {
				return usageError{err}
			}
			if times < 1 {
				return usageError{fmt.Errorf("--times must be at least 1")}
			}

			out := cmd.OutOrStdout()
			res, err := appCtx.Car.ShiftGear(cmd.Context(), id, dir, times,
				func(d domain.Direction, _ int) {
					fmt.Fprintf(out, "About to move gear %s\n", d)
				})
			if res.To != res.From {
				fmt.Fprintf(out, "Gear %d -> %d\n", res.From, res.To)
			}
			if msg, ok := gearLimitMessage(err); ok {
				fmt.Fprintln(out, msg)
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&times, "times", "n", 1, "number of single-step shifts")
	return cmd
}

// gearLimitMessage renders a rejected shift the way users read it,
// e.g. "Gear cannot be above 10".
func gearLimitMessage(err error) (string, bool) {
	var gerr domain.GearError
	if !errors.As(err, &gerr) {
		return "", false
	}
	switch gerr {
	case domain.AboveMax:
		return fmt.Sprintf("Gear cannot be above %d", domain.MaxGear), true
	case domain.BelowMin:
		return fmt.Sprintf("Gear cannot be below %d", domain.MinGear), true
	}
	return "", false
}
