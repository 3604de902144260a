package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"checkpoints/internal/domain"
	carsvc "checkpoints/internal/services/car"
	"checkpoints/internal/store"
)

// demoCmd replays the square root and gearbox walkthroughs against an
// in-memory store, so it never touches --home.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the square root and gearbox scenarios in memory",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			for _, n := range []int{16, 9} {
				r, err := appCtx.Roots.SquareRoot(ctx, n)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, r)
			}

			cars := carsvc.New(store.NewMemoryCarStore(), appCtx.Logger)
			scenarios := []struct {
				start int
				steps []demoStep
			}{
				{4, []demoStep{{domain.Up, 1}, {domain.Down, 2}}},
				{10, []demoStep{{domain.Up, 1}}},
				{0, []demoStep{{domain.Down, 1}}},
			}
			for _, sc := range scenarios {
				if err := runDemoCar(ctx, out, cars, sc.start, sc.steps); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type demoStep struct {
	dir   domain.Direction
	times int
}

func runDemoCar(ctx context.Context, out io.Writer, cars domain.CarService, start int, steps []demoStep) error {
	car, err := cars.CreateCar(ctx, "Peugeot", 5, start)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "--- Car starting with gear %d -----\n", car.Gear)

	announce := func(d domain.Direction, _ int) { fmt.Fprintf(out, "About to move gear %s\n", d) }
	for _, st := range steps {
		res, err := cars.ShiftGear(ctx, car.ID, st.dir, st.times, announce)
		if msg, ok := gearLimitMessage(err); ok {
			fmt.Fprintln(out, msg)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "After moving gear %s %s: %d\n", st.dir, countWord(st.times), res.To)
	}
	return nil
}

var countWords = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

func countWord(n int) string {
	if n >= 0 && n < len(countWords) {
		return countWords[n]
	}
	return fmt.Sprint(n)
}
