package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	var (
		model string
		seats int
		gear  int
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a car and store it",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := appCtx.Config.Defaults
			if !cmd.Flags().Changed("model") {
				model = d.Model
			}
			if !cmd.Flags().Changed("seats") {
				seats = d.Seats
			}
			if !cmd.Flags().Changed("gear") {
				gear = d.Gear
			}

			car, err := appCtx.Car.CreateCar(cmd.Context(), model, seats, gear)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Car created.\nID: %s\n", car.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "car model (default from config)")
	cmd.Flags().IntVar(&seats, "seats", 0, "number of seats (default from config)")
	cmd.Flags().IntVar(&gear, "gear", 0, "starting gear, 0-10 (default from config)")
	return cmd
}
