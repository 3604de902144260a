package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all stored cars",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cars, err := appCtx.Car.ListCars(cmd.Context())
			if err != nil {
				return err
			}
			if len(cars) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no cars")
				return nil
			}
			for _, c := range cars {
				if err := printCar(cmd.OutOrStdout(), c); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
