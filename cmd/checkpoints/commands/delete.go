package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"checkpoints/internal/domain"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <car-id>",
		Short: "Remove a stored car",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.CarID(args[0])
			if err := appCtx.Car.DeleteCar(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Car %s deleted.\n", id)
			return nil
		},
	}
}
