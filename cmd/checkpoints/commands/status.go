package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"checkpoints/internal/crypto"
	"checkpoints/internal/domain"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <car-id>",
		Short: "Print a stored car",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			car, err := appCtx.Car.GetCar(cmd.Context(), domain.CarID(args[0]))
			if err != nil {
				return err
			}
			return printCar(cmd.OutOrStdout(), car)
		},
	}
}

func printCar(w io.Writer, car domain.Car) error {
	raw, err := json.Marshal(car)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s  model=%s seats=%d gear=%d fingerprint=%s\n",
		car.ID, car.Model, car.Seats, car.Gear, crypto.Fingerprint(raw))
	return err
}
