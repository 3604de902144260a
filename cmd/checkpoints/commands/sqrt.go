package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func sqrtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <n>",
		Short: "Find the exact integer square root of n (1-10000)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usageError{fmt.Errorf("not an integer: %q", args[0])}
			}
			r, err := appCtx.Roots.SquareRoot(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}
