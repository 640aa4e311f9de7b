package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"settle/internal/sims/seating"
)

func newGenerateCmd() *cobra.Command {
	var (
		rows, columns int
		seed          int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random seating layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows <= 0 || columns <= 0 {
				return fmt.Errorf("rows and columns must be positive, got %dx%d", rows, columns)
			}
			l, err := seating.Generate(rows, columns, seed, seating.DefaultConfig())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), l.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 90, "number of rows")
	cmd.Flags().IntVar(&columns, "columns", 90, "number of columns")
	cmd.Flags().Int64Var(&seed, "seed", 42, "seed for the layout")
	return cmd
}
