package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"settle/internal/core"
	"settle/internal/sims/tiles"
)

func newTilesCmd(opts *globalOptions) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "tiles FILE",
		Short: "Flip hex tiles and run the floor for a number of days",
		Long: `Each line of FILE is a direction stream over e, se, sw, w, nw and ne
walked from the reference tile; the tile reached is flipped. The floor is
then evolved for the configured number of days.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]string{}
			if cmd.Flags().Changed("days") {
				overrides["days"] = strconv.Itoa(days)
			}
			var flipped int
			res, err := opts.runFile(cmd, "tiles", args[0], overrides, func(sim core.Sim) {
				flipped = sim.Count()
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d tiles remain flipped\n", flipped)
			fmt.Fprintf(out, "After %d days, %d tiles are black\n", res.Generations, res.Count)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", tiles.DefaultDays, "generations to run")
	return cmd
}
