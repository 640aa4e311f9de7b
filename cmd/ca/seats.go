package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"settle/internal/sims/seating"
)

func newSeatsCmd(opts *globalOptions) *cobra.Command {
	var (
		policy  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "seats FILE [los]",
		Short: "Run the seating layout until no seat changes",
		Long: `Reads a seating layout ('.' floor, 'L' empty seat, '#' occupied seat)
and reports the number of occupied seats once the layout stops changing.
A trailing "los" argument selects the line-of-sight policy.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]string{}
			if len(args) == 2 {
				if args[1] != "los" {
					return fmt.Errorf("unknown mode %q (want \"los\")", args[1])
				}
				overrides["policy"] = seating.LineOfSight.String()
			}
			if cmd.Flags().Changed("policy") {
				overrides["policy"] = policy
			}
			if cmd.Flags().Changed("workers") {
				overrides["workers"] = strconv.Itoa(workers)
			}

			res, err := opts.runFile(cmd, "seating", args[0], overrides, nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Occupied seats: %d\n", res.Count)
			return nil
		},
	}
	cmd.Flags().StringVar(&policy, "policy", "adjacent", "neighbor policy: adjacent or los")
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines sharing each read phase")
	return cmd
}
