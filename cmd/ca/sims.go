package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"settle/internal/core"
)

func newSimsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sims",
		Short: "List the available automata and their default parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.Names() {
				sim, err := core.Sims()[name](nil, strings.NewReader(""))
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintln(out, name)
				for _, g := range sim.Parameters().Groups {
					if g.Summary != "" {
						fmt.Fprintf(out, "  %s: %s\n", g.Name, g.Summary)
					} else {
						fmt.Fprintf(out, "  %s\n", g.Name)
					}
					for _, p := range g.Params {
						fmt.Fprintf(out, "    %s=%s\t%s\n", p.Key, p.Value, p.Description)
					}
				}
			}
			return nil
		},
	}
}
