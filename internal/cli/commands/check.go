package commands

import (
	"fmt"

	"github.com/katalvlaran/calibrate/equation"
	"github.com/katalvlaran/calibrate/search"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check EQUATION",
		Short: "Evaluate a single equation",
		Long: `Evaluate one equation with both operator sets and print the first
operator sequence found, e.g.

  calibrate check "7290: 6 8 6 15"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			eq, err := equation.Parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, pass := range []struct {
				name   string
				concat bool
			}{{"part1", false}, {"part2", true}} {
				res := search.Search(eq.Target, eq.View(),
					search.WithConcatenationEnabled(pass.concat),
					search.WithPruning(cfg.Prune),
				)
				if !res.Satisfiable {
					_, _ = fmt.Fprintf(out, "%s: unsatisfiable\n", pass.name)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s: %d = %s\n", pass.name, eq.Target, res.Expression(eq.View()))
			}
			return nil
		},
	}
}
