package commands

import (
	"fmt"

	"github.com/katalvlaran/calibrate/aggregate"
	"github.com/katalvlaran/calibrate/input"
	"github.com/katalvlaran/calibrate/internal/config"
	"github.com/spf13/cobra"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Sum the targets of satisfiable equations",
		Long: `Read one equation per line ("<target>: <n1> <n2> ...") and print two sums:
the targets reachable with + and *, then those reachable with +, * and ||.

FILE defaults to the configured input; "-" reads standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			logger := GetLogger(ctx)

			path := cfg.Input
			if len(args) == 1 {
				path = args[0]
			}
			logger.Debug("reading input", "path", path)

			lines, err := input.ReadFile(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Output == config.OutputText {
				totals, err := aggregate.Run(ctx, lines, aggregateOptions(ctx)...)
				if err != nil {
					return fmt.Errorf("solve %s: %w", path, err)
				}
				return renderTotals(out, totals)
			}

			reports, totals, err := aggregate.Evaluate(ctx, lines, aggregateOptions(ctx)...)
			if err != nil {
				return fmt.Errorf("solve %s: %w", path, err)
			}
			if cfg.Output == config.OutputJSON {
				return renderJSON(out, reports, totals)
			}
			return renderTable(out, reports, totals)
		},
	}
}
