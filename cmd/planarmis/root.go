package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarmis/ptaslog"
)

// NewRootCommand builds the planarmis cobra command tree: one command,
// two required positionals (scheme, input), one optional positional
// (output), and the flags from spec.md §6 plus --debug.
func NewRootCommand() *cobra.Command {
	var (
		k               int
		exact           bool
		inputReductions []string
		donutReductions []string
		debug           bool
	)

	cmd := &cobra.Command{
		Use:   "planarmis <scheme> <input> [output]",
		Short: "Compute a maximum independent set on a planar graph",
		Long: `planarmis reads a planar graph from a file, computes a large
independent set, and writes the result alongside a JS visualization
literal.

scheme selects the algorithm:
  ptas        Baker's PTAS, layering the graph into donuts of width --k
  exhaustive  brute-force search over the whole graph (small inputs only)`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := parseScheme(args[0])
			if err != nil {
				return err
			}
			output := defaultOutputPath
			if len(args) == 3 {
				output = args[2]
			}
			inKinds, err := parseReductions(inputReductions)
			if err != nil {
				return err
			}
			donutKinds, err := parseReductions(donutReductions)
			if err != nil {
				return err
			}

			opts := Options{
				Scheme:     scheme,
				Input:      args[1],
				Output:     output,
				K:          k,
				Exact:      exact,
				InputKinds: inKinds,
				DonutKinds: donutKinds,
				Debug:      debug,
			}

			logger := ptaslog.New(debug)
			if debug {
				if err := logger.Open(opts.Output + ".log"); err != nil {
					return err
				}
			}
			defer logger.Close()

			mis, err := Run(opts, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "MIS size: %d\n", len(mis))
			fmt.Fprintf(cmd.OutOrStdout(), "MIS vertices: %v\n", mis)
			return nil
		},
	}

	cmd.Flags().IntVar(&k, "k", 1, "PTAS layer width")
	cmd.Flags().BoolVarP(&exact, "exact", "E", false, "build an exact donut tree decomposition instead of the approximated one")
	cmd.Flags().StringArrayVarP(&inputReductions, "input-reduce", "R", nil, "reduction to apply once to the whole graph before layering (repeatable): twin, isolated-clique, nodal-fold")
	cmd.Flags().StringArrayVarP(&donutReductions, "donut-reduce", "D", nil, "reduction to apply to each donut before solving (repeatable): twin, isolated-clique, nodal-fold")
	cmd.Flags().BoolVar(&debug, "debug", false, "print the full Go error chain on failure and write a log file alongside output")

	return cmd
}

// Execute runs the root command and translates any returned error into
// the stderr message and exit code spec.md §6 specifies.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "planarmis: %v\n", err)
		}
		return 1
	}
	return 0
}
