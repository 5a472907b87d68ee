package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/temporal/arith"
)

var (
	diffFlags roundingFlags
	diffSince bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <start> <end>",
	Short: "Compute the duration between two date-times",
	Long: `diff returns the duration from start to end. With --since the
difference is taken from end back to start, rounding in the opposite
direction and negating the result.`,
	Example: `  chronos diff 2024-01-31 2024-03-01 --largest month
  chronos diff 2024-03-09T12:00[America/New_York] 2024-03-10T12:00[America/New_York] --largest day`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffFlags.register(diffCmd)
	diffCmd.Flags().BoolVar(&diffSince, "since", false, "compute end.since(start) semantics")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	start, err := eng.parseMarker(args[0])
	if err != nil {
		return err
	}
	end, err := eng.parseMarker(args[1])
	if err != nil {
		return err
	}
	opts, err := diffFlags.options(arith.DifferenceOptions().Mode)
	if err != nil {
		return err
	}
	d, err := arith.Difference(start, end, opts, diffSince)
	if err != nil {
		return err
	}
	return printDuration(cmd, d)
}
