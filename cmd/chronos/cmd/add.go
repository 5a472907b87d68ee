package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/temporal/arith"
	"github.com/msto63/chronos/pkg/temporal/duration"
)

var (
	addRelativeTo string
	addSubtract   bool
)

var addCmd = &cobra.Command{
	Use:   "add <date-time|duration> <duration>",
	Short: "Add a duration to a date-time or to another duration",
	Example: `  chronos add 2024-01-31 P1M
  chronos add 2024-03-09T12:00[America/New_York] P1DT1H
  chronos add P1M15D P20D --relative-to 2024-01-31`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addRelativeTo, "relative-to", "", "date-time that anchors calendar units when adding durations")
	addCmd.Flags().BoolVar(&addSubtract, "subtract", false, "subtract instead of add")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	d, err := duration.Parse(args[1])
	if err != nil {
		return err
	}
	if addSubtract {
		d = d.Negated()
	}

	if isDuration(args[0]) {
		a, err := duration.Parse(args[0])
		if err != nil {
			return err
		}
		rel, err := optionalMarker(addRelativeTo)
		if err != nil {
			return err
		}
		sum, err := arith.Add(a, d, rel)
		if err != nil {
			return err
		}
		return printDuration(cmd, sum)
	}

	m, err := eng.parseMarker(args[0])
	if err != nil {
		return err
	}
	moved, err := moveMarker(m, d)
	if err != nil {
		return err
	}
	return printMarker(cmd, moved)
}
