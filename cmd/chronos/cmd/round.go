package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/arith"
	"github.com/msto63/chronos/pkg/temporal/duration"
	"github.com/msto63/chronos/pkg/temporal/marker"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

var (
	roundFlags      roundingFlags
	roundRelativeTo string
)

var roundCmd = &cobra.Command{
	Use:   "round <duration|date-time>",
	Short: "Round a duration or a date-time",
	Long: `round rounds a duration to --smallest and balances it up to
--largest. Calendar units need --relative-to. A date-time is rounded on
its wall clock to --smallest, which may be at most a day.`,
	Example: `  chronos round P1DT23H --smallest day --relative-to 2024-01-01
  chronos round 2024-03-10T13:00[America/New_York] --smallest day`,
	Args: cobra.ExactArgs(1),
	RunE: runRound,
}

func init() {
	roundFlags.register(roundCmd)
	roundCmd.Flags().StringVar(&roundRelativeTo, "relative-to", "", "date-time that anchors calendar units")
	rootCmd.AddCommand(roundCmd)
}

func runRound(cmd *cobra.Command, args []string) error {
	opts, err := roundFlags.options(eng.roundingMode())
	if err != nil {
		return err
	}

	if isDuration(args[0]) {
		d, err := duration.Parse(args[0])
		if err != nil {
			return err
		}
		rel, err := optionalMarker(roundRelativeTo)
		if err != nil {
			return err
		}
		rounded, err := arith.Round(d, opts, rel)
		if err != nil {
			return err
		}
		return printDuration(cmd, rounded)
	}

	if opts.Smallest == unit.Auto {
		return errors.MissingField(errors.ModuleArith, "round", "smallestUnit")
	}
	m, err := eng.parseMarker(args[0])
	if err != nil {
		return err
	}
	switch m := m.(type) {
	case marker.Zoned:
		z, err := arith.RoundZoned(m, opts.Smallest, opts.Increment, opts.Mode)
		if err != nil {
			return err
		}
		return printMarker(cmd, z)
	default:
		dt, err := arith.RoundDateTime(m.DateTime(), opts.Smallest, opts.Increment, opts.Mode)
		if err != nil {
			return err
		}
		p, err := marker.NewPlain(m.Calendar(), dt)
		if err != nil {
			return err
		}
		return printMarker(cmd, p)
	}
}
