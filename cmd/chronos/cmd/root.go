package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/core/config"
)

var (
	cfgFile    string
	verbose    bool
	calendarID string
	zoneID     string
	outputFmt  string
	overflow   string
	disamb     string
	offsetOpt  string

	// fs is swapped for an in-memory filesystem in tests
	fs = afero.NewOsFs()

	eng *engine
)

var rootCmd = &cobra.Command{
	Use:   "chronos",
	Short: "chronos - calendar, time zone and duration arithmetic",
	Long: `chronos computes calendar-correct arithmetic over dates, times and
durations: adding and diffing across month ends and DST transitions,
rounding durations relative to a starting point, and converting between
calendar systems and time zones.

Date-times are written as ISO 8601 strings. A bracketed zone annotation
makes them zoned:
  2024-03-09T12:00
  2024-03-09T12:00-05:00[America/New_York]`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if eng != nil {
			eng.reportMetrics()
		}
	},
}

// Execute runs the command tree
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CHRONOS_CONFIG or ./chronos.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&calendarID, "calendar", "", "calendar system (default from config)")
	rootCmd.PersistentFlags().StringVar(&zoneID, "tz", "", "time zone for date-times without an annotation")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&overflow, "overflow", "", "day overflow handling: constrain or reject")
	rootCmd.PersistentFlags().StringVar(&disamb, "disambiguation", "", "wall-clock disambiguation: compatible, earlier, later or reject")
	rootCmd.PersistentFlags().StringVar(&offsetOpt, "offset", "", "offset conflict policy: reject, use, prefer or ignore")
}

func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(fs, cfgFile)
	} else {
		cfg, err = config.LoadFromEnv(fs)
	}
	if err != nil {
		return err
	}

	if calendarID != "" {
		cfg.Engine.Calendar = calendarID
	}
	if outputFmt != "" {
		cfg.Output.Format = outputFmt
	}
	if overflow != "" {
		cfg.Engine.Overflow = overflow
	}
	if disamb != "" {
		cfg.Engine.Disambiguation = disamb
	}
	if offsetOpt != "" {
		cfg.Engine.Offset = offsetOpt
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng = newEngine(cfg, cmd.ErrOrStderr())
	eng.logger.Debug(fmt.Sprintf("running %s", cmd.CommandPath()))
	return nil
}
