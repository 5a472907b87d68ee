package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/temporal/marker"
	"github.com/msto63/chronos/pkg/temporal/timezone"
)

var (
	toCalendar string
	toZone     string
)

var convertCmd = &cobra.Command{
	Use:   "convert <date-time>",
	Short: "Show a date-time in another calendar or time zone",
	Long: `convert reprojects a date-time. --to-calendar changes only the
calendar view of the same day. --to-tz keeps the instant and changes the
wall clock; a plain date-time is first placed in --tz or the configured
zone.`,
	Example: `  chronos convert 2024-03-11 --to-calendar hebrew
  chronos convert 2024-03-10T12:00[America/New_York] --to-tz Asia/Tokyo`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&toCalendar, "to-calendar", "", "target calendar system")
	convertCmd.Flags().StringVar(&toZone, "to-tz", "", "target time zone")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	m, err := eng.parseMarker(args[0])
	if err != nil {
		return err
	}
	cal := m.Calendar()
	if toCalendar != "" {
		if cal, err = eng.calendars.Get(toCalendar); err != nil {
			return err
		}
	}

	if toZone == "" {
		switch m := m.(type) {
		case marker.Zoned:
			z, err := marker.NewZoned(cal, m.TimeZone(), m.Epoch())
			if err != nil {
				return err
			}
			return printMarker(cmd, z)
		default:
			p, err := marker.NewPlain(cal, m.DateTime())
			if err != nil {
				return err
			}
			return printMarker(cmd, p)
		}
	}

	target, err := eng.zones.Load(toZone)
	if err != nil {
		return err
	}
	instant := m.Epoch()
	if !marker.IsZoned(m) {
		source, err := eng.zone("")
		if err != nil {
			return err
		}
		dis, err := eng.disambiguation()
		if err != nil {
			return err
		}
		if instant, err = timezone.ResolveSingleInstant(source, m.DateTime(), dis); err != nil {
			return err
		}
	}
	z, err := marker.NewZoned(cal, target, instant)
	if err != nil {
		return err
	}
	eng.logger.Debug("converted " + m.DateTime().String() + " to " + z.String())
	return printMarker(cmd, z)
}
