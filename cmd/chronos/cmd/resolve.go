package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/marker"
	"github.com/msto63/chronos/pkg/temporal/timezone"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

var resolveTransitions bool

type candidate struct {
	Instant string `json:"instant" yaml:"instant"`
	Offset  string `json:"offset" yaml:"offset"`
}

type resolveResult struct {
	Input          string       `json:"input" yaml:"input"`
	TimeZone       string       `json:"timeZone" yaml:"timeZone"`
	Candidates     []candidate  `json:"candidates" yaml:"candidates"`
	Disambiguation string       `json:"disambiguation" yaml:"disambiguation"`
	Resolved       markerResult `json:"resolved" yaml:"resolved"`
	StartOfDay     string       `json:"startOfDay" yaml:"startOfDay"`
	HoursInDay     float64      `json:"hoursInDay" yaml:"hoursInDay"`
	Next           string       `json:"nextTransition,omitempty" yaml:"nextTransition,omitempty"`
	Previous       string       `json:"previousTransition,omitempty" yaml:"previousTransition,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <date-time[offset][zone]>",
	Short: "Map a wall-clock time in a zone to an exact instant",
	Long: `resolve lists every instant a wall-clock time can denote in its zone
and picks one with --disambiguation. An explicit offset is checked with
--offset. The zone comes from the annotation, --tz or the config.`,
	Example: `  chronos resolve 2024-11-03T01:30[America/New_York] --disambiguation later
  chronos resolve 2024-03-10T02:30 --tz America/New_York --transitions`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveTransitions, "transitions", false, "show the surrounding offset transitions")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	in, err := timezone.ParseZoned(args[0])
	if err != nil {
		return err
	}
	var tz timezone.TimeZone
	if in.Zone == "" && zoneID == "" && (in.HasOffset || in.UTCDesignator) {
		tz, err = eng.offsetZone(in)
	} else {
		tz, err = eng.zone(in.Zone)
	}
	if err != nil {
		return err
	}
	cal, err := eng.calendar()
	if err != nil {
		return err
	}
	z, err := eng.zonedFrom(cal, tz, in)
	if err != nil {
		return err
	}
	dis, _ := eng.disambiguation()

	res := resolveResult{
		Input:          args[0],
		TimeZone:       tz.ID(),
		Disambiguation: dis.String(),
		Resolved:       newMarkerResult(z),
	}
	for _, c := range tz.PossibleInstantsFor(in.DateTime) {
		res.Candidates = append(res.Candidates, candidate{
			Instant: iso.FromInstant(c, 0).String() + "Z",
			Offset:  timezone.FormatOffset(tz.OffsetFor(c)),
		})
	}
	date := z.DateTime().Date
	start, err := timezone.StartOfDay(tz, date)
	if err != nil {
		return err
	}
	res.StartOfDay = describeInstant(tz, start)
	length, err := timezone.NanosecondsInLocalDay(tz, date)
	if err != nil {
		return err
	}
	res.HoursInDay = float64(length) / float64(unit.NanosPerHour)

	if resolveTransitions {
		if t, ok := timezone.NextTransition(tz, z.Epoch()); ok {
			res.Next = describeInstant(tz, t)
		}
		if t, ok := timezone.PreviousTransition(tz, z.Epoch()); ok {
			res.Previous = describeInstant(tz, t)
		}
	}

	return render(cmd, res, func(w io.Writer) {
		fmt.Fprintf(w, "%s\n", describe(z))
		switch len(res.Candidates) {
		case 0:
			fmt.Fprintf(w, "  wall-clock time falls into a gap in %s\n", tz.ID())
		case 1:
		default:
			fmt.Fprintf(w, "  ambiguous in %s:\n", tz.ID())
			for _, c := range res.Candidates {
				fmt.Fprintf(w, "    %s (%s)\n", c.Instant, c.Offset)
			}
		}
		fmt.Fprintf(w, "  day starts %s and lasts %gh\n", res.StartOfDay, res.HoursInDay)
		if res.Next != "" {
			fmt.Fprintf(w, "  next transition %s\n", res.Next)
		}
		if res.Previous != "" {
			fmt.Fprintf(w, "  previous transition %s\n", res.Previous)
		}
	})
}

// describeInstant formats an instant as local time plus offset in tz
func describeInstant(tz timezone.TimeZone, instant daytime.DayTime) string {
	z, err := marker.NewZoned(nil, tz, instant)
	if err != nil {
		return iso.FromInstant(instant, 0).String() + "Z"
	}
	return z.DateTime().String() + timezone.FormatOffset(z.Offset())
}
