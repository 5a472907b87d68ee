package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/temporal/calendar"
	"github.com/msto63/chronos/pkg/temporal/duration"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/marker"
	"github.com/msto63/chronos/pkg/temporal/timezone"
)

// markerResult is the structured form of a date-time answer
type markerResult struct {
	DateTime string          `json:"dateTime" yaml:"dateTime"`
	Calendar string          `json:"calendar" yaml:"calendar"`
	TimeZone string          `json:"timeZone,omitempty" yaml:"timeZone,omitempty"`
	Offset   string          `json:"offset,omitempty" yaml:"offset,omitempty"`
	Instant  string          `json:"instant,omitempty" yaml:"instant,omitempty"`
	Fields   calendar.Fields `json:"fields" yaml:"fields"`
}

func newMarkerResult(m marker.Marker) markerResult {
	r := markerResult{
		DateTime: m.DateTime().String(),
		Calendar: m.Calendar().ID(),
		Fields:   m.Calendar().Fields(m.DateTime().Date),
	}
	if z, ok := m.(marker.Zoned); ok {
		r.TimeZone = z.TimeZone().ID()
		r.Offset = timezone.FormatOffset(z.Offset())
		r.Instant = formatInstant(z)
	}
	return r
}

func formatInstant(m marker.Marker) string {
	return iso.FromInstant(m.Epoch(), 0).String() + "Z"
}

// describe formats a marker with its calendar date when the calendar is
// not ISO 8601
func describe(m marker.Marker) string {
	s := fmt.Sprint(m)
	cal := m.Calendar()
	if cal.ID() == calendar.ISO().ID() {
		return s
	}
	f := cal.Fields(m.DateTime().Date)
	era := ""
	if f.Era != "" {
		era = fmt.Sprintf(" (%s %d)", f.Era, f.EraYear)
	}
	return fmt.Sprintf("%s [%s %d-%s-%02d%s]", s, cal.ID(), f.Year, f.MonthCode, f.Day, era)
}

func printMarker(cmd *cobra.Command, m marker.Marker) error {
	return render(cmd, newMarkerResult(m), func(w io.Writer) {
		fmt.Fprintln(w, describe(m))
	})
}

// optionalMarker parses a --relative-to value
func optionalMarker(s string) (marker.Marker, error) {
	if s == "" {
		return nil, nil
	}
	return eng.parseMarker(s)
}

func isDuration(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "P") || strings.HasPrefix(s, "p")
}

// moveMarker adds d honouring the configured overflow option
func moveMarker(m marker.Marker, d duration.Duration) (marker.Marker, error) {
	overflow, err := eng.overflow()
	if err != nil {
		return nil, err
	}
	switch m := m.(type) {
	case marker.Plain:
		p, err := m.Add(d, overflow)
		if err != nil {
			return nil, err
		}
		return p, nil
	case marker.Zoned:
		z, err := m.Add(d, overflow)
		if err != nil {
			return nil, err
		}
		return z, nil
	default:
		return m.Move(d)
	}
}
