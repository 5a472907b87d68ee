// Package marker anchors calendar arithmetic to a starting point.
//
// A Marker is either a plain date-time in a calendar or an instant in a
// calendar and time zone. Durations that carry years, months or weeks only
// have a length relative to such a point.
package marker

import (
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/calendar"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/duration"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/timezone"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// Marker is a position that durations can be added to and measured from.
type Marker interface {
	Calendar() *calendar.Calendar
	// TimeZone is nil for plain markers.
	TimeZone() timezone.TimeZone
	// DateTime is the wall-clock reading of the marker.
	DateTime() iso.DateTime
	// Epoch orders markers. For plain markers it is the wall clock read as
	// UTC.
	Epoch() daytime.DayTime

	// Move adds d, constraining days that overflow their month.
	Move(d duration.Duration) (Marker, error)
	// Until returns the duration from the receiver to end with no unit
	// coarser than largest.
	Until(end Marker, largest unit.Unit) (duration.Duration, error)
	// EpochAt returns the position of the wall-clock time shifted by a
	// date-only delta, as used for rounding brackets.
	EpochAt(delta calendar.Delta) (daytime.DayTime, error)

	Compare(o Marker) int
}

// IsZoned reports whether m is bound to a time zone.
func IsZoned(m Marker) bool { return m.TimeZone() != nil }

func compareEpoch(a, b Marker) int { return a.Epoch().Compare(b.Epoch()) }

func mismatch(op, what string, a, b interface{}) error {
	return errors.Range(errors.ModuleMarker, op, "%s differ: %v and %v", what, a, b)
}
