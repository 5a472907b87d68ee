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

// Plain is a wall-clock date-time in a calendar with no time zone.
type Plain struct {
	cal *calendar.Calendar
	dt  iso.DateTime
}

// NewPlain checks dt against the supported date-time window.
func NewPlain(cal *calendar.Calendar, dt iso.DateTime) (Plain, error) {
	if err := iso.CheckDateTimeInBounds(dt); err != nil {
		return Plain{}, err
	}
	if cal == nil {
		cal = calendar.ISO()
	}
	return Plain{cal: cal, dt: dt}, nil
}

// NewPlainDate is NewPlain at midnight.
func NewPlainDate(cal *calendar.Calendar, d iso.Date) (Plain, error) {
	return NewPlain(cal, iso.DateTime{Date: d})
}

func (p Plain) Calendar() *calendar.Calendar { return p.cal }
func (p Plain) TimeZone() timezone.TimeZone   { return nil }
func (p Plain) DateTime() iso.DateTime        { return p.dt }
func (p Plain) Epoch() daytime.DayTime        { return iso.ToInstant(p.dt) }
func (p Plain) Compare(o Marker) int          { return compareEpoch(p, o) }
func (p Plain) String() string                { return p.dt.String() }

func (p Plain) Move(d duration.Duration) (Marker, error) {
	return p.Add(d, iso.Constrain)
}

// Add moves the time first and carries whole days into the calendar
// addition.
func (p Plain) Add(d duration.Duration, overflow iso.Overflow) (Plain, error) {
	carry, t := iso.AddTime(p.dt.Time, d.TimePart())
	delta := d.DatePart()
	delta.Days += carry
	date, err := p.cal.DateAdd(p.dt.Date, delta, overflow)
	if err != nil {
		return Plain{}, err
	}
	return NewPlain(p.cal, iso.DateTime{Date: date, Time: t})
}

func (p Plain) EpochAt(delta calendar.Delta) (daytime.DayTime, error) {
	date, err := p.cal.DateAdd(p.dt.Date, delta, iso.Constrain)
	if err != nil {
		return daytime.Zero, err
	}
	dt := iso.DateTime{Date: date, Time: p.dt.Time}
	if err := iso.CheckDateTimeInBounds(dt); err != nil {
		return daytime.Zero, err
	}
	return iso.ToInstant(dt), nil
}

// Until borrows a day from the date difference when the time difference
// points the other way, so that every field shares one sign.
func (p Plain) Until(end Marker, largest unit.Unit) (duration.Duration, error) {
	const op = "until"
	e, ok := end.(Plain)
	if !ok {
		return duration.Zero, errors.Type(errors.ModuleMarker, op, "cannot measure from a plain to a zoned marker")
	}
	if !p.cal.Equal(e.cal) {
		return duration.Zero, mismatch(op, "calendars", p.cal, e.cal)
	}

	timeDiff := daytime.FromNanos(e.dt.Time.Nanos() - p.dt.Time.Nanos())
	timeSign := timeDiff.Sign()
	adjusted := e.dt.Date
	if timeSign != 0 && timeSign == -iso.CompareDate(e.dt.Date, p.dt.Date) {
		adjusted = iso.AddDays(adjusted, int64(timeSign))
		timeDiff = timeDiff.Sub(daytime.FromDays(int64(timeSign)))
	}

	delta, err := p.cal.DateUntil(p.dt.Date, adjusted, unit.Larger(largest, unit.Day))
	if err != nil {
		return duration.Zero, err
	}
	if largest.IsTime() {
		timeDiff = timeDiff.Add(daytime.FromDays(delta.Days))
		delta.Days = 0
	}
	return duration.Combine(delta, timeDiff, largest)
}
