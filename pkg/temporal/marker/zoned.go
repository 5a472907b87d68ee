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

// Zoned is an exact instant viewed through a time zone and calendar.
type Zoned struct {
	cal     *calendar.Calendar
	tz      timezone.TimeZone
	instant daytime.DayTime
	local   iso.DateTime
}

// NewZoned checks the instant against the instant window.
func NewZoned(cal *calendar.Calendar, tz timezone.TimeZone, instant daytime.DayTime) (Zoned, error) {
	if tz == nil {
		return Zoned{}, errors.MissingField(errors.ModuleMarker, "newZoned", "timeZone")
	}
	if err := instant.CheckInstant(); err != nil {
		return Zoned{}, err
	}
	if cal == nil {
		cal = calendar.ISO()
	}
	return Zoned{cal: cal, tz: tz, instant: instant, local: timezone.Project(tz, instant)}, nil
}

// NewZonedLocal resolves a wall-clock time in tz.
func NewZonedLocal(cal *calendar.Calendar, tz timezone.TimeZone, dt iso.DateTime, dis timezone.Disambiguation) (Zoned, error) {
	instant, err := timezone.ResolveSingleInstant(tz, dt, dis)
	if err != nil {
		return Zoned{}, err
	}
	return NewZoned(cal, tz, instant)
}

func (z Zoned) Calendar() *calendar.Calendar { return z.cal }
func (z Zoned) TimeZone() timezone.TimeZone   { return z.tz }
func (z Zoned) DateTime() iso.DateTime        { return z.local }
func (z Zoned) Epoch() daytime.DayTime        { return z.instant }
func (z Zoned) Compare(o Marker) int          { return compareEpoch(z, o) }

// Offset returns the UTC offset in effect at the instant.
func (z Zoned) Offset() int64 { return z.tz.OffsetFor(z.instant) }

func (z Zoned) String() string {
	return z.local.String() + timezone.FormatOffset(z.Offset()) + "[" + z.tz.ID() + "]"
}

func (z Zoned) Move(d duration.Duration) (Marker, error) {
	return z.Add(d, iso.Constrain)
}

// Add applies the date part on the wall clock, resolves the result with
// the compatible disambiguation and then adds the time part as exact
// elapsed time.
func (z Zoned) Add(d duration.Duration, overflow iso.Overflow) (Zoned, error) {
	delta := d.DatePart()
	start := z.instant
	if delta != (calendar.Delta{}) {
		date, err := z.cal.DateAdd(z.local.Date, delta, overflow)
		if err != nil {
			return Zoned{}, err
		}
		start, err = timezone.ResolveSingleInstant(z.tz, iso.DateTime{Date: date, Time: z.local.Time}, timezone.Compatible)
		if err != nil {
			return Zoned{}, err
		}
	}
	return NewZoned(z.cal, z.tz, start.Add(d.TimePart()))
}

func (z Zoned) EpochAt(delta calendar.Delta) (daytime.DayTime, error) {
	date, err := z.cal.DateAdd(z.local.Date, delta, iso.Constrain)
	if err != nil {
		return daytime.Zero, err
	}
	return timezone.ResolveSingleInstant(z.tz, iso.DateTime{Date: date, Time: z.local.Time}, timezone.Compatible)
}

// Until measures time units as exact elapsed time. Day and calendar units
// follow the wall clock: the end's local date is walked back by up to two
// days until the remaining exact time no longer points against the
// overall direction.
func (z Zoned) Until(end Marker, largest unit.Unit) (duration.Duration, error) {
	const op = "until"
	e, ok := end.(Zoned)
	if !ok {
		return duration.Zero, errors.Type(errors.ModuleMarker, op, "cannot measure from a zoned to a plain marker")
	}
	if largest.IsTime() {
		f, err := duration.Balance(e.instant.Sub(z.instant), largest)
		if err != nil {
			return duration.Zero, err
		}
		return duration.New(f)
	}
	if !z.cal.Equal(e.cal) {
		return duration.Zero, mismatch(op, "calendars", z.cal, e.cal)
	}
	if !timezone.Equal(z.tz, e.tz) {
		return duration.Zero, mismatch(op, "time zones", z.tz.ID(), e.tz.ID())
	}

	sign := e.instant.Compare(z.instant)
	if sign == 0 {
		return duration.Zero, nil
	}
	maxCorrection := 1
	if sign > 0 {
		maxCorrection = 2
	}
	correction := 0
	if iso.CompareTime(e.local.Time, z.local.Time) == -sign {
		correction = 1
	}

	var (
		intermediate iso.Date
		remainder    daytime.DayTime
		found        bool
	)
	for ; correction <= maxCorrection; correction++ {
		intermediate = iso.AddDays(e.local.Date, -int64(correction*sign))
		instant, err := timezone.ResolveSingleInstant(z.tz, iso.DateTime{Date: intermediate, Time: z.local.Time}, timezone.Compatible)
		if err != nil {
			return duration.Zero, err
		}
		remainder = e.instant.Sub(instant)
		if remainder.Sign() != -sign {
			found = true
			break
		}
	}
	if !found {
		return duration.Zero, errors.Range(errors.ModuleMarker, op, "cannot measure %s to %s", z, e)
	}

	delta, err := z.cal.DateUntil(z.local.Date, intermediate, largest)
	if err != nil {
		return duration.Zero, err
	}
	return duration.Combine(delta, remainder, largest)
}
