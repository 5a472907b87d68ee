// Package duration provides Duration, an immutable signed amount of years
// down to nanoseconds.
//
// All nonzero fields of a Duration share one sign. Years, months and weeks
// stay below 2³² in magnitude, and the days-and-time portion, measured in
// seconds with days as 24 hours, stays within 2⁵³-1.
package duration

import (
	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/calendar"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

const (
	// MaxCalendarField bounds years, months and weeks (exclusive)
	MaxCalendarField = 1 << 32
	// MaxSeconds bounds the days-and-time portion in seconds (inclusive)
	MaxSeconds = 1<<53 - 1
)

// Fields holds one value per unit.
type Fields struct {
	Years        int64 `json:"years,omitempty" yaml:"years,omitempty"`
	Months       int64 `json:"months,omitempty" yaml:"months,omitempty"`
	Weeks        int64 `json:"weeks,omitempty" yaml:"weeks,omitempty"`
	Days         int64 `json:"days,omitempty" yaml:"days,omitempty"`
	Hours        int64 `json:"hours,omitempty" yaml:"hours,omitempty"`
	Minutes      int64 `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Seconds      int64 `json:"seconds,omitempty" yaml:"seconds,omitempty"`
	Milliseconds int64 `json:"milliseconds,omitempty" yaml:"milliseconds,omitempty"`
	Microseconds int64 `json:"microseconds,omitempty" yaml:"microseconds,omitempty"`
	Nanoseconds  int64 `json:"nanoseconds,omitempty" yaml:"nanoseconds,omitempty"`
}

func (f *Fields) ref(u unit.Unit) *int64 {
	switch u {
	case unit.Year:
		return &f.Years
	case unit.Month:
		return &f.Months
	case unit.Week:
		return &f.Weeks
	case unit.Day:
		return &f.Days
	case unit.Hour:
		return &f.Hours
	case unit.Minute:
		return &f.Minutes
	case unit.Second:
		return &f.Seconds
	case unit.Millisecond:
		return &f.Milliseconds
	case unit.Microsecond:
		return &f.Microseconds
	default:
		return &f.Nanoseconds
	}
}

// Get returns the value of one unit.
func (f Fields) Get(u unit.Unit) int64 { return *f.ref(u) }

// Set changes the value of one unit.
func (f *Fields) Set(u unit.Unit, v int64) { *f.ref(u) = v }

// Duration is an immutable, sign-consistent amount of time.
type Duration struct {
	f    Fields
	sign int
}

// Zero is the empty duration.
var Zero = Duration{}

// New validates fields and builds a Duration.
func New(f Fields) (Duration, error) {
	sign := 0
	for _, u := range unit.All() {
		v := f.Get(u)
		if v == 0 {
			continue
		}
		s := daytime.Sign(v)
		if sign != 0 && s != sign {
			return Zero, errors.NewErrorBuilder(errors.ModuleDuration).
				Operation("new").
				Code(mdwerror.CodeMixedSign).
				Messagef("mixed signs: %s is %d", u.Plural(), v).
				Detail("unit", u.String()).
				Build()
		}
		sign = s
	}
	d := Duration{f: f, sign: sign}
	if err := d.validate(); err != nil {
		return Zero, err
	}
	return d, nil
}

// MustNew is New for literals known to be valid. It panics on error.
func MustNew(f Fields) Duration {
	d, err := New(f)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Duration) validate() error {
	for _, u := range []unit.Unit{unit.Year, unit.Month, unit.Week} {
		if v := d.f.Get(u); outside(v, MaxCalendarField-1) {
			return errors.OutOfRange(errors.ModuleDuration, "new", u.Plural(), v, -(MaxCalendarField - 1), MaxCalendarField-1)
		}
	}
	// bound each field first so that summing them cannot overflow
	for u := unit.Day; u <= unit.Second; u++ {
		limit := MaxSeconds / (u.Nanos() / unit.NanosPerSecond)
		if v := d.f.Get(u); outside(v, limit) {
			return errors.OutOfRange(errors.ModuleDuration, "new", u.Plural(), v, -limit, limit)
		}
	}
	if secs, _ := d.DayTime().Seconds(); outside(secs, MaxSeconds) {
		return errors.OutOfRange(errors.ModuleDuration, "new", "seconds", secs, -MaxSeconds, MaxSeconds)
	}
	return nil
}

func outside(v, limit int64) bool {
	return v > limit || v < -limit
}

// Fields returns a copy of all values.
func (d Duration) Fields() Fields { return d.f }

func (d Duration) Get(u unit.Unit) int64 { return d.f.Get(u) }
func (d Duration) Years() int64          { return d.f.Years }
func (d Duration) Months() int64         { return d.f.Months }
func (d Duration) Weeks() int64          { return d.f.Weeks }
func (d Duration) Days() int64           { return d.f.Days }
func (d Duration) Hours() int64          { return d.f.Hours }
func (d Duration) Minutes() int64        { return d.f.Minutes }
func (d Duration) Seconds() int64        { return d.f.Seconds }
func (d Duration) Milliseconds() int64   { return d.f.Milliseconds }
func (d Duration) Microseconds() int64   { return d.f.Microseconds }
func (d Duration) Nanoseconds() int64    { return d.f.Nanoseconds }

// Sign returns -1, 0 or 1.
func (d Duration) Sign() int { return d.sign }

func (d Duration) IsZero() bool { return d.sign == 0 }

// Negated flips the sign of every field.
func (d Duration) Negated() Duration {
	var f Fields
	for _, u := range unit.All() {
		f.Set(u, -d.f.Get(u))
	}
	return Duration{f: f, sign: -d.sign}
}

// Abs returns the duration with a non-negative sign.
func (d Duration) Abs() Duration {
	if d.sign < 0 {
		return d.Negated()
	}
	return d
}

// With returns a copy with one field replaced.
func (d Duration) With(u unit.Unit, v int64) (Duration, error) {
	f := d.f
	f.Set(u, v)
	return New(f)
}

// LargestUnit returns the largest unit with a nonzero value, or Nanosecond
// for the zero duration.
func (d Duration) LargestUnit() unit.Unit {
	for _, u := range unit.All() {
		if d.f.Get(u) != 0 {
			return u
		}
	}
	return unit.Nanosecond
}

// DatePart returns years, months, weeks and days.
func (d Duration) DatePart() calendar.Delta {
	return calendar.Delta{Years: d.f.Years, Months: d.f.Months, Weeks: d.f.Weeks, Days: d.f.Days}
}

// TimePart returns hours down to nanoseconds as one quantity.
func (d Duration) TimePart() daytime.DayTime {
	total := daytime.Zero
	for u := unit.Hour; u <= unit.Nanosecond; u++ {
		total = total.Add(daytime.FromUnit(d.f.Get(u), u.Nanos()))
	}
	return total
}

// DayTime returns days and time with days counted as 24 hours.
func (d Duration) DayTime() daytime.DayTime {
	return daytime.FromDays(d.f.Days).Add(d.TimePart())
}

// HasCalendarUnits reports whether years, months or weeks are nonzero.
func (d Duration) HasCalendarUnits() bool {
	return d.f.Years != 0 || d.f.Months != 0 || d.f.Weeks != 0
}

// Combine builds a duration from a date part and a time quantity. The time
// is balanced up to largest, or up to hours when largest is a day or
// calendar unit, so days come from the date part only.
func Combine(date calendar.Delta, t daytime.DayTime, largest unit.Unit) (Duration, error) {
	if largest <= unit.Day {
		largest = unit.Hour
	}
	f, err := Balance(t, largest)
	if err != nil {
		return Zero, err
	}
	f.Years, f.Months, f.Weeks = date.Years, date.Months, date.Weeks
	f.Days += date.Days
	return New(f)
}

// Balance distributes a signed quantity over the units from largest down
// to nanoseconds. largest must be Day or smaller; calendar units are
// treated as Day.
func Balance(t daytime.DayTime, largest unit.Unit) (Fields, error) {
	if largest < unit.Day {
		largest = unit.Day
	}
	sign := t.Sign()
	rem := t.Abs()

	var f Fields
	for u := largest; u <= unit.Nanosecond; u++ {
		if u == unit.Day {
			f.Days = rem.Days()
			rem = daytime.FromNanos(rem.NanosOfDay())
			continue
		}
		whole, r, ok := rem.Div(u.Nanos())
		if !ok {
			return Fields{}, errors.NewErrorBuilder(errors.ModuleDuration).
				Operation("balance").
				Code(mdwerror.CodeUnitOverflow).
				Messagef("%s overflow %s", t, u.Plural()).
				Build()
		}
		f.Set(u, whole)
		rem = r
	}
	if sign < 0 {
		for _, u := range unit.All() {
			f.Set(u, -f.Get(u))
		}
	}
	return f, nil
}
