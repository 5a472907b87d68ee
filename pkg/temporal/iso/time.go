package iso

import (
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// Time is a wall-clock time of day.
type Time struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Microsecond int
	Nanosecond  int
}

// Midnight is 00:00.
var Midnight = Time{}

// Nanos returns the nanoseconds since midnight.
func (t Time) Nanos() int64 {
	return int64(t.Hour)*unit.NanosPerHour +
		int64(t.Minute)*unit.NanosPerMinute +
		int64(t.Second)*unit.NanosPerSecond +
		int64(t.Millisecond)*unit.NanosPerMillisecond +
		int64(t.Microsecond)*unit.NanosPerMicrosecond +
		int64(t.Nanosecond)
}

// TimeFromNanos converts a nanosecond-of-day value in [0, NanosPerDay).
func TimeFromNanos(n int64) Time {
	return Time{
		Hour:        int(n / unit.NanosPerHour),
		Minute:      int(n / unit.NanosPerMinute % 60),
		Second:      int(n / unit.NanosPerSecond % 60),
		Millisecond: int(n / unit.NanosPerMillisecond % 1000),
		Microsecond: int(n / unit.NanosPerMicrosecond % 1000),
		Nanosecond:  int(n % 1000),
	}
}

// BalanceTime carries whole days out of a nanosecond count of any sign.
func BalanceTime(nanos int64) (dayCarry int64, t Time) {
	d := daytime.FromNanos(nanos)
	return d.Days(), TimeFromNanos(d.NanosOfDay())
}

// AddTime adds a signed day-time quantity to t and returns the day carry.
func AddTime(t Time, delta daytime.DayTime) (dayCarry int64, out Time) {
	sum := daytime.FromNanos(t.Nanos()).Add(delta)
	return sum.Days(), TimeFromNanos(sum.NanosOfDay())
}

// CompareTime orders two times of day.
func CompareTime(a, b Time) int {
	an, bn := a.Nanos(), b.Nanos()
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

type timeField struct {
	name string
	ptr  *int
	max  int
}

func (t *Time) fields() []timeField {
	return []timeField{
		{"hour", &t.Hour, 23},
		{"minute", &t.Minute, 59},
		{"second", &t.Second, 59},
		{"millisecond", &t.Millisecond, 999},
		{"microsecond", &t.Microsecond, 999},
		{"nanosecond", &t.Nanosecond, 999},
	}
}

// RegulateTime validates (Reject) or clamps (Constrain) every field to its
// natural radix. A leap second of 60 is clamped to 59 under Constrain.
func RegulateTime(t Time, overflow Overflow) (Time, error) {
	for _, f := range t.fields() {
		if *f.ptr >= 0 && *f.ptr <= f.max {
			continue
		}
		if overflow == Reject {
			return Time{}, errors.OutOfRange(errors.ModuleISO, "regulateTime", f.name, *f.ptr, 0, f.max)
		}
		*f.ptr = clamp(*f.ptr, 0, f.max)
	}
	return t, nil
}
