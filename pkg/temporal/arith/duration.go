package arith

import (
	"math/big"

	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/duration"
	"github.com/msto63/chronos/pkg/temporal/marker"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// Add returns a+b. Without relativeTo neither operand may carry years,
// months or weeks. Sums whose largest unit is a day or smaller are exact;
// others are found by moving relativeTo by a and then b and measuring the
// distance.
func Add(a, b duration.Duration, relativeTo marker.Marker) (duration.Duration, error) {
	const op = "add"
	largest := unit.Larger(a.LargestUnit(), b.LargestUnit())

	exact := relativeTo == nil || largest.IsTime() || largest == unit.Day && !marker.IsZoned(relativeTo)
	if exact {
		if largest.IsCalendar() {
			return duration.Zero, relativeToRequired(op, largest)
		}
		f, err := duration.Balance(a.DayTime().Add(b.DayTime()), largest)
		if err != nil {
			return duration.Zero, err
		}
		return duration.New(f)
	}

	mid, err := relativeTo.Move(a)
	if err != nil {
		return duration.Zero, err
	}
	end, err := mid.Move(b)
	if err != nil {
		return duration.Zero, err
	}
	return relativeTo.Until(end, largest)
}

// Subtract returns a-b.
func Subtract(a, b duration.Duration, relativeTo marker.Marker) (duration.Duration, error) {
	return Add(a, b.Negated(), relativeTo)
}

// Compare orders two durations by the position they reach from
// relativeTo, or by exact length when neither has a unit of variable
// length.
func Compare(a, b duration.Duration, relativeTo marker.Marker) (int, error) {
	if a.Fields() == b.Fields() {
		return 0, nil
	}
	calendarUnits := a.HasCalendarUnits() || b.HasCalendarUnits()
	days := a.Days() != 0 || b.Days() != 0
	if relativeTo != nil && (calendarUnits || days && marker.IsZoned(relativeTo)) {
		ea, err := relativeTo.Move(a)
		if err != nil {
			return 0, err
		}
		eb, err := relativeTo.Move(b)
		if err != nil {
			return 0, err
		}
		return ea.Compare(eb), nil
	}
	if calendarUnits {
		return 0, relativeToRequired("compare", unit.Larger(a.LargestUnit(), b.LargestUnit()))
	}
	return a.DayTime().Compare(b.DayTime()), nil
}

// Round rounds d to opts.Smallest and rebalances it up to opts.Largest.
// At least one of the two units must be given. Without relativeTo days
// count as 24 hours and calendar units are rejected.
func Round(d duration.Duration, opts Options, relativeTo marker.Marker) (duration.Duration, error) {
	const op = "round"
	if opts.Smallest == unit.Auto && opts.Largest == unit.Auto {
		return duration.Zero, errors.Range(errors.ModuleArith, op, "one of smallestUnit or largestUnit is required")
	}
	existing := d.LargestUnit()
	smallest := opts.Smallest
	if smallest == unit.Auto {
		smallest = unit.Nanosecond
	}
	s, err := resolve(op, opts, unit.Larger(existing, smallest))
	if err != nil {
		return duration.Zero, err
	}

	if relativeTo != nil {
		end, err := relativeTo.Move(d)
		if err != nil {
			return duration.Zero, err
		}
		return differenceWithRounding(op, relativeTo, end, s)
	}

	if existing.IsCalendar() || s.largest.IsCalendar() {
		return duration.Zero, relativeToRequired(op, unit.Larger(existing, s.largest))
	}
	f, err := duration.Balance(roundTime(d.DayTime(), s.smallest, s.increment, s.mode), s.largest)
	if err != nil {
		return duration.Zero, err
	}
	return duration.New(f)
}

// Total returns the length of d in units of u.
func Total(d duration.Duration, u unit.Unit, relativeTo marker.Marker) (float64, error) {
	r, err := TotalExact(d, u, relativeTo)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

// TotalExact is Total as an exact fraction.
func TotalExact(d duration.Duration, u unit.Unit, relativeTo marker.Marker) (*big.Rat, error) {
	const op = "total"
	if !u.Valid() {
		return nil, errors.InvalidOption(errors.ModuleArith, "unit", u)
	}
	if relativeTo == nil {
		if d.HasCalendarUnits() || u.IsCalendar() {
			return nil, relativeToRequired(op, unit.Larger(d.LargestUnit(), u))
		}
		return d.DayTime().Rat(unitLength(u)), nil
	}

	end, err := relativeTo.Move(d)
	if err != nil {
		return nil, err
	}
	zoned := marker.IsZoned(relativeTo)
	if zoned && u.IsTime() {
		return end.Epoch().Sub(relativeTo.Epoch()).Rat(unitLength(u)), nil
	}
	diff, err := relativeTo.Until(end, u)
	if err != nil {
		return nil, err
	}
	if !u.IsCalendar() && !zoned {
		return diff.DayTime().Rat(unitLength(u)), nil
	}
	sign := 1
	if diff.Sign() < 0 {
		sign = -1
	}
	s := settings{largest: u, smallest: u, increment: 1, mode: DifferenceOptions().Mode}
	n, err := nudgeToCalendarUnit(op, sign, diff, end.Epoch(), relativeTo, s)
	if err != nil {
		return nil, err
	}
	return n.total, nil
}
