// Package arith implements duration arithmetic: adding, comparing,
// rounding and totalling durations, and the rounded differences between
// markers, instants and wall-clock times.
//
// Durations with years, months or weeks have no fixed length, so most
// operations accept an optional marker.Marker to measure them from.
package arith

import (
	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// Options controls the units and rounding of a result. unit.Auto leaves a
// unit to its operation's default.
type Options struct {
	Largest   unit.Unit
	Smallest  unit.Unit
	Increment int64
	Mode      rounding.Mode
}

// RoundOptions returns the defaults of Round for a smallest unit.
func RoundOptions(smallest unit.Unit) Options {
	return Options{Largest: unit.Auto, Smallest: smallest, Increment: 1, Mode: rounding.HalfExpand}
}

// DifferenceOptions returns the defaults of the difference operations.
func DifferenceOptions() Options {
	return Options{Largest: unit.Auto, Smallest: unit.Auto, Increment: 1, Mode: rounding.Trunc}
}

// settings are Options with every default applied.
type settings struct {
	largest   unit.Unit
	smallest  unit.Unit
	increment int64
	mode      rounding.Mode
}

func resolve(op string, o Options, defaultLargest unit.Unit) (settings, error) {
	s := settings{largest: o.Largest, smallest: o.Smallest, increment: o.Increment, mode: o.Mode}
	if s.smallest == unit.Auto {
		s.smallest = unit.Nanosecond
	}
	if s.largest == unit.Auto {
		s.largest = unit.Larger(defaultLargest, s.smallest)
	}
	if s.increment == 0 {
		s.increment = 1
	}
	if !s.smallest.Valid() {
		return settings{}, errors.InvalidOption(errors.ModuleArith, "smallestUnit", s.smallest)
	}
	if !s.largest.Valid() {
		return settings{}, errors.InvalidOption(errors.ModuleArith, "largestUnit", s.largest)
	}
	if unit.Larger(s.largest, s.smallest) != s.largest {
		return settings{}, errors.Range(errors.ModuleArith, op,
			"largestUnit %s is smaller than smallestUnit %s", s.largest, s.smallest)
	}
	if err := rounding.ValidateIncrement(s.increment, s.smallest, false); err != nil {
		return settings{}, err
	}
	if s.increment > 1 && s.largest != s.smallest && !s.smallest.IsTime() {
		return settings{}, errors.Range(errors.ModuleArith, op,
			"roundingIncrement %d on %s requires largestUnit %s", s.increment, s.smallest.Plural(), s.smallest)
	}
	return s, nil
}

func (s settings) exact() bool {
	return s.smallest == unit.Nanosecond && s.increment == 1
}

// roundTime rounds t to increment multiples of u, a day or time unit.
func roundTime(t daytime.DayTime, u unit.Unit, increment int64, mode rounding.Mode) daytime.DayTime {
	if u == unit.Day {
		return t.RoundToDays(increment, mode)
	}
	return t.RoundTo(increment*u.Nanos(), mode)
}

func unitLength(u unit.Unit) daytime.DayTime {
	return daytime.FromNanos(u.Nanos())
}

func relativeToRequired(op string, u unit.Unit) error {
	return errors.NewErrorBuilder(errors.ModuleArith).
		Operation(op).
		Code(mdwerror.CodeRelativeToRequired).
		Messagef("a relativeTo marker is required for %s", u.Plural()).
		Detail("unit", u.String()).
		Build()
}

// checkTimeUnit rejects units coarser than limit for operations on exact
// quantities.
func checkTimeUnit(option string, u, limit unit.Unit) error {
	if !u.Valid() || u < limit {
		return errors.InvalidOption(errors.ModuleArith, option, u)
	}
	return nil
}
