// Package rounding implements the nine rounding modes and the rounding
// increment rules shared by every round, total and diff operation.
package rounding

import (
	"strings"

	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// Mode defines how a value between two increments is resolved
type Mode int

const (
	// Ceil rounds toward positive infinity
	Ceil Mode = iota
	// Floor rounds toward negative infinity
	Floor
	// Expand rounds away from zero
	Expand
	// Trunc rounds toward zero
	Trunc
	// HalfCeil rounds to nearest, ties toward positive infinity
	HalfCeil
	// HalfFloor rounds to nearest, ties toward negative infinity
	HalfFloor
	// HalfExpand rounds to nearest, ties away from zero (commercial rounding)
	HalfExpand
	// HalfTrunc rounds to nearest, ties toward zero
	HalfTrunc
	// HalfEven rounds to nearest, ties to the even neighbour (banker's rounding)
	HalfEven
)

var modeNames = []string{
	"ceil", "floor", "expand", "trunc",
	"halfCeil", "halfFloor", "halfExpand", "halfTrunc", "halfEven",
}

// String returns the option name of the mode
func (m Mode) String() string {
	if m < Ceil || m > HalfEven {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode parses an option name. Matching ignores case so that both
// "halfExpand" and "half-expand"/"halfexpand" are accepted.
func ParseMode(name string) (Mode, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	for i, candidate := range modeNames {
		if strings.ToLower(candidate) == n {
			return Mode(i), nil
		}
	}
	return Trunc, errors.InvalidOption(errors.ModuleRounding, "roundingMode", name)
}

// Invert swaps the direction-sensitive modes. It is used when a difference
// is computed in the opposite direction and negated afterwards.
func (m Mode) Invert() Mode {
	switch m {
	case Ceil:
		return Floor
	case Floor:
		return Ceil
	case HalfCeil:
		return HalfFloor
	case HalfFloor:
		return HalfCeil
	default:
		return m
	}
}

// Resolve picks between truncated (the value rounded toward zero) and its
// neighbour one step away from zero. sign is the sign of the unrounded
// value, half compares the discarded fraction to one half (-1, 0, 1) and
// inexact reports whether anything was discarded at all.
func (m Mode) Resolve(truncated int64, sign int, half int, inexact bool) int64 {
	if !inexact {
		return truncated
	}
	away := truncated + int64(sign)
	if sign == 0 {
		away = truncated
	}

	switch m {
	case Ceil:
		if sign > 0 {
			return away
		}
		return truncated
	case Floor:
		if sign < 0 {
			return away
		}
		return truncated
	case Expand:
		return away
	case Trunc:
		return truncated
	}

	if half > 0 {
		return away
	}
	if half < 0 {
		return truncated
	}

	switch m {
	case HalfCeil:
		if sign > 0 {
			return away
		}
	case HalfFloor:
		if sign < 0 {
			return away
		}
	case HalfExpand:
		return away
	case HalfEven:
		if truncated%2 != 0 {
			return away
		}
	}
	return truncated
}

// RoundInt rounds x to a multiple of increment.
func RoundInt(x, increment int64, mode Mode) int64 {
	if increment <= 1 {
		return x
	}
	q, r := x/increment, x%increment
	sign := 0
	switch {
	case x > 0:
		sign = 1
	case x < 0:
		sign = -1
	}
	if r < 0 {
		r = -r
	}
	return mode.Resolve(q, sign, CompareHalf(r, increment), r != 0) * increment
}

// CompareHalf compares the fraction rem/den with one half without
// overflowing. rem must lie in [0, den).
func CompareHalf(rem, den int64) int {
	other := den - rem
	switch {
	case rem < other:
		return -1
	case rem > other:
		return 1
	default:
		return 0
	}
}

// MaxIncrement is the largest rounding increment accepted for any unit.
const MaxIncrement = 1_000_000_000

// MaximumFor returns the value a time unit's increment must divide: 24 for
// hours, 60 for minutes and seconds, 1000 for sub-second units. ok is false
// for day and calendar units, which carry no divisibility rule.
func MaximumFor(u unit.Unit) (max int64, ok bool) {
	switch u {
	case unit.Hour:
		return 24, true
	case unit.Minute, unit.Second:
		return 60, true
	case unit.Millisecond, unit.Microsecond, unit.Nanosecond:
		return 1000, true
	default:
		return 0, false
	}
}

// ValidateIncrement checks an increment against the unit it applies to.
// Time units must evenly divide the next larger unit and stay below it
// (or equal to it when inclusive). Day and calendar units only need to lie
// in [1, MaxIncrement].
func ValidateIncrement(increment int64, u unit.Unit, inclusive bool) error {
	if increment < 1 || increment > MaxIncrement {
		return errors.OutOfRange(errors.ModuleRounding, "validateIncrement", "roundingIncrement", increment, 1, MaxIncrement)
	}
	dividend, ok := MaximumFor(u)
	if !ok {
		return nil
	}
	return ValidateDividing(increment, dividend, inclusive)
}

// ValidateDividing checks that increment evenly divides dividend and does
// not exceed it (or dividend-1 when not inclusive).
func ValidateDividing(increment, dividend int64, inclusive bool) error {
	maximum := dividend
	if !inclusive {
		maximum--
	}
	if increment > maximum {
		return errors.OutOfRange(errors.ModuleRounding, "validateIncrement", "roundingIncrement", increment, 1, maximum)
	}
	if dividend%increment != 0 {
		return errors.Range(errors.ModuleRounding, "validateIncrement",
			"roundingIncrement %d does not divide %d", increment, dividend)
	}
	return nil
}
