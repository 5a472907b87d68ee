// Package unit enumerates the duration units from years down to nanoseconds.
package unit

import (
	"strings"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/errors"
)

// Unit is a duration unit. Larger units have smaller values so that
// "a < b" reads as "a is coarser than b".
type Unit int

const (
	Year Unit = iota
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
	Microsecond
	Nanosecond

	// Auto is not a unit; it marks an option left to its default.
	Auto Unit = -1
)

// Count is the number of real units.
const Count = 10

const (
	NanosPerMicrosecond int64 = 1000
	NanosPerMillisecond       = 1000 * NanosPerMicrosecond
	NanosPerSecond            = 1000 * NanosPerMillisecond
	NanosPerMinute            = 60 * NanosPerSecond
	NanosPerHour              = 60 * NanosPerMinute
	NanosPerDay               = 24 * NanosPerHour
)

var names = [Count]string{
	"year", "month", "week", "day", "hour", "minute", "second",
	"millisecond", "microsecond", "nanosecond",
}

var nanos = [Count]int64{
	Day:         NanosPerDay,
	Hour:        NanosPerHour,
	Minute:      NanosPerMinute,
	Second:      NanosPerSecond,
	Millisecond: NanosPerMillisecond,
	Microsecond: NanosPerMicrosecond,
	Nanosecond:  1,
}

// All returns every unit, largest first.
func All() []Unit {
	return []Unit{Year, Month, Week, Day, Hour, Minute, Second, Millisecond, Microsecond, Nanosecond}
}

// String returns the singular name.
func (u Unit) String() string {
	if u == Auto {
		return "auto"
	}
	if !u.Valid() {
		return "unknown"
	}
	return names[u]
}

// Plural returns the plural name used for duration fields.
func (u Unit) Plural() string {
	return u.String() + "s"
}

// Valid reports whether u is a real unit.
func (u Unit) Valid() bool {
	return u >= Year && u <= Nanosecond
}

// IsCalendar reports whether u has a variable length (year, month, week).
func (u Unit) IsCalendar() bool {
	return u >= Year && u <= Week
}

// IsTime reports whether u is finer than a day.
func (u Unit) IsTime() bool {
	return u > Day && u <= Nanosecond
}

// Nanos returns the fixed length of u in nanoseconds, counting a day as 24
// hours. Calendar units return 0.
func (u Unit) Nanos() int64 {
	if !u.Valid() {
		return 0
	}
	return nanos[u]
}

// Larger returns the coarser of a and b.
func Larger(a, b Unit) Unit {
	if a < b {
		return a
	}
	return b
}

// Smaller returns the finer of a and b.
func Smaller(a, b Unit) Unit {
	if a > b {
		return a
	}
	return b
}

// Parse accepts singular or plural unit names. "auto" and the empty string
// return Auto.
func Parse(name string) (Unit, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "auto" {
		return Auto, nil
	}
	n = strings.TrimSuffix(n, "s")
	for i, candidate := range names {
		if candidate == n {
			return Unit(i), nil
		}
	}
	return Auto, errors.NewErrorBuilder(errors.ModuleArith).
		Operation("parseUnit").
		Code(mdwerror.CodeInvalidOption).
		Messagef("invalid unit %q", name).
		Detail("value", name).
		Build()
}
