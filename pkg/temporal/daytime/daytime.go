// Package daytime provides DayTime, an exact signed nanosecond quantity split
// into whole days and a nanosecond-of-day remainder.
//
// Every intermediate value of the engine stays inside int64 this way: the
// full instant window of ±10⁸ days is about 8.64×10²¹ nanoseconds, far
// beyond int64, while 10⁸ days and 8.64×10¹³ nanoseconds are not. Big
// integers appear only in FromBig and Big.
package daytime

import (
	"fmt"
	"math/big"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

const (
	// NanosPerDay is the length of a 24-hour day
	NanosPerDay = unit.NanosPerDay
	// MaxInstantDays bounds the instant window on both sides of the epoch
	MaxInstantDays = 100_000_000
)

// DayTime is days*NanosPerDay + nanos with nanos in [0, NanosPerDay).
// The sign of the whole quantity is carried by days.
type DayTime struct {
	days  int64
	nanos int64
}

// Zero is the empty quantity.
var Zero = DayTime{}

// New normalizes any days/nanos pair, carrying whole days out of nanos.
// New(0, -1) is (-1, NanosPerDay-1).
func New(days, nanos int64) DayTime {
	return DayTime{
		days:  days + FloorDiv(nanos, NanosPerDay),
		nanos: FloorMod(nanos, NanosPerDay),
	}
}

// FromNanos converts a nanosecond count.
func FromNanos(n int64) DayTime {
	return New(0, n)
}

// FromUnit converts value units of unitNanos each. unitNanos must divide a
// day or be a whole number of days; the conversion never overflows int64
// for values that fit the unit itself.
func FromUnit(value, unitNanos int64) DayTime {
	if unitNanos >= NanosPerDay {
		return New(value*(unitNanos/NanosPerDay), 0)
	}
	perDay := NanosPerDay / unitNanos
	return New(FloorDiv(value, perDay), FloorMod(value, perDay)*unitNanos)
}

// FromDays returns whole days.
func FromDays(days int64) DayTime {
	return DayTime{days: days}
}

// Days returns the whole-day part (floored for negative values).
func (d DayTime) Days() int64 { return d.days }

// NanosOfDay returns the non-negative remainder.
func (d DayTime) NanosOfDay() int64 { return d.nanos }

// Add returns d + o.
func (d DayTime) Add(o DayTime) DayTime {
	return New(d.days+o.days, d.nanos+o.nanos)
}

// AddNanos returns d + n nanoseconds.
func (d DayTime) AddNanos(n int64) DayTime {
	return New(d.days, d.nanos+n)
}

// Sub returns d - o.
func (d DayTime) Sub(o DayTime) DayTime {
	return New(d.days-o.days, d.nanos-o.nanos)
}

// Neg returns -d.
func (d DayTime) Neg() DayTime {
	return New(-d.days, -d.nanos)
}

// Abs returns |d|.
func (d DayTime) Abs() DayTime {
	if d.days < 0 {
		return d.Neg()
	}
	return d
}

// Sign returns -1, 0 or 1.
func (d DayTime) Sign() int {
	switch {
	case d.days < 0:
		return -1
	case d.days == 0 && d.nanos == 0:
		return 0
	default:
		return 1
	}
}

// IsZero reports whether d is zero.
func (d DayTime) IsZero() bool {
	return d.days == 0 && d.nanos == 0
}

// Compare orders by days, then nanos.
func (d DayTime) Compare(o DayTime) int {
	switch {
	case d.days < o.days:
		return -1
	case d.days > o.days:
		return 1
	case d.nanos < o.nanos:
		return -1
	case d.nanos > o.nanos:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and o are the same quantity.
func (d DayTime) Equal(o DayTime) bool {
	return d == o
}

// Nanos returns the total as an int64 when it fits.
func (d DayTime) Nanos() (int64, bool) {
	return MulAdd(d.days, NanosPerDay, d.nanos)
}

// Seconds returns the total truncated to whole seconds plus the signed
// sub-second remainder.
func (d DayTime) Seconds() (seconds, subsec int64) {
	seconds = d.days*86400 + d.nanos/unit.NanosPerSecond
	subsec = d.nanos % unit.NanosPerSecond
	if seconds < 0 && subsec > 0 {
		seconds++
		subsec -= unit.NanosPerSecond
	}
	return seconds, subsec
}

// Div splits d into whole units of unitNanos (truncated toward zero) and a
// remainder carrying the sign of d. unitNanos must divide a day. ok is false
// when the whole count does not fit an int64.
func (d DayTime) Div(unitNanos int64) (whole int64, rem DayTime, ok bool) {
	sign := d.Sign()
	a := d.Abs()
	whole, ok = MulAdd(a.days, NanosPerDay/unitNanos, a.nanos/unitNanos)
	if !ok {
		return 0, Zero, false
	}
	rem = FromNanos(a.nanos % unitNanos)
	if sign < 0 {
		return -whole, rem.Neg(), true
	}
	return whole, rem, true
}

// RoundTo rounds d to a multiple of increment nanoseconds. increment must
// divide a day or be a whole number of days.
func (d DayTime) RoundTo(increment int64, mode rounding.Mode) DayTime {
	if increment > NanosPerDay {
		return d.RoundToDays(increment/NanosPerDay, mode)
	}
	sign := d.Sign()
	if sign == 0 || increment <= 1 {
		return d
	}
	a := d.Abs()
	perDay := NanosPerDay / increment
	q, r := a.nanos/increment, a.nanos%increment
	// only the parity of the full quotient matters to Resolve
	t := int64(sign) * (q + (a.days&1)*(perDay&1))
	step := Abs(mode.Resolve(t, sign, rounding.CompareHalf(r, increment), r != 0) - t)
	result := New(a.days, (q+step)*increment)
	if sign < 0 {
		return result.Neg()
	}
	return result
}

// RoundToDays rounds d to a multiple of k whole days.
func (d DayTime) RoundToDays(k int64, mode rounding.Mode) DayTime {
	sign := d.Sign()
	if sign == 0 || k < 1 || k == 1 && d.nanos == 0 {
		return d
	}
	a := d.Abs()
	q := a.days / k
	r := New(a.days%k, a.nanos)
	half := r.Compare(FromDays(k).Sub(r))
	t := int64(sign) * q
	step := Abs(mode.Resolve(t, sign, half, !r.IsZero()) - t)
	result := FromDays((q + step) * k)
	if sign < 0 {
		return result.Neg()
	}
	return result
}

// CheckInstant enforces the instant window [-10⁸, 10⁸] days.
func (d DayTime) CheckInstant() error {
	if d.days < -MaxInstantDays || d.days > MaxInstantDays || d.days == MaxInstantDays && d.nanos != 0 {
		return errors.NewErrorBuilder(errors.ModuleDayTime).
			Operation("checkInstant").
			Code(mdwerror.CodeOutOfBounds).
			Message("instant outside of the supported range").
			Detail("days", d.days).
			Build()
	}
	return nil
}

var nanosPerDayBig = big.NewInt(NanosPerDay)

// Big returns the total as a big integer.
func (d DayTime) Big() *big.Int {
	b := new(big.Int).Mul(big.NewInt(d.days), nanosPerDayBig)
	return b.Add(b, big.NewInt(d.nanos))
}

// FromBig converts a big-integer nanosecond count.
func FromBig(n *big.Int) (DayTime, error) {
	days, nanos := new(big.Int).DivMod(n, nanosPerDayBig, new(big.Int))
	if !days.IsInt64() {
		return Zero, errors.Range(errors.ModuleDayTime, "fromBig", "nanosecond value %s out of range", n.String())
	}
	return DayTime{days: days.Int64(), nanos: nanos.Int64()}, nil
}

// Rat returns d/o as an exact fraction. o must not be zero.
func (d DayTime) Rat(o DayTime) *big.Rat {
	return new(big.Rat).SetFrac(d.Big(), o.Big())
}

// String formats d as "days+nanos".
func (d DayTime) String() string {
	return fmt.Sprintf("%d+%d", d.days, d.nanos)
}
