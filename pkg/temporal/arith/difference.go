package arith

import (
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/duration"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/marker"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/timezone"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// Difference returns the rounded duration from m to other. The largest
// unit defaults to days for plain markers and hours for zoned ones.
//
// With since set the result is m.since(other): the same measurement with
// the rounding direction inverted and the sign flipped.
func Difference(m, other marker.Marker, opts Options, since bool) (duration.Duration, error) {
	op := "until"
	if since {
		op = "since"
	}
	defaultLargest := unit.Day
	if marker.IsZoned(m) {
		defaultLargest = unit.Hour
	}
	s, err := resolve(op, opts, defaultLargest)
	if err != nil {
		return duration.Zero, err
	}
	if since {
		s.mode = s.mode.Invert()
	}
	d, err := differenceWithRounding(op, m, other, s)
	if err != nil {
		return duration.Zero, err
	}
	if since {
		return d.Negated(), nil
	}
	return d, nil
}

// DiffInstants returns the rounded exact time from a to b. Units are
// limited to hours and below; the largest unit defaults to seconds.
func DiffInstants(a, b daytime.DayTime, opts Options) (duration.Duration, error) {
	if opts.Largest != unit.Auto {
		if err := checkTimeUnit("largestUnit", opts.Largest, unit.Hour); err != nil {
			return duration.Zero, err
		}
	}
	if opts.Smallest != unit.Auto {
		if err := checkTimeUnit("smallestUnit", opts.Smallest, unit.Hour); err != nil {
			return duration.Zero, err
		}
	}
	s, err := resolve("diffInstants", opts, unit.Second)
	if err != nil {
		return duration.Zero, err
	}
	return differenceInstant(a, b, s)
}

// RoundInstant rounds an instant to increment multiples of a time unit.
// The increment times the unit must divide a day.
func RoundInstant(instant daytime.DayTime, smallest unit.Unit, increment int64, mode rounding.Mode) (daytime.DayTime, error) {
	if err := checkTimeUnit("smallestUnit", smallest, unit.Hour); err != nil {
		return daytime.Zero, err
	}
	if err := validateDayDividing(smallest, increment); err != nil {
		return daytime.Zero, err
	}
	rounded := instant.RoundTo(increment*smallest.Nanos(), mode)
	if err := rounded.CheckInstant(); err != nil {
		return daytime.Zero, err
	}
	return rounded, nil
}

// RoundDateTime rounds a wall-clock date-time. Rounding to days allows
// only an increment of one.
func RoundDateTime(dt iso.DateTime, smallest unit.Unit, increment int64, mode rounding.Mode) (iso.DateTime, error) {
	if err := validateWallClock(smallest, increment); err != nil {
		return iso.DateTime{}, err
	}
	t := daytime.FromNanos(dt.Time.Nanos()).RoundTo(increment*smallest.Nanos(), mode)
	out := iso.DateTime{
		Date: iso.AddDays(dt.Date, t.Days()),
		Time: iso.TimeFromNanos(t.NanosOfDay()),
	}
	if err := iso.CheckDateTimeInBounds(out); err != nil {
		return iso.DateTime{}, err
	}
	return out, nil
}

// RoundZoned rounds a zoned marker on its wall clock. Rounding to days
// uses the real length of the local day; finer units keep the current
// offset when it is still valid.
func RoundZoned(z marker.Zoned, smallest unit.Unit, increment int64, mode rounding.Mode) (marker.Zoned, error) {
	if err := validateWallClock(smallest, increment); err != nil {
		return marker.Zoned{}, err
	}
	tz := z.TimeZone()

	var instant daytime.DayTime
	if smallest == unit.Day {
		date := z.DateTime().Date
		start, err := timezone.StartOfDay(tz, date)
		if err != nil {
			return marker.Zoned{}, err
		}
		end, err := timezone.StartOfDay(tz, iso.AddDays(date, 1))
		if err != nil {
			return marker.Zoned{}, err
		}
		elapsed, length := z.Epoch().Sub(start), end.Sub(start)
		half := elapsed.Compare(length.Sub(elapsed))
		instant = start
		if mode.Resolve(0, 1, half, !elapsed.IsZero()) != 0 {
			instant = end
		}
	} else {
		dt, err := RoundDateTime(z.DateTime(), smallest, increment, mode)
		if err != nil {
			return marker.Zoned{}, err
		}
		instant, err = timezone.ResolveWithExplicitOffset(tz, dt, z.Offset(), timezone.OffsetPrefer, timezone.Compatible, false)
		if err != nil {
			return marker.Zoned{}, err
		}
	}
	return marker.NewZoned(z.Calendar(), tz, instant)
}

func validateWallClock(smallest unit.Unit, increment int64) error {
	if err := checkTimeUnit("smallestUnit", smallest, unit.Day); err != nil {
		return err
	}
	if smallest == unit.Day {
		if increment != 1 {
			return errors.OutOfRange(errors.ModuleArith, "round", "roundingIncrement", increment, 1, 1)
		}
		return nil
	}
	return rounding.ValidateIncrement(increment, smallest, false)
}

func validateDayDividing(smallest unit.Unit, increment int64) error {
	if increment < 1 {
		return errors.OutOfRange(errors.ModuleArith, "round", "roundingIncrement", increment, 1, rounding.MaxIncrement)
	}
	return rounding.ValidateDividing(increment, daytime.NanosPerDay/smallest.Nanos(), true)
}
