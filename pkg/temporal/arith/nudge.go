package arith

import (
	"math/big"

	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/calendar"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/duration"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/marker"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// nudge is a duration rounded at its smallest unit together with the
// position it now ends at.
type nudge struct {
	duration duration.Duration
	total    *big.Rat
	epoch    daytime.DayTime
	expanded bool
}

// differenceWithRounding measures start to end and rounds the result.
func differenceWithRounding(op string, start, end marker.Marker, s settings) (duration.Duration, error) {
	if start.Compare(end) == 0 {
		return duration.Zero, nil
	}
	if marker.IsZoned(start) && s.largest.IsTime() {
		return differenceInstant(start.Epoch(), end.Epoch(), s)
	}
	diff, err := start.Until(end, s.largest)
	if err != nil {
		return duration.Zero, err
	}
	if s.exact() {
		return diff, nil
	}
	return roundRelative(op, diff, end.Epoch(), start, s)
}

func differenceInstant(a, b daytime.DayTime, s settings) (duration.Duration, error) {
	rounded := roundTime(b.Sub(a), s.smallest, s.increment, s.mode)
	f, err := duration.Balance(rounded, s.largest)
	if err != nil {
		return duration.Zero, err
	}
	return duration.New(f)
}

// roundRelative rounds d, which ends at dest when applied to start. Units
// of irregular length are rounded by locating dest between the two
// candidate results; exact units are rounded in nanoseconds. A rounding
// that spilled into the next day or calendar unit is then bubbled up.
func roundRelative(op string, d duration.Duration, dest daytime.DayTime, start marker.Marker, s settings) (duration.Duration, error) {
	zoned := marker.IsZoned(start)
	sign := 1
	if d.Sign() < 0 {
		sign = -1
	}

	var (
		n   nudge
		err error
	)
	switch {
	case s.smallest.IsCalendar() || zoned && s.smallest == unit.Day:
		n, err = nudgeToCalendarUnit(op, sign, d, dest, start, s)
	case zoned:
		n, err = nudgeToZonedTime(sign, d, start, s)
	default:
		n, err = nudgeToDayOrTime(d, dest, s)
	}
	if err != nil {
		return duration.Zero, err
	}
	if n.expanded && s.smallest != unit.Week {
		return bubble(sign, n.duration, n.epoch, start, s.largest, unit.Larger(s.smallest, unit.Day))
	}
	return n.duration, nil
}

// nudgeToCalendarUnit brackets dest between the truncated result and the
// result one increment further, then rounds the fraction of the bracket
// dest has covered.
func nudgeToCalendarUnit(op string, sign int, d duration.Duration, dest daytime.DayTime, start marker.Marker, s settings) (nudge, error) {
	base := d.DatePart()
	step := s.increment * int64(sign)
	trunc := func(v int64) int64 { return rounding.RoundInt(v, s.increment, rounding.Trunc) }

	var r1 int64
	var from, to calendar.Delta
	switch s.smallest {
	case unit.Year:
		r1 = trunc(base.Years)
		from = calendar.Delta{Years: r1}
		to = calendar.Delta{Years: r1 + step}
	case unit.Month:
		r1 = trunc(base.Months)
		from = calendar.Delta{Years: base.Years, Months: r1}
		to = calendar.Delta{Years: base.Years, Months: r1 + step}
	case unit.Week:
		cal := start.Calendar()
		weeksStart, err := cal.DateAdd(start.DateTime().Date, calendar.Delta{Years: base.Years, Months: base.Months}, iso.Constrain)
		if err != nil {
			return nudge{}, err
		}
		weeks, err := cal.DateUntil(weeksStart, iso.AddDays(weeksStart, base.Days), unit.Week)
		if err != nil {
			return nudge{}, err
		}
		r1 = trunc(base.Weeks + weeks.Weeks)
		from = calendar.Delta{Years: base.Years, Months: base.Months, Weeks: r1}
		to = calendar.Delta{Years: base.Years, Months: base.Months, Weeks: r1 + step}
	default:
		r1 = trunc(base.Days)
		from = calendar.Delta{Years: base.Years, Months: base.Months, Weeks: base.Weeks, Days: r1}
		to = calendar.Delta{Years: base.Years, Months: base.Months, Weeks: base.Weeks, Days: r1 + step}
	}

	startEpoch, err := start.EpochAt(from)
	if err != nil {
		return nudge{}, err
	}
	endEpoch, err := start.EpochAt(to)
	if err != nil {
		return nudge{}, err
	}
	num, den := dest.Sub(startEpoch), endEpoch.Sub(startEpoch)
	if den.IsZero() || num.Sign() == -sign || num.Abs().Compare(den.Abs()) > 0 {
		return nudge{}, errors.Range(errors.ModuleArith, op, "%s is outside the %s rounding window", d, s.smallest)
	}

	frac := num.Rat(den)
	total := new(big.Rat).Mul(frac, new(big.Rat).SetInt64(step))
	total.Add(total, new(big.Rat).SetInt64(r1))

	truncated := r1 / s.increment
	half := num.Abs().Compare(den.Abs().Sub(num.Abs()))
	rounded := s.mode.Resolve(truncated, sign, half, !num.IsZero())

	n := nudge{total: total}
	result := from
	n.epoch = startEpoch
	if rounded != truncated {
		n.expanded = true
		result = to
		n.epoch = endEpoch
	}
	n.duration, err = duration.Combine(result, daytime.Zero, s.largest)
	return n, err
}

// nudgeToZonedTime rounds the time part within the local day it falls
// into, carrying into the next day when the rounded time reaches the
// day's real length.
func nudgeToZonedTime(sign int, d duration.Duration, start marker.Marker, s settings) (nudge, error) {
	base := d.DatePart()
	startEpoch, err := start.EpochAt(base)
	if err != nil {
		return nudge{}, err
	}
	next := base
	next.Days += int64(sign)
	endEpoch, err := start.EpochAt(next)
	if err != nil {
		return nudge{}, err
	}
	daySpan := endEpoch.Sub(startEpoch)

	rounded := roundTime(d.TimePart(), s.smallest, s.increment, s.mode)
	n := nudge{epoch: startEpoch.Add(rounded)}
	if beyond := rounded.Sub(daySpan); beyond.Sign() != -sign {
		n.expanded = true
		base = next
		rounded = roundTime(beyond, s.smallest, s.increment, s.mode)
		n.epoch = endEpoch.Add(rounded)
	}
	n.duration, err = duration.Combine(base, rounded, s.largest)
	return n, err
}

// nudgeToDayOrTime rounds days and time together as one exact quantity.
func nudgeToDayOrTime(d duration.Duration, dest daytime.DayTime, s settings) (nudge, error) {
	t := d.DayTime()
	rounded := roundTime(t, s.smallest, s.increment, s.mode)
	wholeDays := truncDays(t)
	roundedDays := truncDays(rounded)
	dayDelta := roundedDays - wholeDays

	n := nudge{
		epoch:    dest.Add(rounded.Sub(t)),
		expanded: daytime.Sign(dayDelta) == t.Sign(),
	}
	base := d.DatePart()
	base.Days = 0
	remainder := rounded
	if s.largest <= unit.Day {
		base.Days = roundedDays
		remainder = rounded.Sub(daytime.FromDays(roundedDays))
	}
	var err error
	n.duration, err = duration.Combine(base, remainder, s.largest)
	return n, err
}

// truncDays returns the whole days in t, rounded toward zero.
func truncDays(t daytime.DayTime) int64 {
	if t.Sign() < 0 {
		return -t.Abs().Days()
	}
	return t.Days()
}

// bubble carries a rounded duration into successively larger units for as
// long as the position it ends at does not fall short of the larger unit.
func bubble(sign int, d duration.Duration, nudged daytime.DayTime, start marker.Marker, largest, smallest unit.Unit) (duration.Duration, error) {
	if smallest == largest {
		return d, nil
	}
	base := d.DatePart()
	for u := smallest - 1; u >= largest; u-- {
		if u == unit.Week && largest != unit.Week {
			continue
		}
		var end calendar.Delta
		switch u {
		case unit.Year:
			end = calendar.Delta{Years: base.Years + int64(sign)}
		case unit.Month:
			end = calendar.Delta{Years: base.Years, Months: base.Months + int64(sign)}
		case unit.Week:
			end = calendar.Delta{Years: base.Years, Months: base.Months, Weeks: base.Weeks + int64(sign)}
		default:
			continue
		}
		endEpoch, err := start.EpochAt(end)
		if err != nil {
			return duration.Zero, err
		}
		if nudged.Sub(endEpoch).Sign() == -sign {
			break
		}
		base = end
		if d, err = duration.Combine(base, daytime.Zero, largest); err != nil {
			return duration.Zero, err
		}
	}
	return d, nil
}
