package timezone

import (
	"time"

	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

const (
	// transitionStep is the sampling interval of the generic search; no
	// zone changes its offset twice within it
	transitionStep = 7 * unit.NanosPerDay
	// transitionHorizon bounds the generic search
	transitionHorizon = 200 * 366
)

var (
	instantLower = daytime.FromDays(-daytime.MaxInstantDays)
	instantUpper = daytime.FromDays(daytime.MaxInstantDays)
)

// NextTransition returns the first instant after the given one at which the
// zone's offset changes.
func NextTransition(tz TimeZone, after daytime.DayTime) (daytime.DayTime, bool) {
	switch z := tz.(type) {
	case FixedOffset:
		return daytime.Zero, false
	case *Zone:
		return z.nextTransition(after)
	}
	return scanTransition(tz, after, 1)
}

// PreviousTransition returns the last instant before the given one at which
// the zone's offset changed.
func PreviousTransition(tz TimeZone, before daytime.DayTime) (daytime.DayTime, bool) {
	switch z := tz.(type) {
	case FixedOffset:
		return daytime.Zero, false
	case *Zone:
		return z.previousTransition(before)
	}
	return scanTransition(tz, before.AddNanos(-1), -1)
}

func (z *Zone) nextTransition(after daytime.DayTime) (daytime.DayTime, bool) {
	t := toTime(after).In(z.loc)
	_, offset := t.Zone()
	for {
		_, end := t.ZoneBounds()
		if end.IsZero() {
			return daytime.Zero, false
		}
		at := fromTime(end)
		if at.Compare(instantUpper) > 0 {
			return daytime.Zero, false
		}
		if _, next := end.Zone(); next != offset {
			return at, true
		}
		t = end
	}
}

func (z *Zone) previousTransition(before daytime.DayTime) (daytime.DayTime, bool) {
	t := toTime(before).Add(-time.Nanosecond).In(z.loc)
	for {
		start, _ := t.ZoneBounds()
		if start.IsZero() {
			return daytime.Zero, false
		}
		at := fromTime(start)
		if at.Compare(instantLower) < 0 {
			return daytime.Zero, false
		}
		_, cur := start.Zone()
		prev := start.Add(-time.Nanosecond)
		if _, was := prev.Zone(); was != cur {
			return at, true
		}
		t = prev
	}
}

// scanTransition steps through time in one direction until the offset
// changes, then bisects the last step down to the nanosecond.
func scanTransition(tz TimeZone, from daytime.DayTime, dir int64) (daytime.DayTime, bool) {
	offset := tz.OffsetFor(from)
	lo := from
	for i := 0; i < transitionHorizon/7; i++ {
		hi := lo.AddNanos(dir * transitionStep)
		if hi.Compare(instantLower) < 0 || hi.Compare(instantUpper) > 0 {
			return daytime.Zero, false
		}
		if tz.OffsetFor(hi) == offset {
			lo = hi
			continue
		}
		// invariant: offset(lo) == offset, offset(hi) != offset
		for {
			gap, _ := hi.Sub(lo).Abs().Nanos()
			if gap <= 1 {
				break
			}
			mid := lo.AddNanos(dir * (gap / 2))
			if tz.OffsetFor(mid) == offset {
				lo = mid
			} else {
				hi = mid
			}
		}
		if dir > 0 {
			return hi, true
		}
		return lo, true
	}
	return daytime.Zero, false
}
