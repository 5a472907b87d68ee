// Package timezone resolves wall-clock date-times to instants and back.
//
// A TimeZone answers two questions: the UTC offset in effect at an instant,
// and the instants a wall-clock date-time may denote (none inside a DST gap,
// two inside an overlap). Disambiguation policies, start-of-day and
// local-day length are built on those two answers and work for any
// implementation.
package timezone

import (
	"sort"
	"time"

	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// TimeZone maps between instants and wall-clock date-times.
type TimeZone interface {
	ID() string
	// OffsetFor returns the UTC offset in nanoseconds at an instant
	OffsetFor(instant daytime.DayTime) int64
	// PossibleInstantsFor returns the instants, in ascending order, whose
	// wall-clock projection is dt
	PossibleInstantsFor(dt iso.DateTime) []daytime.DayTime
}

// Equal reports whether two zones have the same id.
func Equal(a, b TimeZone) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID() == b.ID()
}

// Project returns the wall-clock date-time of an instant.
func Project(tz TimeZone, instant daytime.DayTime) iso.DateTime {
	return iso.FromInstant(instant, tz.OffsetFor(instant))
}

// FixedOffset is a zone with a constant UTC offset.
type FixedOffset struct {
	nanos int64
}

// NewFixedOffset returns a zone for an offset strictly within one day.
func NewFixedOffset(nanos int64) (FixedOffset, error) {
	if nanos <= -unit.NanosPerDay || nanos >= unit.NanosPerDay {
		return FixedOffset{}, offsetRangeError(nanos)
	}
	return FixedOffset{nanos: nanos}, nil
}

func (f FixedOffset) ID() string { return FormatOffset(f.nanos) }

func (f FixedOffset) OffsetFor(daytime.DayTime) int64 { return f.nanos }

func (f FixedOffset) PossibleInstantsFor(dt iso.DateTime) []daytime.DayTime {
	return []daytime.DayTime{iso.ToInstant(dt).AddNanos(-f.nanos)}
}

// Zone is an IANA time zone backed by the Go time zone database.
type Zone struct {
	id  string
	loc *time.Location
}

// UTC is the IANA zone "UTC".
var UTC = &Zone{id: "UTC", loc: time.UTC}

// NewZone wraps a loaded location.
func NewZone(id string, loc *time.Location) *Zone {
	return &Zone{id: id, loc: loc}
}

func (z *Zone) ID() string { return z.id }

// Location returns the underlying location.
func (z *Zone) Location() *time.Location { return z.loc }

func (z *Zone) OffsetFor(instant daytime.DayTime) int64 {
	_, offset := toTime(instant).In(z.loc).Zone()
	return int64(offset) * unit.NanosPerSecond
}

func (z *Zone) PossibleInstantsFor(dt iso.DateTime) []daytime.DayTime {
	return possibleInstants(z, dt)
}

// possibleInstants samples the offsets one day around the wall-clock time
// and keeps each candidate whose own offset agrees with the one used.
func possibleInstants(tz TimeZone, dt iso.DateTime) []daytime.DayTime {
	local := iso.ToInstant(dt)
	before := tz.OffsetFor(local.AddNanos(-unit.NanosPerDay))
	after := tz.OffsetFor(local.AddNanos(unit.NanosPerDay))

	offsets := []int64{before}
	if after != before {
		offsets = append(offsets, after)
	}
	var out []daytime.DayTime
	for _, off := range offsets {
		candidate := local.AddNanos(-off)
		if tz.OffsetFor(candidate) == off {
			out = append(out, candidate)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

func toTime(instant daytime.DayTime) time.Time {
	sec, subsec := instant.Seconds()
	return time.Unix(sec, subsec)
}

func fromTime(t time.Time) daytime.DayTime {
	return daytime.FromUnit(t.Unix(), unit.NanosPerSecond).AddNanos(int64(t.Nanosecond()))
}
