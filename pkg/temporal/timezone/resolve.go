package timezone

import (
	"strings"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// Disambiguation selects an instant for a wall-clock time that occurs zero
// or two times.
type Disambiguation int

const (
	// Compatible takes the earlier instant of an overlap and moves forward
	// across a gap
	Compatible Disambiguation = iota
	Earlier
	Later
	Reject
)

var disambiguationNames = []string{"compatible", "earlier", "later", "reject"}

func (d Disambiguation) String() string {
	if d < Compatible || d > Reject {
		return "unknown"
	}
	return disambiguationNames[d]
}

// ParseDisambiguation parses an option name; "" selects Compatible.
func ParseDisambiguation(s string) (Disambiguation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Compatible, nil
	}
	for i, name := range disambiguationNames {
		if name == s {
			return Disambiguation(i), nil
		}
	}
	return Compatible, errors.InvalidOption(errors.ModuleTimeZone, "disambiguation", s)
}

// OffsetPolicy decides between an explicit UTC offset and the zone's rules
// when both are given.
type OffsetPolicy int

const (
	// OffsetReject requires the offset to be valid for the zone
	OffsetReject OffsetPolicy = iota
	// OffsetUse trusts the offset and ignores the zone
	OffsetUse
	// OffsetPrefer uses the offset when valid, the zone otherwise
	OffsetPrefer
	// OffsetIgnore discards the offset
	OffsetIgnore
)

var offsetPolicyNames = []string{"reject", "use", "prefer", "ignore"}

func (p OffsetPolicy) String() string {
	if p < OffsetReject || p > OffsetIgnore {
		return "unknown"
	}
	return offsetPolicyNames[p]
}

// ParseOffsetPolicy parses an option name; "" selects OffsetReject.
func ParseOffsetPolicy(s string) (OffsetPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OffsetReject, nil
	}
	for i, name := range offsetPolicyNames {
		if name == s {
			return OffsetPolicy(i), nil
		}
	}
	return OffsetReject, errors.InvalidOption(errors.ModuleTimeZone, "offset", s)
}

// ResolveSingleInstant returns the instant a wall-clock time denotes.
func ResolveSingleInstant(tz TimeZone, dt iso.DateTime, dis Disambiguation) (daytime.DayTime, error) {
	const op = "resolveSingleInstant"
	if err := iso.CheckDateTimeInBounds(dt); err != nil {
		return daytime.Zero, err
	}

	candidates := tz.PossibleInstantsFor(dt)
	switch {
	case len(candidates) == 1:
		return checked(candidates[0])
	case len(candidates) > 1:
		switch dis {
		case Earlier, Compatible:
			return checked(candidates[0])
		case Later:
			return checked(candidates[len(candidates)-1])
		}
		return daytime.Zero, ambiguous(op, tz, dt, "occurs twice")
	}

	if dis == Reject {
		return daytime.Zero, ambiguous(op, tz, dt, "falls into a gap")
	}
	local := iso.ToInstant(dt)
	gap := tz.OffsetFor(local.AddNanos(unit.NanosPerDay)) - tz.OffsetFor(local.AddNanos(-unit.NanosPerDay))
	if dis == Earlier {
		gap = -gap
	}
	shifted := iso.FromInstant(local.AddNanos(gap), 0)
	candidates = tz.PossibleInstantsFor(shifted)
	if len(candidates) == 0 {
		return daytime.Zero, errors.Range(errors.ModuleTimeZone, op, "cannot resolve %s in %s", dt, tz.ID())
	}
	if dis == Earlier {
		return checked(candidates[0])
	}
	return checked(candidates[len(candidates)-1])
}

// ResolveWithExplicitOffset resolves a wall-clock time that came with a UTC
// offset. With fuzzy set, candidate offsets match at minute precision.
func ResolveWithExplicitOffset(tz TimeZone, dt iso.DateTime, offset int64, policy OffsetPolicy, dis Disambiguation, fuzzy bool) (daytime.DayTime, error) {
	const op = "resolveWithExplicitOffset"
	switch policy {
	case OffsetUse:
		if err := iso.CheckDateTimeInBounds(dt); err != nil {
			return daytime.Zero, err
		}
		return checked(iso.ToInstant(dt).AddNanos(-offset))
	case OffsetIgnore:
		return ResolveSingleInstant(tz, dt, dis)
	}

	for _, candidate := range tz.PossibleInstantsFor(dt) {
		candidateOffset := tz.OffsetFor(candidate)
		if candidateOffset == offset || fuzzy && RoundOffsetToMinute(candidateOffset) == offset {
			return checked(candidate)
		}
	}
	if policy == OffsetReject {
		return daytime.Zero, errors.NewErrorBuilder(errors.ModuleTimeZone).
			Operation(op).
			Code(mdwerror.CodeRangeError).
			Messagef("offset %s is not valid for %s in %s", FormatOffset(offset), dt, tz.ID()).
			Detail("offset", FormatOffset(offset)).
			Build()
	}
	return ResolveSingleInstant(tz, dt, dis)
}

// StartOfDay returns the first instant of a calendar day in a zone. When
// midnight falls into a gap the day starts at the end of the gap.
func StartOfDay(tz TimeZone, d iso.Date) (daytime.DayTime, error) {
	midnight := iso.DateTime{Date: d}
	if err := iso.CheckDateTimeInBounds(midnight); err != nil {
		return daytime.Zero, err
	}
	if candidates := tz.PossibleInstantsFor(midnight); len(candidates) > 0 {
		return checked(candidates[0])
	}
	t, ok := NextTransition(tz, iso.ToInstant(midnight).AddNanos(-unit.NanosPerDay))
	if !ok {
		return daytime.Zero, errors.Range(errors.ModuleTimeZone, "startOfDay", "no start of day for %s in %s", d, tz.ID())
	}
	return checked(t)
}

// NanosecondsInLocalDay returns the length of a calendar day in a zone.
func NanosecondsInLocalDay(tz TimeZone, d iso.Date) (int64, error) {
	start, err := StartOfDay(tz, d)
	if err != nil {
		return 0, err
	}
	end, err := StartOfDay(tz, iso.AddDays(d, 1))
	if err != nil {
		return 0, err
	}
	n, _ := end.Sub(start).Nanos()
	return n, nil
}

func checked(instant daytime.DayTime) (daytime.DayTime, error) {
	if err := instant.CheckInstant(); err != nil {
		return daytime.Zero, err
	}
	return instant, nil
}

func ambiguous(op string, tz TimeZone, dt iso.DateTime, what string) error {
	return errors.NewErrorBuilder(errors.ModuleTimeZone).
		Operation(op).
		Code(mdwerror.CodeAmbiguousTime).
		Messagef("%s %s in %s", dt, what, tz.ID()).
		Detail("timeZone", tz.ID()).
		Build()
}
