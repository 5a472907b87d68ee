package timezone

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// offsetRe matches ±HH[:MM[:SS[.fffffffff]]] with optional colons and the
// U+2212 minus sign.
var offsetRe = regexp.MustCompile(`^([+\-\x{2212}])(\d{2})(?::?(\d{2})(?::?(\d{2})(?:[.,](\d{1,9}))?)?)?$`)

// ParseOffset parses a UTC offset string into nanoseconds. minutePrecision
// reports whether the string had no seconds component.
func ParseOffset(s string) (nanos int64, minutePrecision bool, err error) {
	m := offsetRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false, errors.Range(errors.ModuleTimeZone, "parseOffset", "invalid offset %q", s)
	}
	hours, minutes, seconds := digits(m[2]), digits(m[3]), digits(m[4])
	var frac int64
	if m[5] != "" {
		frac = digits(m[5] + strings.Repeat("0", 9-len(m[5])))
	}
	if hours > 23 || minutes > 59 || seconds > 59 {
		return 0, false, errors.Range(errors.ModuleTimeZone, "parseOffset", "offset %q out of range", s)
	}
	nanos = hours*unit.NanosPerHour + minutes*unit.NanosPerMinute + seconds*unit.NanosPerSecond + frac
	if m[1] != "+" {
		nanos = -nanos
	}
	return nanos, m[4] == "", nil
}

// digits parses a matched digit group; an absent group is zero.
func digits(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// FormatOffset formats nanoseconds as ±HH:MM, adding seconds and a trimmed
// fraction only when they are nonzero.
func FormatOffset(nanos int64) string {
	sign := '+'
	if nanos < 0 {
		sign = '-'
		nanos = -nanos
	}
	h := nanos / unit.NanosPerHour
	m := nanos / unit.NanosPerMinute % 60
	s := nanos / unit.NanosPerSecond % 60
	frac := nanos % unit.NanosPerSecond

	out := fmt.Sprintf("%c%02d:%02d", sign, h, m)
	if s != 0 || frac != 0 {
		out += fmt.Sprintf(":%02d", s)
	}
	if frac != 0 {
		out += "." + strings.TrimRight(fmt.Sprintf("%09d", frac), "0")
	}
	return out
}

// RoundOffsetToMinute rounds an offset half away from zero to whole minutes.
func RoundOffsetToMinute(nanos int64) int64 {
	return rounding.RoundInt(nanos, unit.NanosPerMinute, rounding.HalfExpand)
}

func offsetRangeError(nanos int64) error {
	return errors.OutOfRange(errors.ModuleTimeZone, "offset", "offsetNanoseconds", nanos, -unit.NanosPerDay+1, unit.NanosPerDay-1)
}

// ZonedInput is a date-time string split into its parts.
type ZonedInput struct {
	DateTime iso.DateTime
	// Offset is valid when HasOffset is set
	Offset          int64
	HasOffset       bool
	UTCDesignator   bool
	MinutePrecision bool
	// Zone is the bracketed annotation, empty when absent
	Zone string
}

// ParseZoned parses "<date-time>[offset|Z][[zone]]".
func ParseZoned(s string) (ZonedInput, error) {
	dt, rest, err := iso.ParseDateTimePrefix(s)
	if err != nil {
		return ZonedInput{}, err
	}
	in := ZonedInput{DateTime: dt}

	offsetPart := rest
	if i := strings.IndexByte(rest, '['); i >= 0 {
		offsetPart = rest[:i]
		annotation := rest[i:]
		if !strings.HasSuffix(annotation, "]") || strings.Count(annotation, "[") != 1 {
			return ZonedInput{}, errors.Range(errors.ModuleTimeZone, "parseZoned", "invalid zone annotation in %q", s)
		}
		in.Zone = strings.TrimPrefix(annotation[1:len(annotation)-1], "!")
	}

	switch {
	case offsetPart == "":
	case offsetPart == "Z" || offsetPart == "z":
		in.UTCDesignator = true
	default:
		in.Offset, in.MinutePrecision, err = ParseOffset(offsetPart)
		if err != nil {
			return ZonedInput{}, err
		}
		in.HasOffset = true
	}
	return in, nil
}
