package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

var durationRe = regexp.MustCompile(`(?i)^([+\-\x{2212}])?P` +
	`(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?` +
	`(?:(T)(?:(\d+)(?:[.,](\d{1,9}))?H)?(?:(\d+)(?:[.,](\d{1,9}))?M)?(?:(\d+)(?:[.,](\d{1,9}))?S)?)?$`)

// Parse reads an ISO 8601 duration such as "P1Y2M3DT4H5M6.789S". Only the
// smallest time component may carry a fraction of up to nine digits.
func Parse(s string) (Duration, error) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return Zero, parseError(s)
	}

	var f Fields
	found := false
	for i, u := range []unit.Unit{unit.Year, unit.Month, unit.Week, unit.Day} {
		if m[2+i] == "" {
			continue
		}
		v, err := strconv.ParseInt(m[2+i], 10, 64)
		if err != nil {
			return Zero, parseError(s)
		}
		f.Set(u, v)
		found = true
	}

	timeUnits := []unit.Unit{unit.Hour, unit.Minute, unit.Second}
	timeSeen := false
	fraction := false
	for i, u := range timeUnits {
		whole, frac := m[7+2*i], m[8+2*i]
		if whole == "" {
			continue
		}
		if fraction {
			// a fraction must belong to the smallest component
			return Zero, parseError(s)
		}
		v, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return Zero, parseError(s)
		}
		f.Set(u, v)
		timeSeen, found = true, true
		if frac != "" {
			fraction = true
			n, _ := strconv.ParseInt(frac+strings.Repeat("0", 9-len(frac)), 10, 64)
			// n billionths of a unit are n*unitSeconds nanoseconds
			sub, err := Balance(daytime.FromNanos(n*(u.Nanos()/unit.NanosPerSecond)), u+1)
			if err != nil {
				return Zero, parseError(s)
			}
			for v := u + 1; v <= unit.Nanosecond; v++ {
				f.Set(v, f.Get(v)+sub.Get(v))
			}
		}
	}
	if !found || m[6] != "" && !timeSeen {
		return Zero, parseError(s)
	}

	if m[1] == "-" || m[1] == "−" {
		for _, u := range unit.All() {
			f.Set(u, -f.Get(u))
		}
	}
	return New(f)
}

func parseError(s string) error {
	return errors.Range(errors.ModuleDuration, "parse", "invalid ISO 8601 duration %q", s)
}

// String formats the duration in ISO 8601 form. Sub-second fields are
// folded into a decimal fraction of the seconds.
func (d Duration) String() string {
	if d.sign == 0 {
		return "PT0S"
	}
	a := d.Abs().f

	var b strings.Builder
	if d.sign < 0 {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	for _, p := range []struct {
		v      int64
		suffix byte
	}{{a.Years, 'Y'}, {a.Months, 'M'}, {a.Weeks, 'W'}, {a.Days, 'D'}} {
		if p.v != 0 {
			fmt.Fprintf(&b, "%d%c", p.v, p.suffix)
		}
	}

	secs := daytime.FromUnit(a.Seconds, unit.NanosPerSecond).
		Add(daytime.FromUnit(a.Milliseconds, unit.NanosPerMillisecond)).
		Add(daytime.FromUnit(a.Microseconds, unit.NanosPerMicrosecond)).
		AddNanos(a.Nanoseconds)
	whole, subsec := secs.Seconds()

	if a.Hours == 0 && a.Minutes == 0 && secs.IsZero() {
		return b.String()
	}
	b.WriteByte('T')
	if a.Hours != 0 {
		fmt.Fprintf(&b, "%dH", a.Hours)
	}
	if a.Minutes != 0 {
		fmt.Fprintf(&b, "%dM", a.Minutes)
	}
	if !secs.IsZero() {
		fmt.Fprintf(&b, "%d", whole)
		if subsec != 0 {
			b.WriteString("." + strings.TrimRight(fmt.Sprintf("%09d", subsec), "0"))
		}
		b.WriteByte('S')
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
