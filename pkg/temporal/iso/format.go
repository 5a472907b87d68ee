package iso

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/chronos/foundation/core/errors"
)

// String formats d as YYYY-MM-DD, using a signed six-digit year outside
// 0000..9999.
func (d Date) String() string {
	if d.Year < 0 || d.Year > 9999 {
		sign := "+"
		y := d.Year
		if y < 0 {
			sign, y = "-", -y
		}
		return fmt.Sprintf("%s%06d-%02d-%02d", sign, y, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String formats t as HH:MM:SS with the shortest exact fraction.
func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	frac := t.Millisecond*1_000_000 + t.Microsecond*1000 + t.Nanosecond
	if frac == 0 {
		return s
	}
	return s + "." + strings.TrimRight(fmt.Sprintf("%09d", frac), "0")
}

// String formats dt as date 'T' time.
func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

var (
	dateRe = regexp.MustCompile(`^([+-]\d{6}|\d{4})-(\d{2})-(\d{2})`)
	timeRe = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2})(?:[.,](\d{1,9}))?)?`)
)

// ParseDate parses YYYY-MM-DD or ±YYYYYY-MM-DD with Reject semantics.
func ParseDate(s string) (Date, error) {
	d, rest, err := parseDatePrefix(s)
	if err != nil {
		return Date{}, err
	}
	if rest != "" {
		return Date{}, parseError("date", s)
	}
	return d, nil
}

// ParseTime parses HH:MM[:SS[.fffffffff]].
func ParseTime(s string) (Time, error) {
	t, rest, err := parseTimePrefix(s)
	if err != nil {
		return Time{}, err
	}
	if rest != "" {
		return Time{}, parseError("time", s)
	}
	return t, nil
}

// ParseDateTime parses a date optionally followed by 'T' and a time.
func ParseDateTime(s string) (DateTime, error) {
	dt, rest, err := ParseDateTimePrefix(s)
	if err != nil {
		return DateTime{}, err
	}
	if rest != "" {
		return DateTime{}, parseError("date-time", s)
	}
	return dt, nil
}

// ParseDateTimePrefix parses a leading date-time and returns the unparsed
// rest, which may hold an offset or a bracketed zone annotation.
func ParseDateTimePrefix(s string) (DateTime, string, error) {
	d, rest, err := parseDatePrefix(s)
	if err != nil {
		return DateTime{}, "", err
	}
	dt := DateTime{Date: d}
	if rest != "" && (rest[0] == 'T' || rest[0] == 't' || rest[0] == ' ') {
		dt.Time, rest, err = parseTimePrefix(rest[1:])
		if err != nil {
			return DateTime{}, "", err
		}
	}
	if err := CheckDateTimeInBounds(dt); err != nil {
		return DateTime{}, "", err
	}
	return dt, rest, nil
}

func parseDatePrefix(s string) (Date, string, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil || m[1] == "-000000" {
		return Date{}, "", parseError("date", s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	d, err := RegulateDate(year, month, day, Reject)
	if err != nil {
		return Date{}, "", err
	}
	if err := CheckDateInBounds(d); err != nil {
		return Date{}, "", err
	}
	return d, s[len(m[0]):], nil
}

func parseTimePrefix(s string) (Time, string, error) {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return Time{}, "", parseError("time", s)
	}
	var t Time
	t.Hour, _ = strconv.Atoi(m[1])
	t.Minute, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		t.Second, _ = strconv.Atoi(m[3])
		if t.Second == 60 {
			t.Second = 59
		}
	}
	if m[4] != "" {
		frac, _ := strconv.Atoi(m[4] + strings.Repeat("0", 9-len(m[4])))
		t.Millisecond = frac / 1_000_000
		t.Microsecond = frac / 1000 % 1000
		t.Nanosecond = frac % 1000
	}
	t, err := RegulateTime(t, Reject)
	if err != nil {
		return Time{}, "", err
	}
	return t, s[len(m[0]):], nil
}

func parseError(kind, input string) error {
	return errors.Range(errors.ModuleISO, "parse", "invalid ISO %s %q", kind, input)
}
