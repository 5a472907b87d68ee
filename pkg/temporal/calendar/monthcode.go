package calendar

import (
	"fmt"
	"strconv"

	"github.com/msto63/chronos/foundation/core/errors"
)

// MonthCode identifies a month independently of its ordinal position, which
// shifts in years that contain a leap month. "M05L" is the leap month that
// follows month five.
type MonthCode struct {
	Number int
	Leap   bool
}

// String formats the code as M01..M13 with an optional L suffix.
func (c MonthCode) String() string {
	if c.Leap {
		return fmt.Sprintf("M%02dL", c.Number)
	}
	return fmt.Sprintf("M%02d", c.Number)
}

// ParseMonthCode parses "M" followed by two digits and an optional "L".
func ParseMonthCode(s string) (MonthCode, error) {
	if (len(s) != 3 && len(s) != 4) || s[0] != 'M' || len(s) == 4 && s[3] != 'L' {
		return MonthCode{}, invalidMonthCode(s)
	}
	n, err := strconv.Atoi(s[1:3])
	if err != nil || n < 0 || s[1] == '+' || s[1] == '-' {
		return MonthCode{}, invalidMonthCode(s)
	}
	// M00L is valid syntax for a leap month before the first month
	if n == 0 && len(s) == 3 {
		return MonthCode{}, invalidMonthCode(s)
	}
	return MonthCode{Number: n, Leap: len(s) == 4}, nil
}

func invalidMonthCode(s string) error {
	return errors.Range(errors.ModuleCalendar, "parseMonthCode", "invalid monthCode %q", s)
}

// MonthCodeOf returns the code of an ordinal month in a year whose leap
// month sits at ordinal leapMonth (0 for none).
func MonthCodeOf(month, leapMonth int) MonthCode {
	switch {
	case leapMonth == 0 || month < leapMonth:
		return MonthCode{Number: month}
	case month == leapMonth:
		return MonthCode{Number: month - 1, Leap: true}
	default:
		return MonthCode{Number: month - 1}
	}
}

// monthOfCode is the inverse of MonthCodeOf. ok is false when the code names
// a leap month the year does not have or a month beyond the year's end.
func monthOfCode(r Rules, year int, code MonthCode) (int, bool) {
	lm := r.LeapMonth(year)
	if code.Leap {
		if lm == 0 || lm-1 != code.Number {
			return 0, false
		}
		return lm, true
	}
	m := code.Number
	if lm != 0 && code.Number >= lm {
		m++
	}
	if code.Number < 1 || m > r.MonthsInYear(year) {
		return 0, false
	}
	return m, true
}

// MarshalText implements encoding.TextMarshaler.
func (c MonthCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *MonthCode) UnmarshalText(b []byte) error {
	parsed, err := ParseMonthCode(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
