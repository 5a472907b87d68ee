package calendar

import (
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// Delta is the date portion of a duration.
type Delta struct {
	Years  int64
	Months int64
	Weeks  int64
	Days   int64
}

// Negated returns the delta with every field negated.
func (d Delta) Negated() Delta {
	return Delta{Years: -d.Years, Months: -d.Months, Weeks: -d.Weeks, Days: -d.Days}
}

// DateAdd adds years, then months, then weeks and days to d. The month of a
// year move is re-derived from its month code so that leap months stay
// leap months where they exist.
func (c *Calendar) DateAdd(d iso.Date, delta Delta, overflow iso.Overflow) (iso.Date, error) {
	const op = "dateAdd"
	y, m, day := c.DateParts(d)
	var err error

	if delta.Years != 0 {
		code := c.MonthCodeParts(y, m)
		if y, err = c.moveYears(op, y, delta.Years); err != nil {
			return iso.Date{}, err
		}
		if m, err = c.monthForCode(op, y, code, overflow); err != nil {
			return iso.Date{}, err
		}
	}
	if delta.Months != 0 {
		if y, m, err = c.moveMonths(op, y, m, delta.Months); err != nil {
			return iso.Date{}, err
		}
	}
	if day, err = c.regulateDay(op, y, m, day, overflow); err != nil {
		return iso.Date{}, err
	}

	days := c.EpochDays(y, m, day) + delta.Weeks*7 + delta.Days
	if days < iso.MinEpochDays || days > iso.MaxEpochDays {
		return iso.Date{}, errors.OutOfRange(errors.ModuleCalendar, op, "epochDays", days, int64(iso.MinEpochDays), int64(iso.MaxEpochDays))
	}
	return iso.DateFromEpochDays(days), nil
}

func (c *Calendar) moveYears(op string, year int, years int64) (int, error) {
	span := int64(c.maxYear - c.minYear)
	if daytime.Abs(years) > span {
		return 0, errors.OutOfRange(errors.ModuleCalendar, op, "years", years, -span, span)
	}
	return c.checkYear(op, year+int(years))
}

func (c *Calendar) moveMonths(op string, year, month int, months int64) (int, int, error) {
	// no calendar has more than 13 months a year
	span := int64(c.maxYear-c.minYear+1) * 13
	if daytime.Abs(months) > span {
		return 0, 0, errors.OutOfRange(errors.ModuleCalendar, op, "months", months, -span, span)
	}
	y, m := c.MonthAdd(year, month, months)
	if _, err := c.checkYear(op, y); err != nil {
		return 0, 0, err
	}
	return y, m, nil
}

// DateUntil computes the delta from one to two with largest as the largest
// unit. Adding the result to one with constrain overflow yields two.
func (c *Calendar) DateUntil(one, two iso.Date, largest unit.Unit) (Delta, error) {
	diff := iso.EpochDays(two) - iso.EpochDays(one)

	switch largest {
	case unit.Day:
		return Delta{Days: diff}, nil
	case unit.Week:
		return Delta{Weeks: diff / 7, Days: diff % 7}, nil
	case unit.Year, unit.Month:
	default:
		return Delta{}, errors.InvalidOption(errors.ModuleCalendar, "largestUnit", largest)
	}
	if diff == 0 {
		return Delta{}, nil
	}

	sign := 1
	if diff < 0 {
		sign = -1
	}
	y1, m1, d1 := c.DateParts(one)
	y2, m2, d2 := c.DateParts(two)
	code1 := c.MonthCodeParts(y1, m1)

	var years int64
	ym, mm := y1, m1
	if largest == unit.Year {
		years = int64(y2 - y1)
		if years != 0 {
			ym, mm = c.yearMove(y2, code1)
			if c.surpasses(sign, ym, mm, d1, y2, m2, d2) {
				years -= int64(sign)
				ym, mm = c.yearMove(y1+int(years), code1)
			}
		}
	}

	months := c.monthsBetween(ym, mm, y2, m2)
	if months != 0 {
		ty, tm := c.MonthAdd(ym, mm, months)
		if c.surpasses(sign, ty, tm, d1, y2, m2, d2) {
			months -= int64(sign)
		}
	}

	mid, err := c.DateAdd(one, Delta{Years: years, Months: months}, iso.Constrain)
	if err != nil {
		return Delta{}, err
	}
	days := iso.EpochDays(two) - iso.EpochDays(mid)
	return Delta{Years: years, Months: months, Days: days}, nil
}

// yearMove resolves a month code in a target year, constraining a missing
// leap month.
func (c *Calendar) yearMove(year int, code MonthCode) (int, int) {
	m, err := c.monthForCode("dateUntil", year, code, iso.Constrain)
	if err != nil {
		return year, min(code.Number, c.Rules.MonthsInYear(year))
	}
	return year, m
}

// surpasses reports whether (y, m, d) lies beyond (ty, tm, td) in the
// direction of sign. The day is compared unconstrained.
func (c *Calendar) surpasses(sign int, y, m, d, ty, tm, td int) bool {
	cmp := compareParts(y, m, d, ty, tm, td)
	return cmp*sign > 0
}

func compareParts(y1, m1, d1, y2, m2, d2 int) int {
	switch {
	case y1 != y2:
		return cmpInt(y1, y2)
	case m1 != m2:
		return cmpInt(m1, m2)
	default:
		return cmpInt(d1, d2)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// monthsBetween counts ordinal months from (y1, m1) to (y2, m2).
func (c *Calendar) monthsBetween(y1, m1, y2, m2 int) int64 {
	if y1 == y2 {
		return int64(m2 - m1)
	}
	if c.LeapMonthPosition() == 0 {
		return int64(y2-y1)*int64(c.Rules.MonthsInYear(y1)) + int64(m2-m1)
	}
	if y1 < y2 {
		n := int64(c.Rules.MonthsInYear(y1) - m1)
		for y := y1 + 1; y < y2; y++ {
			n += int64(c.Rules.MonthsInYear(y))
		}
		return n + int64(m2)
	}
	n := int64(m1)
	for y := y2 + 1; y < y1; y++ {
		n += int64(c.Rules.MonthsInYear(y))
	}
	return -(n + int64(c.Rules.MonthsInYear(y2)-m2))
}
