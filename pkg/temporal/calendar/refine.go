package calendar

import (
	"strings"

	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/iso"
)

// FieldBag holds user supplied date fields. Nil pointers and empty strings
// mean the field is absent.
type FieldBag struct {
	Era       string
	EraYear   *int
	Year      *int
	Month     *int
	MonthCode string
	Day       *int
}

// maxMonthDays bounds the month length of every supported calendar
const maxMonthDays = 31

// Int returns a pointer to v, for building a FieldBag.
func Int(v int) *int { return &v }

// Refine resolves a full date from fields.
func (c *Calendar) Refine(b FieldBag, overflow iso.Overflow) (iso.Date, error) {
	const op = "refine"
	year, err := c.resolveYear(op, b)
	if err != nil {
		return iso.Date{}, err
	}
	month, err := c.resolveMonth(op, year, b, overflow)
	if err != nil {
		return iso.Date{}, err
	}
	if b.Day == nil {
		return iso.Date{}, errors.MissingField(errors.ModuleCalendar, op, "day")
	}
	day, err := c.regulateDay(op, year, month, *b.Day, overflow)
	if err != nil {
		return iso.Date{}, err
	}
	return c.toISO(year, month, day)
}

// RefineYearMonth resolves the first day of a calendar month. The day field
// is ignored.
func (c *Calendar) RefineYearMonth(b FieldBag, overflow iso.Overflow) (iso.Date, error) {
	const op = "refineYearMonth"
	year, err := c.resolveYear(op, b)
	if err != nil {
		return iso.Date{}, err
	}
	month, err := c.resolveMonth(op, year, b, overflow)
	if err != nil {
		return iso.Date{}, err
	}
	return c.toISO(year, month, 1)
}

// RefineMonthDay resolves a month-day to its reference date: the latest
// date on or before 1972-12-31 with that month code and day. A year in the
// bag is only used to interpret an ordinal month and to check the day.
func (c *Calendar) RefineMonthDay(b FieldBag, overflow iso.Overflow) (iso.Date, error) {
	const op = "refineMonthDay"
	if b.Day == nil {
		return iso.Date{}, errors.MissingField(errors.ModuleCalendar, op, "day")
	}
	day := *b.Day
	if day < 1 {
		return iso.Date{}, errors.OutOfRange(errors.ModuleCalendar, op, "day", day, 1, "daysInMonth")
	}

	var code MonthCode
	hasYear := b.Year != nil || b.EraYear != nil
	switch {
	case hasYear:
		year, err := c.resolveYear(op, b)
		if err != nil {
			return iso.Date{}, err
		}
		month, err := c.resolveMonth(op, year, b, overflow)
		if err != nil {
			return iso.Date{}, err
		}
		if day, err = c.regulateDay(op, year, month, day, overflow); err != nil {
			return iso.Date{}, err
		}
		code = c.MonthCodeParts(year, month)
	case b.MonthCode != "":
		parsed, err := ParseMonthCode(b.MonthCode)
		if err != nil {
			return iso.Date{}, err
		}
		if b.Month != nil && *b.Month != parsed.Number && c.LeapMonthPosition() == 0 {
			return iso.Date{}, errors.ConflictingFields(errors.ModuleCalendar, op, "month", "monthCode")
		}
		if err := c.validLeapCode(op, parsed); err != nil {
			return iso.Date{}, err
		}
		code = parsed
	case b.Month != nil && c.LeapMonthPosition() == 0:
		code = MonthCode{Number: *b.Month}
	default:
		return iso.Date{}, errors.MissingField(errors.ModuleCalendar, op, "monthCode")
	}

	if day > maxMonthDays && overflow == iso.Constrain {
		day = maxMonthDays
	}
	for d := day; d >= 1; d-- {
		year, month, err := c.YearMonthForMonthDay(code, d)
		if err == nil {
			return c.toISO(year, month, d)
		}
		if overflow == iso.Reject {
			return iso.Date{}, err
		}
	}
	// constrain a missing leap month to its common sibling
	if code.Leap {
		common := MonthCode{Number: code.Number}
		if pos := c.LeapMonthPosition(); pos > 0 {
			common.Number = pos
		}
		return c.RefineMonthDay(FieldBag{MonthCode: common.String(), Day: &day}, overflow)
	}
	return iso.Date{}, errors.Range(errors.ModuleCalendar, op, "no reference year for %s-%02d", code, day)
}

func (c *Calendar) resolveYear(op string, b FieldBag) (int, error) {
	eras := c.Eras()
	hasEra := b.Era != "" || b.EraYear != nil
	if hasEra && len(eras) > 0 {
		if b.Era == "" {
			return 0, errors.MissingField(errors.ModuleCalendar, op, "era")
		}
		if b.EraYear == nil {
			return 0, errors.MissingField(errors.ModuleCalendar, op, "eraYear")
		}
		year, ok := c.EraYearToYear(strings.ToLower(b.Era), *b.EraYear)
		if !ok {
			return 0, errors.Range(errors.ModuleCalendar, op, "unknown era %q for calendar %s", b.Era, c.ID())
		}
		if b.Year != nil && *b.Year != year {
			return 0, errors.ConflictingFields(errors.ModuleCalendar, op, "year", "eraYear")
		}
		return c.checkYear(op, year)
	}
	if b.Year == nil {
		return 0, errors.MissingField(errors.ModuleCalendar, op, "year")
	}
	return c.checkYear(op, *b.Year)
}

func (c *Calendar) checkYear(op string, year int) (int, error) {
	if year < c.minYear || year > c.maxYear {
		return 0, errors.OutOfRange(errors.ModuleCalendar, op, "year", year, c.minYear, c.maxYear)
	}
	return year, nil
}

func (c *Calendar) resolveMonth(op string, year int, b FieldBag, overflow iso.Overflow) (int, error) {
	if b.MonthCode == "" {
		if b.Month == nil {
			return 0, errors.MissingField(errors.ModuleCalendar, op, "month")
		}
		m, limit := *b.Month, c.Rules.MonthsInYear(year)
		if m < 1 || m > limit && overflow == iso.Reject {
			return 0, errors.OutOfRange(errors.ModuleCalendar, op, "month", m, 1, limit)
		}
		return min(m, limit), nil
	}

	code, err := ParseMonthCode(b.MonthCode)
	if err != nil {
		return 0, err
	}
	m, err := c.monthForCode(op, year, code, overflow)
	if err != nil {
		return 0, err
	}
	if b.Month != nil && *b.Month != m {
		return 0, errors.ConflictingFields(errors.ModuleCalendar, op, "month", "monthCode")
	}
	return m, nil
}

// validLeapCode checks a leap month code against the calendar's leap month
// metadata independent of any particular year.
func (c *Calendar) validLeapCode(op string, code MonthCode) error {
	if !code.Leap {
		return nil
	}
	switch pos := c.LeapMonthPosition(); {
	case pos == 0:
		return errors.Range(errors.ModuleCalendar, op, "calendar %s has no leap months, got %s", c.ID(), code)
	case pos > 0 && code.Number != pos-1:
		return errors.Range(errors.ModuleCalendar, op, "calendar %s only has leap month %s", c.ID(), MonthCode{Number: pos - 1, Leap: true})
	}
	return nil
}

// monthForCode maps a month code to the ordinal month of a year. A leap
// code in a year without that leap month constrains to the common month at
// the same position.
func (c *Calendar) monthForCode(op string, year int, code MonthCode, overflow iso.Overflow) (int, error) {
	if err := c.validLeapCode(op, code); err != nil {
		return 0, err
	}
	if m, ok := monthOfCode(c.Rules, year, code); ok {
		return m, nil
	}
	if code.Leap {
		if overflow == iso.Reject {
			return 0, errors.Range(errors.ModuleCalendar, op, "year %d of %s has no month %s", year, c.ID(), code)
		}
		common := MonthCode{Number: code.Number}
		if pos := c.LeapMonthPosition(); pos > 0 {
			common.Number = pos
		}
		if m, ok := monthOfCode(c.Rules, year, common); ok {
			return m, nil
		}
	}
	return 0, errors.Range(errors.ModuleCalendar, op, "year %d of %s has no month %s", year, c.ID(), code)
}

func (c *Calendar) regulateDay(op string, year, month, day int, overflow iso.Overflow) (int, error) {
	limit := c.Rules.DaysInMonth(year, month)
	if day < 1 || day > limit && overflow == iso.Reject {
		return 0, errors.OutOfRange(errors.ModuleCalendar, op, "day", day, 1, limit)
	}
	return min(day, limit), nil
}

func (c *Calendar) toISO(year, month, day int) (iso.Date, error) {
	d := iso.DateFromEpochDays(c.EpochDays(year, month, day))
	if err := iso.CheckDateInBounds(d); err != nil {
		return iso.Date{}, err
	}
	return d, nil
}
