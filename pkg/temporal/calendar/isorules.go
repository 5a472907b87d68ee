package calendar

import (
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/iso"
)

// isoRules is the proleptic ISO 8601 calendar. Gregorian-like calendars
// embed it and only remap years and eras.
type isoRules struct{}

func (isoRules) ID() string { return "iso8601" }

func (isoRules) DateParts(d iso.Date) (int, int, int) {
	return d.Year, d.Month, d.Day
}

func (isoRules) EraParts(iso.Date) (string, int, bool) { return "", 0, false }

func (isoRules) MonthCodeParts(_, month int) MonthCode { return MonthCode{Number: month} }

func (isoRules) MonthsInYear(int) int { return 12 }

func (isoRules) DaysInMonth(year, month int) int { return iso.DaysInMonth(year, month) }

func (isoRules) LeapMonth(int) int { return 0 }

func (isoRules) EpochDays(year, month, day int) int64 {
	return iso.EpochDays(iso.Date{Year: year, Month: month, Day: day})
}

func (isoRules) MonthAdd(year, month int, delta int64) (int, int) {
	total := int64(year)*12 + int64(month-1) + delta
	return int(daytime.FloorDiv(total, 12)), int(daytime.FloorMod(total, 12)) + 1
}

func (isoRules) YearMonthForMonthDay(code MonthCode, day int) (int, int, error) {
	if code.Leap || code.Number < 1 || code.Number > 12 {
		return 0, 0, errors.Range(errors.ModuleCalendar, "yearMonthForMonthDay", "monthCode %s not in iso8601", code)
	}
	if day < 1 || day > iso.DaysInMonth(referenceDate.Year, code.Number) {
		return 0, 0, errors.OutOfRange(errors.ModuleCalendar, "yearMonthForMonthDay", "day", day, 1, iso.DaysInMonth(referenceDate.Year, code.Number))
	}
	return referenceDate.Year, code.Number, nil
}

func (isoRules) Eras() []string { return nil }

func (isoRules) EraYearToYear(string, int) (int, bool) { return 0, false }

func (isoRules) LeapMonthPosition() int { return 0 }
