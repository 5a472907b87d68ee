package calendar

import (
	"github.com/msto63/chronos/pkg/temporal/iso"
)

// Rules is the primitive capability set of a calendar system. Every
// derived operation of Calendar is written once against this interface.
//
// Years, months and days are calendar values; months are ordinal (1-based
// position within the year, counting a leap month like any other month).
type Rules interface {
	// ID returns the canonical calendar id
	ID() string
	// DateParts maps an ISO date to calendar year, ordinal month and day
	DateParts(d iso.Date) (year, month, day int)
	// EraParts returns the era and era year of an ISO date; ok is false for
	// calendars without eras
	EraParts(d iso.Date) (era string, eraYear int, ok bool)
	MonthCodeParts(year, month int) MonthCode
	MonthsInYear(year int) int
	DaysInMonth(year, month int) int
	// LeapMonth returns the ordinal of the year's leap month, or 0
	LeapMonth(year int) int
	// EpochDays maps a calendar date to days since 1970-01-01
	EpochDays(year, month, day int) int64
	// MonthAdd moves an ordinal month by delta months
	MonthAdd(year, month int, delta int64) (int, int)
	// YearMonthForMonthDay finds the latest year on or before 1972-12-31
	// that contains the month code and day
	YearMonthForMonthDay(code MonthCode, day int) (year, month int, err error)
	Eras() []string
	EraYearToYear(era string, eraYear int) (int, bool)
	// LeapMonthPosition is 0 without leap months, the fixed ordinal of the
	// leap month, or negative when it varies per year
	LeapMonthPosition() int
}

// referenceDate bounds the year search of YearMonthForMonthDay.
var referenceDate = iso.Date{Year: 1972, Month: 12, Day: 31}
