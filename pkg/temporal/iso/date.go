package iso

import (
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/daytime"
)

const (
	// MinEpochDays is the epoch day of -271821-04-19, the first date whose
	// noon lies inside the widened instant window.
	MinEpochDays = -daytime.MaxInstantDays - 1
	// MaxEpochDays is the epoch day of +275760-09-13.
	MaxEpochDays = daytime.MaxInstantDays

	// unixEpochOffset is the day count from 0000-03-01 to 1970-01-01
	unixEpochOffset = 719468
	daysPer400Years = 146097
)

// Date is a proleptic ISO calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// EpochDays returns the number of days between 1970-01-01 and d. Month and
// day may lie outside their natural ranges only as far as the formula
// tolerates; callers pass regulated dates.
func EpochDays(d Date) int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := daytime.FloorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - unixEpochOffset
}

// DateFromEpochDays is the inverse of EpochDays.
func DateFromEpochDays(days int64) Date {
	z := days + unixEpochOffset
	era := daytime.FloorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	if m <= 2 {
		y++
	}
	return Date{Year: int(y), Month: int(m), Day: int(d)}
}

// AddDays moves d by n days.
func AddDays(d Date, n int64) Date {
	if n == 0 {
		return d
	}
	return DateFromEpochDays(EpochDays(d) + n)
}

// DayOfWeek returns 1 for Monday through 7 for Sunday.
func DayOfWeek(d Date) int {
	// 1970-01-01 was a Thursday
	return int(daytime.FloorMod(EpochDays(d)+3, 7)) + 1
}

// DayOfYear returns the ordinal day, starting at 1.
func DayOfYear(d Date) int {
	return int(EpochDays(d)-EpochDays(Date{Year: d.Year, Month: 1, Day: 1})) + 1
}

// WeeksInYear returns 52 or 53 ISO weeks.
func WeeksInYear(year int) int {
	jan1 := DayOfWeek(Date{Year: year, Month: 1, Day: 1})
	if jan1 == 4 || jan1 == 3 && IsLeapYear(year) {
		return 53
	}
	return 52
}

// WeekOfYear returns the ISO week number and the year that week belongs to.
func WeekOfYear(d Date) (week, year int) {
	week = (DayOfYear(d) - DayOfWeek(d) + 10) / 7
	switch {
	case week < 1:
		return WeeksInYear(d.Year - 1), d.Year - 1
	case week > WeeksInYear(d.Year):
		return 1, d.Year + 1
	default:
		return week, d.Year
	}
}

// CompareDate orders two dates.
func CompareDate(a, b Date) int {
	switch {
	case a.Year != b.Year:
		return cmpInt(a.Year, b.Year)
	case a.Month != b.Month:
		return cmpInt(a.Month, b.Month)
	default:
		return cmpInt(a.Day, b.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CheckDateInBounds requires noon of d to lie inside the instant window
// widened by one day on each side.
func CheckDateInBounds(d Date) error {
	days := EpochDays(d)
	if days < MinEpochDays || days > MaxEpochDays {
		return errors.NewErrorBuilder(errors.ModuleISO).
			Operation("checkDateInBounds").
			Code(outOfBounds).
			Messagef("date %s outside of the supported range", d).
			Build()
	}
	return nil
}

// RegulateDate validates or clamps year/month/day according to overflow.
func RegulateDate(year, month, day int, overflow Overflow) (Date, error) {
	if overflow == Reject {
		if month < 1 || month > 12 {
			return Date{}, errors.OutOfRange(errors.ModuleISO, "regulateDate", "month", month, 1, 12)
		}
		if dim := DaysInMonth(year, month); day < 1 || day > dim {
			return Date{}, errors.OutOfRange(errors.ModuleISO, "regulateDate", "day", day, 1, dim)
		}
		return Date{Year: year, Month: month, Day: day}, nil
	}
	month = clamp(month, 1, 12)
	day = clamp(day, 1, DaysInMonth(year, month))
	return Date{Year: year, Month: month, Day: day}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
