package source

import (
	"github.com/msto63/chronos/pkg/temporal/iso"
)

// Saka years start 78 years after the Gregorian year of their Chaitra 1.
const sakaOffset = 78

var indianEras = []Era{{Code: "shaka", Anchor: 1}}

var indianMonths = []string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha", "Shravana", "Bhadra",
	"Ashvin", "Kartika", "Agrahayana", "Pausha", "Magha", "Phalguna",
}

type indian struct{}

// Indian returns the Indian national (Saka) calendar.
func Indian() DataSource { return indian{} }

func (indian) ID() string { return "indian" }

// chaitraOne is the epoch day of 1 Chaitra in a Gregorian year: March 22,
// or March 21 in leap years.
func chaitraOne(gregorianYear int) int64 {
	day := 22
	if iso.IsLeapYear(gregorianYear) {
		day = 21
	}
	return iso.EpochDays(iso.Date{Year: gregorianYear, Month: 3, Day: day})
}

func indianMonthLengths(gregorianYear int) []int {
	chaitra := 30
	if iso.IsLeapYear(gregorianYear) {
		chaitra = 31
	}
	return []int{chaitra, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 30}
}

func (indian) Parts(epochDays int64) Parts {
	gy := iso.DateFromEpochDays(epochDays).Year
	start := chaitraOne(gy)
	if epochDays < start {
		gy--
		start = chaitraOne(gy)
	}
	month, day := monthWalk(indianMonthLengths(gy), epochDays-start)
	return parts(gy-sakaOffset, indianMonths[month-1], day, indianEras)
}
