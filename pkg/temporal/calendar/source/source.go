// Package source provides the data sources behind the data-derived
// calendars. A DataSource answers one question: which year, month label,
// day and era does a given epoch day fall on. Everything else (month
// boundaries, leap months, month codes) is derived from those answers by
// the calendar package.
//
// Most bundled adapters compute their answers arithmetically. The Chinese
// and Persian adapters read published tables inside the range those tables
// cover. A host with access to other locale calendar data (for example an
// ICU binding providing the dangi calendar) plugs in its own DataSource.
package source

import (
	"github.com/msto63/chronos/pkg/temporal/daytime"
)

// rdUnixEpoch is the fixed day number of 1970-01-01 with fixed day 1 being
// 0001-01-01 (proleptic Gregorian).
const rdUnixEpoch = 719163

// Parts is what a data source reports for a single day.
type Parts struct {
	Year    int
	Month   string
	Day     int
	Era     string
	EraYear int
}

// DataSource reports calendar parts for epoch days.
type DataSource interface {
	ID() string
	Parts(epochDays int64) Parts
}

// Era describes one era of a calendar. Forward eras count eraYear 1 from
// Anchor upward; a reverse era counts eraYear 1 from Anchor-1 downward.
type Era struct {
	Code    string
	Anchor  int
	Reverse bool
}

// Spec bundles an adapter with the metadata the calendar needs.
type Spec struct {
	Source DataSource
	// LeapMonthPosition is 0 without leap months, the fixed ordinal of the
	// leap month, or -1 when the leap month moves from year to year.
	LeapMonthPosition int
	// Eras are ordered from the most recent one.
	Eras []Era
}

// Builtins returns the adapters shipped with chronos.
func Builtins() []Spec {
	return []Spec{
		{Source: Hebrew(), LeapMonthPosition: hebrewLeapMonth, Eras: hebrewEras},
		{Source: IslamicCivil(), Eras: islamicEras},
		{Source: IslamicTabular(), Eras: islamicEras},
		{Source: Persian(), Eras: persianEras},
		{Source: Coptic(), Eras: copticEras},
		{Source: Ethiopic(), Eras: ethiopicEras},
		{Source: EthiopicAmeteAlem(), Eras: ethioaaEras},
		{Source: Indian(), Eras: indianEras},
		{Source: Chinese(), LeapMonthPosition: -1},
	}
}

// ResolveEra returns the era code and era year of a calendar year.
func ResolveEra(eras []Era, year int) (string, int) {
	for i, e := range eras {
		last := i == len(eras)-1
		switch {
		case e.Reverse:
			return e.Code, e.Anchor - year
		case year >= e.Anchor || last:
			return e.Code, year - e.Anchor + 1
		}
	}
	return "", year
}

// EraYearToYear is the inverse of ResolveEra for a named era.
func EraYearToYear(eras []Era, code string, eraYear int) (int, bool) {
	for _, e := range eras {
		if e.Code != code {
			continue
		}
		if e.Reverse {
			return e.Anchor - eraYear, true
		}
		return e.Anchor + eraYear - 1, true
	}
	return 0, false
}

func fixedFromEpochDays(epochDays int64) int64 {
	return epochDays + rdUnixEpoch
}

func epochDaysFromFixed(rd int64) int64 {
	return rd - rdUnixEpoch
}

// monthWalk finds the month containing a zero-based day of year given the
// month lengths of that year.
func monthWalk(lengths []int, dayOfYear int64) (month int, day int) {
	for i, l := range lengths {
		if dayOfYear < int64(l) {
			return i + 1, int(dayOfYear) + 1
		}
		dayOfYear -= int64(l)
	}
	return len(lengths), lengths[len(lengths)-1]
}

func parts(year int, label string, day int, eras []Era) Parts {
	era, eraYear := ResolveEra(eras, year)
	return Parts{Year: year, Month: label, Day: day, Era: era, EraYear: eraYear}
}

func floorDiv(a, b int64) int64 { return daytime.FloorDiv(a, b) }

func floorMod(a, b int64) int64 { return daytime.FloorMod(a, b) }
