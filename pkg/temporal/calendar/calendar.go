// Package calendar implements calendar systems over ISO dates.
//
// A calendar system is described by the small primitive set in Rules. The
// Calendar type wraps a Rules value and derives everything else from it once:
// field queries, field refinement, dateAdd and dateUntil. Three strategies
// implement Rules:
//
//   - iso8601, the proleptic ISO calendar
//   - Gregorian-like calendars (gregory, japanese, buddhist, roc) that only
//     renumber years and eras
//   - data-derived calendars that sample a source.DataSource and memoize the
//     discovered month structure per year
//
// Calendars are obtained from a Registry by id:
//
//	cal, err := calendar.Get("hebrew")
//	date, err := cal.Refine(calendar.FieldBag{Year: calendar.Int(5784), MonthCode: "M05L", Day: calendar.Int(1)}, iso.Reject)
package calendar

import (
	"github.com/msto63/chronos/pkg/temporal/iso"
)

// Calendar adds the derived operations to a Rules value. Calendars are
// immutable and safe for concurrent use.
type Calendar struct {
	Rules
	minYear int
	maxYear int
}

// New wraps rules into a Calendar.
func New(r Rules) *Calendar {
	c := &Calendar{Rules: r}
	c.minYear, _, _ = r.DateParts(iso.DateFromEpochDays(iso.MinEpochDays))
	c.maxYear, _, _ = r.DateParts(iso.DateFromEpochDays(iso.MaxEpochDays))
	return c
}

var isoCalendar = New(isoRules{})

// ISO returns the iso8601 calendar.
func ISO() *Calendar { return isoCalendar }

func (c *Calendar) String() string { return c.ID() }

// Equal reports whether both calendars have the same id.
func (c *Calendar) Equal(o *Calendar) bool {
	return c.ID() == o.ID()
}

// Fields is the full calendar view of one date.
type Fields struct {
	Year         int       `json:"year" yaml:"year"`
	Month        int       `json:"month" yaml:"month"`
	MonthCode    MonthCode `json:"monthCode" yaml:"monthCode"`
	Day          int       `json:"day" yaml:"day"`
	Era          string    `json:"era,omitempty" yaml:"era,omitempty"`
	EraYear      int       `json:"eraYear,omitempty" yaml:"eraYear,omitempty"`
	DayOfWeek    int       `json:"dayOfWeek" yaml:"dayOfWeek"`
	DayOfYear    int       `json:"dayOfYear" yaml:"dayOfYear"`
	DaysInMonth  int       `json:"daysInMonth" yaml:"daysInMonth"`
	DaysInYear   int       `json:"daysInYear" yaml:"daysInYear"`
	MonthsInYear int       `json:"monthsInYear" yaml:"monthsInYear"`
	InLeapYear   bool      `json:"inLeapYear" yaml:"inLeapYear"`
}

// Fields computes all calendar fields of d.
func (c *Calendar) Fields(d iso.Date) Fields {
	y, m, day := c.DateParts(d)
	f := Fields{
		Year:         y,
		Month:        m,
		MonthCode:    c.MonthCodeParts(y, m),
		Day:          day,
		DayOfWeek:    iso.DayOfWeek(d),
		DayOfYear:    int(iso.EpochDays(d)-c.EpochDays(y, 1, 1)) + 1,
		DaysInMonth:  c.Rules.DaysInMonth(y, m),
		DaysInYear:   c.daysInYear(y),
		MonthsInYear: c.Rules.MonthsInYear(y),
		InLeapYear:   c.inLeapYear(y),
	}
	if era, eraYear, ok := c.EraParts(d); ok {
		f.Era, f.EraYear = era, eraYear
	}
	return f
}

// Year returns the calendar year of d.
func (c *Calendar) Year(d iso.Date) int {
	y, _, _ := c.DateParts(d)
	return y
}

// MonthCode returns the month code of d.
func (c *Calendar) MonthCode(d iso.Date) MonthCode {
	y, m, _ := c.DateParts(d)
	return c.MonthCodeParts(y, m)
}

// Era returns the era of d, empty for calendars without eras.
func (c *Calendar) Era(d iso.Date) string {
	era, _, _ := c.EraParts(d)
	return era
}

// EraYear returns the year of d within its era.
func (c *Calendar) EraYear(d iso.Date) (int, bool) {
	_, eraYear, ok := c.EraParts(d)
	return eraYear, ok
}

func (c *Calendar) DaysInMonthOf(d iso.Date) int {
	y, m, _ := c.DateParts(d)
	return c.Rules.DaysInMonth(y, m)
}

func (c *Calendar) MonthsInYearOf(d iso.Date) int {
	return c.Rules.MonthsInYear(c.Year(d))
}

func (c *Calendar) DaysInYear(d iso.Date) int {
	return c.daysInYear(c.Year(d))
}

func (c *Calendar) InLeapYear(d iso.Date) bool {
	return c.inLeapYear(c.Year(d))
}

func (c *Calendar) daysInYear(year int) int {
	last := c.Rules.MonthsInYear(year)
	end := c.EpochDays(year, last, c.Rules.DaysInMonth(year, last))
	return int(end-c.EpochDays(year, 1, 1)) + 1
}

// inLeapYear: lunisolar years are leap when they have a leap month, all
// others when they are longer than one of their neighbours.
func (c *Calendar) inLeapYear(year int) bool {
	if c.LeapMonthPosition() != 0 {
		return c.LeapMonth(year) != 0
	}
	n := c.daysInYear(year)
	return n > c.daysInYear(year-1) || n > c.daysInYear(year+1)
}
