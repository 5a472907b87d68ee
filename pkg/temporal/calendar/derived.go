package calendar

import (
	"math"
	"sort"

	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/pkg/core/cache"
	"github.com/msto63/chronos/pkg/temporal/calendar/source"
	"github.com/msto63/chronos/pkg/temporal/iso"
)

const (
	// sampleSpan is the day span used to estimate the mean year length
	sampleSpan = 146000
	// minMonthStep is the first offset tried when searching for the end of
	// a month. Months shorter than that are found by walking back from the
	// next month's day number.
	minMonthStep = 27
	// DefaultSearchLimit bounds the reference year search of
	// YearMonthForMonthDay.
	DefaultSearchLimit = 100
)

// yearData holds the month boundaries of one calendar year. starts has one
// more entry than labels: the first day of the following year.
type yearData struct {
	starts []int64
	labels []string
}

// derivedRules implements Rules by sampling a DataSource. Month structure is
// discovered by walking the source and memoized per calendar year.
type derivedRules struct {
	src         source.DataSource
	leapPos     int
	eras        []source.Era
	years       *cache.Table[int, *yearData]
	originYear  int
	meanYear    float64
	searchLimit int
	logger      *log.Logger
}

// NewDerived builds a calendar over a data source.
func NewDerived(spec source.Spec, opts Options) *Calendar {
	return New(newDerivedRules(spec, opts))
}

func newDerivedRules(spec source.Spec, opts Options) *derivedRules {
	opts = opts.withDefaults()
	p0 := spec.Source.Parts(0)
	p1 := spec.Source.Parts(sampleSpan)
	return &derivedRules{
		src:         spec.Source,
		leapPos:     spec.LeapMonthPosition,
		eras:        spec.Eras,
		years:       cache.NewTable[int, *yearData]("calendar_"+spec.Source.ID(), opts.Observer),
		originYear:  p0.Year,
		meanYear:    float64(sampleSpan) / float64(p1.Year-p0.Year),
		searchLimit: opts.SearchLimit,
		logger:      opts.Logger.WithField("calendar", spec.Source.ID()),
	}
}

func (r *derivedRules) ID() string { return r.src.ID() }

func (r *derivedRules) data(year int) *yearData {
	yd, _ := r.years.GetOrCompute(year, func() (*yearData, error) {
		timer := r.logger.StartTimer("yearData").WithField("year", year)
		yd := r.computeYear(year)
		timer.WithField("months", len(yd.labels)).Stop()
		return yd, nil
	})
	return yd
}

// locate returns some epoch day inside the calendar year.
func (r *derivedRules) locate(year int) (int64, source.Parts) {
	d := int64(math.Round(float64(year-r.originYear) * r.meanYear))
	p := r.src.Parts(d)
	for i := 0; i < 8 && p.Year != year; i++ {
		d += int64(math.Round(float64(year-p.Year) * r.meanYear))
		p = r.src.Parts(d)
	}
	// no year is shorter than a few months, so these steps cannot skip it
	for p.Year < year {
		d += minMonthStep
		p = r.src.Parts(d)
	}
	for p.Year > year {
		d -= minMonthStep
		p = r.src.Parts(d)
	}
	return d, p
}

func (r *derivedRules) yearStart(year int) int64 {
	d, p := r.locate(year)
	d -= int64(p.Day - 1)
	for {
		prev := r.src.Parts(d - 1)
		if prev.Year != year {
			return d
		}
		d -= int64(prev.Day)
	}
}

// nextMonthStart finds the first day after the month starting at d.
func (r *derivedRules) nextMonthStart(d int64, label string) int64 {
	c := d + minMonthStep
	for {
		p := r.src.Parts(c)
		if p.Month != label || int64(p.Day) != c-d+1 {
			return c - int64(p.Day-1)
		}
		c++
	}
}

func (r *derivedRules) computeYear(year int) *yearData {
	yd := &yearData{}
	d := r.yearStart(year)
	for {
		p := r.src.Parts(d)
		if p.Year != year {
			break
		}
		yd.starts = append(yd.starts, d)
		yd.labels = append(yd.labels, p.Month)
		d = r.nextMonthStart(d, p.Month)
	}
	yd.starts = append(yd.starts, d)
	return yd
}

func (r *derivedRules) DateParts(d iso.Date) (int, int, int) {
	days := iso.EpochDays(d)
	p := r.src.Parts(days)
	yd := r.data(p.Year)
	i := sort.Search(len(yd.labels), func(i int) bool { return yd.starts[i+1] > days })
	return p.Year, i + 1, int(days-yd.starts[i]) + 1
}

func (r *derivedRules) EraParts(d iso.Date) (string, int, bool) {
	if len(r.eras) == 0 {
		return "", 0, false
	}
	p := r.src.Parts(iso.EpochDays(d))
	return p.Era, p.EraYear, p.Era != ""
}

func (r *derivedRules) MonthCodeParts(year, month int) MonthCode {
	return MonthCodeOf(month, r.LeapMonth(year))
}

func (r *derivedRules) MonthsInYear(year int) int {
	return len(r.data(year).labels)
}

func (r *derivedRules) DaysInMonth(year, month int) int {
	yd := r.data(year)
	return int(yd.starts[month] - yd.starts[month-1])
}

// LeapMonth compares the year against the one before it: a year with an
// extra month has its leap month at the fixed position or at the first
// label that differs.
func (r *derivedRules) LeapMonth(year int) int {
	if r.leapPos == 0 {
		return 0
	}
	cur, prev := r.data(year), r.data(year-1)
	if len(cur.labels) <= len(prev.labels) {
		return 0
	}
	if r.leapPos > 0 {
		return r.leapPos
	}
	for i := range prev.labels {
		if cur.labels[i] != prev.labels[i] {
			return i + 1
		}
	}
	return len(cur.labels)
}

func (r *derivedRules) EpochDays(year, month, day int) int64 {
	return r.data(year).starts[month-1] + int64(day-1)
}

func (r *derivedRules) MonthAdd(year, month int, delta int64) (int, int) {
	m := int64(month) + delta
	for n := int64(r.MonthsInYear(year)); m > n; n = int64(r.MonthsInYear(year)) {
		m -= n
		year++
	}
	for m < 1 {
		year--
		m += int64(r.MonthsInYear(year))
	}
	return year, int(m)
}

func (r *derivedRules) YearMonthForMonthDay(code MonthCode, day int) (int, int, error) {
	limit := iso.EpochDays(referenceDate)
	start, _, _ := r.DateParts(referenceDate)
	for y := start; y > start-r.searchLimit; y-- {
		m, ok := monthOfCode(r, y, code)
		if !ok || day > r.DaysInMonth(y, m) {
			continue
		}
		if r.EpochDays(y, m, day) > limit {
			continue
		}
		return y, m, nil
	}
	return 0, 0, errors.Range(errors.ModuleCalendar, "yearMonthForMonthDay",
		"no %s year within %d years of 1972 has %s-%02d", r.ID(), r.searchLimit, code, day)
}

func (r *derivedRules) Eras() []string {
	codes := make([]string, len(r.eras))
	for i, e := range r.eras {
		codes[i] = e.Code
	}
	return codes
}

func (r *derivedRules) EraYearToYear(era string, eraYear int) (int, bool) {
	return source.EraYearToYear(r.eras, era, eraYear)
}

func (r *derivedRules) LeapMonthPosition() int { return r.leapPos }
