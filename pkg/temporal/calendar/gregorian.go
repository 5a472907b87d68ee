package calendar

import (
	"github.com/msto63/chronos/pkg/temporal/iso"
)

// dateEra is an era of a Gregorian-like calendar. Eras with a start date
// begin on that ISO date; the last era of a table is open-ended backward.
type dateEra struct {
	code    string
	start   iso.Date
	open    bool
	reverse bool
	// anchor is the calendar year of eraYear 1 (forward) or the year after
	// eraYear 1 (reverse)
	anchor int
}

func (e dateEra) eraYear(year int) int {
	if e.reverse {
		return e.anchor - year
	}
	return year - e.anchor + 1
}

// gregorianRules shares month and day structure with ISO and differs only
// in year numbering and eras.
type gregorianRules struct {
	isoRules
	id         string
	yearOffset int
	eras       []dateEra
	aliases    map[string]string
}

func (r *gregorianRules) ID() string { return r.id }

func (r *gregorianRules) DateParts(d iso.Date) (int, int, int) {
	return d.Year + r.yearOffset, d.Month, d.Day
}

func (r *gregorianRules) EraParts(d iso.Date) (string, int, bool) {
	days := iso.EpochDays(d)
	for _, e := range r.eras {
		if e.open || days >= iso.EpochDays(e.start) {
			return e.code, e.eraYear(d.Year + r.yearOffset), true
		}
	}
	return "", 0, false
}

func (r *gregorianRules) DaysInMonth(year, month int) int {
	return iso.DaysInMonth(year-r.yearOffset, month)
}

func (r *gregorianRules) EpochDays(year, month, day int) int64 {
	return iso.EpochDays(iso.Date{Year: year - r.yearOffset, Month: month, Day: day})
}

func (r *gregorianRules) YearMonthForMonthDay(code MonthCode, day int) (int, int, error) {
	y, m, err := r.isoRules.YearMonthForMonthDay(code, day)
	if err != nil {
		return 0, 0, err
	}
	return y + r.yearOffset, m, nil
}

func (r *gregorianRules) Eras() []string {
	codes := make([]string, len(r.eras))
	for i, e := range r.eras {
		codes[i] = e.code
	}
	return codes
}

func (r *gregorianRules) EraYearToYear(era string, eraYear int) (int, bool) {
	if alias, ok := r.aliases[era]; ok {
		era = alias
	}
	for _, e := range r.eras {
		if e.code != era {
			continue
		}
		if e.reverse {
			return e.anchor - eraYear, true
		}
		return e.anchor + eraYear - 1, true
	}
	return 0, false
}

func newGregory() Rules {
	return &gregorianRules{
		id: "gregory",
		eras: []dateEra{
			{code: "ce", start: iso.Date{Year: 1, Month: 1, Day: 1}, anchor: 1},
			{code: "bce", open: true, reverse: true, anchor: 1},
		},
		aliases: map[string]string{"ad": "ce", "bc": "bce"},
	}
}

func newJapanese() Rules {
	return &gregorianRules{
		id: "japanese",
		eras: []dateEra{
			{code: "reiwa", start: iso.Date{Year: 2019, Month: 5, Day: 1}, anchor: 2019},
			{code: "heisei", start: iso.Date{Year: 1989, Month: 1, Day: 8}, anchor: 1989},
			{code: "showa", start: iso.Date{Year: 1926, Month: 12, Day: 25}, anchor: 1926},
			{code: "taisho", start: iso.Date{Year: 1912, Month: 7, Day: 30}, anchor: 1912},
			{code: "meiji", start: iso.Date{Year: 1868, Month: 9, Day: 8}, anchor: 1868},
			{code: "ce", start: iso.Date{Year: 1, Month: 1, Day: 1}, anchor: 1},
			{code: "bce", open: true, reverse: true, anchor: 1},
		},
		aliases: map[string]string{"ad": "ce", "bc": "bce"},
	}
}

func newBuddhist() Rules {
	return &gregorianRules{
		id:         "buddhist",
		yearOffset: 543,
		eras:       []dateEra{{code: "be", open: true, anchor: 1}},
	}
}

func newROC() Rules {
	return &gregorianRules{
		id:         "roc",
		yearOffset: -1911,
		eras: []dateEra{
			{code: "roc", start: iso.Date{Year: 1912, Month: 1, Day: 1}, anchor: 1},
			{code: "broc", open: true, reverse: true, anchor: 1},
		},
	}
}
