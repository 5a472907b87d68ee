package source

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"github.com/msto63/chronos/pkg/temporal/iso"
)

const (
	// 0622-03-19 (Julian), fixed day of 1 Farvardin 1
	persianEpoch = 226895

	// persianFirstTableYear and persianEndTableYear delimit the years taken
	// from the go-persian-calendar tables. Years outside follow the 33-year
	// rule, shifted to meet the tables without a gap.
	persianFirstTableYear = 1250
	persianEndTableYear   = 1500
)

var persianEras = []Era{{Code: "ap", Anchor: 1}}

var persianMonths = []string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

type persian struct {
	lo, hi           int64
	arithLo, arithHi int64
}

// Persian returns the Solar Hijri calendar.
func Persian() DataSource {
	return &persian{
		lo:      persianNewYear(persianFirstTableYear),
		hi:      persianNewYear(persianEndTableYear),
		arithLo: epochDaysFromFixed(persianFixed(persianFirstTableYear, 1, 1)),
		arithHi: epochDaysFromFixed(persianFixed(persianEndTableYear, 1, 1)),
	}
}

func (*persian) ID() string { return "persian" }

// persianNewYear returns the epoch day of 1 Farvardin of year.
func persianNewYear(year int) int64 {
	pt := ptime.Date(year, ptime.Farvardin, 1, 12, 0, 0, 0, time.UTC)
	t := pt.Time()
	return iso.EpochDays(iso.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()})
}

func persianFixed(y, m, d int64) int64 {
	days := persianEpoch - 1 + 365*(y-1) + floorDiv(8*y+21, 33) + d
	if m <= 7 {
		return days + 31*(m-1)
	}
	return days + 30*(m-1) + 6
}

func (p *persian) Parts(epochDays int64) Parts {
	switch {
	case epochDays < p.lo:
		return persianArithmetic(epochDays - p.lo + p.arithLo)
	case epochDays >= p.hi:
		return persianArithmetic(epochDays - p.hi + p.arithHi)
	}
	d := iso.DateFromEpochDays(epochDays)
	pt := ptime.New(time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC))
	return parts(pt.Year(), persianMonths[int(pt.Month())-1], pt.Day(), persianEras)
}

// persianArithmetic applies the 33-year leap rule.
func persianArithmetic(epochDays int64) Parts {
	rd := fixedFromEpochDays(epochDays)
	y := floorDiv((rd-persianEpoch)*33, 12053) + 1
	for persianFixed(y+1, 1, 1) <= rd {
		y++
	}
	for persianFixed(y, 1, 1) > rd {
		y--
	}
	doy := rd - persianFixed(y, 1, 1)
	var m, d int64
	if doy < 186 {
		m, d = doy/31+1, doy%31+1
	} else {
		m, d = (doy-186)/30+7, (doy-186)%30+1
	}
	return parts(int(y), persianMonths[m-1], int(d), persianEras)
}
