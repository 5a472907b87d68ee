package source

import (
	"strconv"
	"sync"

	lunar "github.com/6tail/lunar-go/calendar"

	"github.com/msto63/chronos/pkg/core/cache"
	"github.com/msto63/chronos/pkg/temporal/iso"
)

const (
	// chineseFirstYear and chineseLastYear delimit the lunar years read from
	// the astronomical tables. Years outside repeat that block.
	chineseFirstYear = 1901
	chineseLastYear  = 2100
	chineseBlock     = chineseLastYear - chineseFirstYear + 1
)

// lunarYear is the month layout of one Chinese year. starts has one more
// entry than labels: the first day of the following year.
type lunarYear struct {
	starts []int64
	labels []string
}

type chinese struct {
	once   sync.Once
	lo, hi int64
	years  *cache.Table[int, *lunarYear]
}

// Chinese returns the Chinese lunisolar calendar backed by the lunar-go
// tables. Month labels are "1".."12" with "L" prefixed to a leap month.
func Chinese() DataSource {
	return &chinese{years: cache.NewTable[int, *lunarYear]("lunar_years", nil)}
}

func (*chinese) ID() string { return "chinese" }

func solarEpochDays(s *lunar.Solar) int64 {
	return iso.EpochDays(iso.Date{Year: s.GetYear(), Month: s.GetMonth(), Day: s.GetDay()})
}

func lunarAt(epochDays int64) *lunar.Lunar {
	d := iso.DateFromEpochDays(epochDays)
	s := lunar.NewSolarFromYmd(d.Year, d.Month, d.Day)
	return s.GetLunar()
}

func lunarNewYear(year int) int64 {
	l := lunar.NewLunarFromYmd(year, 1, 1)
	return solarEpochDays(l.GetSolar())
}

func lunarLabel(month int) string {
	if month < 0 {
		return "L" + strconv.Itoa(-month)
	}
	return strconv.Itoa(month)
}

func (c *chinese) bounds() (int64, int64) {
	c.once.Do(func() {
		c.lo = lunarNewYear(chineseFirstYear)
		c.hi = lunarNewYear(chineseLastYear + 1)
	})
	return c.lo, c.hi
}

func (c *chinese) year(y int) *lunarYear {
	ly, _ := c.years.GetOrCompute(y, func() (*lunarYear, error) {
		ly := &lunarYear{}
		end := lunarNewYear(y + 1)
		for s := lunarNewYear(y); s < end; {
			l := lunarAt(s)
			ly.starts = append(ly.starts, s)
			ly.labels = append(ly.labels, lunarLabel(l.GetMonth()))
			next := lunarAt(s + 29)
			if next.GetDay() == 1 {
				s += 29
			} else {
				s += 30
			}
		}
		ly.starts = append(ly.starts, end)
		return ly, nil
	})
	return ly
}

func (c *chinese) Parts(epochDays int64) Parts {
	lo, hi := c.bounds()
	k := floorDiv(epochDays-lo, hi-lo)
	d := epochDays - k*(hi-lo)

	y := chineseFirstYear + int(floorDiv((d-lo)*10000, 3652422))
	y = max(chineseFirstYear, min(chineseLastYear, y))
	ly := c.year(y)
	for d < ly.starts[0] && y > chineseFirstYear {
		y--
		ly = c.year(y)
	}
	for d >= ly.starts[len(ly.starts)-1] && y < chineseLastYear {
		y++
		ly = c.year(y)
	}
	m := len(ly.labels) - 1
	for m > 0 && ly.starts[m] > d {
		m--
	}
	return parts(y+int(k)*chineseBlock, ly.labels[m], int(d-ly.starts[m])+1, nil)
}
