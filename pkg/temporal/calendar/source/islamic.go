package source

const (
	// 0622-07-16 (Julian), a Friday
	islamicCivilEpoch = 227015
	// one day earlier, the astronomical Thursday epoch
	islamicTabularEpoch = 227014
)

var islamicEras = []Era{{Code: "ah", Anchor: 1}, {Code: "bh", Anchor: 1, Reverse: true}}

var islamicMonths = []string{
	"Muharram", "Safar", "Rabi I", "Rabi II", "Jumada I", "Jumada II",
	"Rajab", "Shaban", "Ramadan", "Shawwal", "Dhu al-Qidah", "Dhu al-Hijjah",
}

type islamic struct {
	id    string
	epoch int64
}

// IslamicCivil returns the tabular Islamic calendar with the Friday epoch.
func IslamicCivil() DataSource { return islamic{id: "islamic-civil", epoch: islamicCivilEpoch} }

// IslamicTabular returns the tabular Islamic calendar with the Thursday epoch.
func IslamicTabular() DataSource { return islamic{id: "islamic-tbla", epoch: islamicTabularEpoch} }

func (s islamic) ID() string { return s.id }

// fixed returns the fixed day of year/month/day in the 30-year cycle with
// leap years 2, 5, 7, 10, 13, 16, 18, 21, 24, 26 and 29.
func (s islamic) fixed(y, m, d int64) int64 {
	return s.epoch - 1 + (y-1)*354 + floorDiv(3+11*y, 30) + 29*(m-1) + floorDiv(m, 2) + d
}

func (s islamic) Parts(epochDays int64) Parts {
	rd := fixedFromEpochDays(epochDays)
	y := floorDiv(30*(rd-s.epoch)+10646, 10631)
	prior := rd - s.fixed(y, 1, 1)
	m := floorDiv(11*prior+330, 325)
	d := rd - s.fixed(y, m, 1) + 1
	return parts(int(y), islamicMonths[m-1], int(d), islamicEras)
}
