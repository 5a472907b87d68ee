package source

const (
	// 0284-08-29 (Julian)
	copticEpoch = 103605
	// 0008-08-29 (Julian)
	ethiopicEpoch = 2796
	// amete alem year of ethiopic year 0
	ameteAlemOffset = 5500
)

var (
	copticEras   = []Era{{Code: "am", Anchor: 1}}
	ethiopicEras = []Era{{Code: "am", Anchor: 1}, {Code: "aa", Anchor: 1 - ameteAlemOffset}}
	ethioaaEras  = []Era{{Code: "aa", Anchor: 1}}

	copticMonths = []string{
		"Thout", "Paopi", "Hathor", "Koiak", "Tobi", "Meshir", "Paremhat",
		"Parmouti", "Pashons", "Paoni", "Epip", "Mesori", "Pi Kogi Enavot",
	}
	ethiopicMonths = []string{
		"Meskerem", "Tekemt", "Hedar", "Tahsas", "Ter", "Yekatit", "Megabit",
		"Miazia", "Genbot", "Sene", "Hamle", "Nehasse", "Pagumen",
	}
)

// alexandrian covers the 13-month calendars of twelve 30-day months and
// five or six epagomenal days.
type alexandrian struct {
	id         string
	epoch      int64
	yearOffset int
	labels     []string
	eras       []Era
}

// Coptic returns the Coptic calendar.
func Coptic() DataSource {
	return alexandrian{id: "coptic", epoch: copticEpoch, labels: copticMonths, eras: copticEras}
}

// Ethiopic returns the Ethiopic calendar in the amete mihret era, falling
// back to amete alem before year 1.
func Ethiopic() DataSource {
	return alexandrian{id: "ethiopic", epoch: ethiopicEpoch, labels: ethiopicMonths, eras: ethiopicEras}
}

// EthiopicAmeteAlem returns the Ethiopic calendar counted entirely in amete
// alem years.
func EthiopicAmeteAlem() DataSource {
	return alexandrian{id: "ethioaa", epoch: ethiopicEpoch, yearOffset: ameteAlemOffset, labels: ethiopicMonths, eras: ethioaaEras}
}

func (s alexandrian) ID() string { return s.id }

func (s alexandrian) fixed(y, m, d int64) int64 {
	return s.epoch - 1 + 365*(y-1) + floorDiv(y, 4) + 30*(m-1) + d
}

func (s alexandrian) Parts(epochDays int64) Parts {
	rd := fixedFromEpochDays(epochDays)
	y := floorDiv(4*(rd-s.epoch)+1463, 1461)
	m := floorDiv(rd-s.fixed(y, 1, 1), 30) + 1
	d := rd + 1 - s.fixed(y, m, 1)
	return parts(int(y)+s.yearOffset, s.labels[m-1], int(d), s.eras)
}
