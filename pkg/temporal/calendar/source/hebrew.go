package source

const (
	hebrewEpoch     = -1373427
	hebrewLeapMonth = 6
)

var hebrewEras = []Era{{Code: "am", Anchor: 1}}

type hebrew struct{}

// Hebrew returns the arithmetic (molad based) Hebrew calendar.
func Hebrew() DataSource { return hebrew{} }

func (hebrew) ID() string { return "hebrew" }

func hebrewLeapYear(y int64) bool {
	return floorMod(7*y+1, 19) < 7
}

func hebrewElapsedDays(y int64) int64 {
	months := floorDiv(235*y-234, 19)
	parts := 12084 + 13753*months
	days := 29*months + floorDiv(parts, 25920)
	// dehiyyah: molad on Sunday, Wednesday or Friday
	if floorMod(3*(days+1), 7) < 3 {
		days++
	}
	return days
}

func hebrewNewYear(y int64) int64 {
	ny0, ny1, ny2 := hebrewElapsedDays(y-1), hebrewElapsedDays(y), hebrewElapsedDays(y+1)
	correction := int64(0)
	switch {
	case ny2-ny1 == 356:
		correction = 2
	case ny1-ny0 == 382:
		correction = 1
	}
	return hebrewEpoch + ny1 + correction
}

func hebrewMonths(y int64) ([]string, []int) {
	length := hebrewNewYear(y+1) - hebrewNewYear(y)
	heshvan, kislev := 29, 30
	if length%10 == 5 {
		heshvan = 30
	}
	if length%10 == 3 {
		kislev = 29
	}
	labels := []string{"Tishri", "Heshvan", "Kislev", "Tevet", "Shevat"}
	lengths := []int{30, heshvan, kislev, 29, 30}
	if hebrewLeapYear(y) {
		labels = append(labels, "Adar I", "Adar II")
		lengths = append(lengths, 30, 29)
	} else {
		labels = append(labels, "Adar")
		lengths = append(lengths, 29)
	}
	labels = append(labels, "Nisan", "Iyar", "Sivan", "Tamuz", "Av", "Elul")
	lengths = append(lengths, 30, 29, 30, 29, 30, 29)
	return labels, lengths
}

func (hebrew) Parts(epochDays int64) Parts {
	rd := fixedFromEpochDays(epochDays)
	y := floorDiv((rd-hebrewEpoch)*98496, 35975351) + 1
	for hebrewNewYear(y+1) <= rd {
		y++
	}
	for hebrewNewYear(y) > rd {
		y--
	}
	labels, lengths := hebrewMonths(y)
	month, day := monthWalk(lengths, rd-hebrewNewYear(y))
	return parts(int(y), labels[month-1], day, hebrewEras)
}
