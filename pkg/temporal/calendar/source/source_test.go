package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/chronos/pkg/temporal/iso"
)

func epoch(y, m, d int) int64 {
	return iso.EpochDays(iso.Date{Year: y, Month: m, Day: d})
}

func TestKnownDates(t *testing.T) {
	tests := []struct {
		name string
		src  DataSource
		iso  int64
		want Parts
	}{
		{"hebrew new year", Hebrew(), epoch(2024, 10, 3), Parts{5785, "Tishri", 1, "am", 5785}},
		{"hebrew elul", Hebrew(), epoch(2024, 10, 2), Parts{5784, "Elul", 29, "am", 5784}},
		{"hebrew adar ii", Hebrew(), epoch(2024, 3, 11), Parts{5784, "Adar II", 1, "am", 5784}},
		{"hebrew adar i", Hebrew(), epoch(2024, 3, 10), Parts{5784, "Adar I", 30, "am", 5784}},
		{"hebrew 1972", Hebrew(), epoch(1972, 12, 31), Parts{5733, "Tevet", 26, "am", 5733}},
		{"islamic civil", IslamicCivil(), epoch(2024, 7, 8), Parts{1446, "Muharram", 1, "ah", 1446}},
		{"islamic tbla", IslamicTabular(), epoch(2024, 7, 7), Parts{1446, "Muharram", 1, "ah", 1446}},
		{"islamic 1970", IslamicCivil(), 0, Parts{1389, "Shawwal", 22, "ah", 1389}},
		{"persian nowruz", Persian(), epoch(2024, 3, 20), Parts{1403, "Farvardin", 1, "ap", 1403}},
		{"persian esfand", Persian(), epoch(2024, 3, 19), Parts{1402, "Esfand", 29, "ap", 1402}},
		{"coptic new year", Coptic(), epoch(2024, 9, 11), Parts{1741, "Thout", 1, "am", 1741}},
		{"coptic epagomenal", Coptic(), epoch(2024, 9, 10), Parts{1740, "Pi Kogi Enavot", 5, "am", 1740}},
		{"ethiopic", Ethiopic(), epoch(2024, 9, 11), Parts{2017, "Meskerem", 1, "am", 2017}},
		{"ethiopic 1970", Ethiopic(), 0, Parts{1962, "Tahsas", 23, "am", 1962}},
		{"ethioaa", EthiopicAmeteAlem(), epoch(2024, 9, 11), Parts{7517, "Meskerem", 1, "aa", 7517}},
		{"indian leap chaitra", Indian(), epoch(2024, 3, 21), Parts{1946, "Chaitra", 1, "shaka", 1946}},
		{"indian phalguna", Indian(), epoch(2024, 3, 20), Parts{1945, "Phalguna", 30, "shaka", 1945}},
		{"indian common chaitra", Indian(), epoch(2023, 3, 22), Parts{1945, "Chaitra", 1, "shaka", 1945}},
		{"chinese new year", Chinese(), epoch(2024, 2, 10), Parts{2024, "1", 1, "", 2024}},
		{"chinese eve", Chinese(), epoch(2024, 2, 9), Parts{2023, "12", 30, "", 2023}},
		{"chinese leap second month", Chinese(), epoch(2023, 3, 22), Parts{2023, "L2", 1, "", 2023}},
		{"chinese leap fifth month", Chinese(), epoch(2009, 6, 23), Parts{2009, "L5", 1, "", 2009}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.src.Parts(tt.iso))
		})
	}
}

func TestDaysAreContiguous(t *testing.T) {
	for _, b := range Builtins() {
		t.Run(b.Source.ID(), func(t *testing.T) {
			prev := b.Source.Parts(-40000)
			for d := int64(-39999); d < 40000; d++ {
				cur := b.Source.Parts(d)
				if cur.Day != prev.Day+1 {
					require.Equal(t, 1, cur.Day, "day %d: %+v after %+v", d, cur, prev)
					require.GreaterOrEqual(t, prev.Day, 5, "day %d", d)
				} else {
					require.Equal(t, prev.Month, cur.Month, "day %d", d)
				}
				prev = cur
			}
		})
	}
}

func TestChineseRepeatsOutsideTables(t *testing.T) {
	src := Chinese().(*chinese)
	lo, hi := src.bounds()
	require.Equal(t, Parts{1901, "1", 1, "", 1901}, src.Parts(lo))

	for _, off := range []int64{0, 1, 45, 400, 10000} {
		in := src.Parts(lo + off)
		after := src.Parts(hi + off)
		before := src.Parts(lo - (hi - lo) + off)
		assert.Equal(t, in.Year+chineseBlock, after.Year, "offset %d", off)
		assert.Equal(t, in.Year-chineseBlock, before.Year, "offset %d", off)
		assert.Equal(t, in.Month, after.Month)
		assert.Equal(t, in.Day, before.Day)
	}

	// the far ends of the supported date window stay well formed
	for _, d := range []int64{iso.MinEpochDays, iso.MaxEpochDays} {
		p := src.Parts(d)
		assert.GreaterOrEqual(t, p.Day, 1)
		assert.LessOrEqual(t, p.Day, 30)
	}
}

func TestPersianTablesMeetArithmeticRule(t *testing.T) {
	src := Persian()
	for _, y := range []int{persianFirstTableYear, persianEndTableYear} {
		start := src.Parts(persianNewYear(y))
		assert.Equal(t, Parts{y, "Farvardin", 1, "ap", y}, start)
		last := src.Parts(persianNewYear(y) - 1)
		assert.Equal(t, y-1, last.Year)
		assert.Equal(t, "Esfand", last.Month)
		assert.Contains(t, []int{29, 30}, last.Day)
	}
}

func TestEras(t *testing.T) {
	eras := []Era{{Code: "ce", Anchor: 1}, {Code: "bce", Anchor: 1, Reverse: true}}

	code, eraYear := ResolveEra(eras, 0)
	assert.Equal(t, "bce", code)
	assert.Equal(t, 1, eraYear)

	year, ok := EraYearToYear(eras, "bce", 1)
	require.True(t, ok)
	assert.Equal(t, 0, year)

	_, ok = EraYearToYear(eras, "ah", 1)
	assert.False(t, ok)

	code, eraYear = ResolveEra(ethiopicEras, 0)
	assert.Equal(t, "aa", code)
	assert.Equal(t, 5500, eraYear)
	year, ok = EraYearToYear(ethiopicEras, "aa", 5500)
	require.True(t, ok)
	assert.Equal(t, 0, year)
}

func TestHebrewYearLengths(t *testing.T) {
	valid := map[int64]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	for y := int64(5600); y < 6000; y++ {
		length := hebrewNewYear(y+1) - hebrewNewYear(y)
		require.True(t, valid[length], "year %d has %d days", y, length)

		_, lengths := hebrewMonths(y)
		sum := int64(0)
		for _, l := range lengths {
			sum += int64(l)
		}
		require.Equal(t, length, sum, "year %d", y)
		assert.Equal(t, hebrewLeapYear(y), len(lengths) == 13, "year %d", y)
	}
}
