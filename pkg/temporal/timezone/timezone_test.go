package timezone

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

func utc(y int, m time.Month, d, h, min int) daytime.DayTime {
	return fromTime(time.Date(y, m, d, h, min, 0, 0, time.UTC))
}

func wall(y, m, d, h, min int) iso.DateTime {
	return iso.DateTime{
		Date: iso.Date{Year: y, Month: m, Day: d},
		Time: iso.Time{Hour: h, Minute: min},
	}
}

func newYork(t *testing.T) TimeZone {
	t.Helper()
	tz, err := Load("America/New_York")
	require.NoError(t, err)
	return tz
}

// wrapped hides the concrete type so the generic code paths run.
type wrapped struct{ TimeZone }

func (w wrapped) PossibleInstantsFor(dt iso.DateTime) []daytime.DayTime {
	return possibleInstants(w, dt)
}

func TestOverlap(t *testing.T) {
	tz := newYork(t)
	dt := wall(2024, 11, 3, 1, 30)

	require.Len(t, tz.PossibleInstantsFor(dt), 2)

	earlier, err := ResolveSingleInstant(tz, dt, Earlier)
	require.NoError(t, err)
	later, err := ResolveSingleInstant(tz, dt, Later)
	require.NoError(t, err)
	compatible, err := ResolveSingleInstant(tz, dt, Compatible)
	require.NoError(t, err)

	assert.Equal(t, utc(2024, 11, 3, 5, 30), earlier)
	assert.Equal(t, utc(2024, 11, 3, 6, 30), later)
	assert.Equal(t, earlier, compatible)
	assert.Equal(t, daytime.FromNanos(unit.NanosPerHour), later.Sub(earlier))

	_, err = ResolveSingleInstant(tz, dt, Reject)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeAmbiguousTime))
	assert.True(t, mdwerror.IsRange(err))
}

func TestGap(t *testing.T) {
	tz := newYork(t)
	dt := wall(2024, 3, 10, 2, 30)

	assert.Empty(t, tz.PossibleInstantsFor(dt))

	compatible, err := ResolveSingleInstant(tz, dt, Compatible)
	require.NoError(t, err)
	// 02:30 read with the pre-gap offset plus the one hour gap
	assert.Equal(t, utc(2024, 3, 10, 7, 30), compatible)
	assert.Equal(t, "2024-03-10T03:30:00", Project(tz, compatible).String())

	later, err := ResolveSingleInstant(tz, dt, Later)
	require.NoError(t, err)
	assert.Equal(t, compatible, later)

	earlier, err := ResolveSingleInstant(tz, dt, Earlier)
	require.NoError(t, err)
	assert.Equal(t, utc(2024, 3, 10, 6, 30), earlier)

	_, err = ResolveSingleInstant(tz, dt, Reject)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeAmbiguousTime))
}

func TestExplicitOffset(t *testing.T) {
	tz := newYork(t)
	dt := wall(2024, 11, 3, 1, 30)
	est := -5 * unit.NanosPerHour

	got, err := ResolveWithExplicitOffset(tz, dt, est, OffsetReject, Compatible, false)
	require.NoError(t, err)
	assert.Equal(t, utc(2024, 11, 3, 6, 30), got)

	_, err = ResolveWithExplicitOffset(tz, dt, unit.NanosPerHour, OffsetReject, Compatible, false)
	assert.True(t, mdwerror.IsRange(err))

	got, err = ResolveWithExplicitOffset(tz, dt, unit.NanosPerHour, OffsetPrefer, Compatible, false)
	require.NoError(t, err)
	assert.Equal(t, utc(2024, 11, 3, 5, 30), got)

	got, err = ResolveWithExplicitOffset(tz, dt, unit.NanosPerHour, OffsetUse, Compatible, false)
	require.NoError(t, err)
	assert.Equal(t, utc(2024, 11, 3, 0, 30), got)

	got, err = ResolveWithExplicitOffset(tz, dt, unit.NanosPerHour, OffsetIgnore, Later, false)
	require.NoError(t, err)
	assert.Equal(t, utc(2024, 11, 3, 6, 30), got)

	t.Run("fuzzy minute match", func(t *testing.T) {
		lmt, err := NewFixedOffset(19*unit.NanosPerMinute + 32*unit.NanosPerSecond)
		require.NoError(t, err)
		dt := wall(1900, 1, 1, 12, 0)
		_, err = ResolveWithExplicitOffset(lmt, dt, 20*unit.NanosPerMinute, OffsetReject, Compatible, false)
		assert.Error(t, err)
		_, err = ResolveWithExplicitOffset(lmt, dt, 20*unit.NanosPerMinute, OffsetReject, Compatible, true)
		assert.NoError(t, err)
	})
}

func TestStartOfDay(t *testing.T) {
	tz := newYork(t)

	start, err := StartOfDay(tz, iso.Date{Year: 2024, Month: 3, Day: 10})
	require.NoError(t, err)
	assert.Equal(t, utc(2024, 3, 10, 5, 0), start)

	n, err := NanosecondsInLocalDay(tz, iso.Date{Year: 2024, Month: 3, Day: 10})
	require.NoError(t, err)
	assert.Equal(t, 23*unit.NanosPerHour, n)

	n, err = NanosecondsInLocalDay(tz, iso.Date{Year: 2024, Month: 11, Day: 3})
	require.NoError(t, err)
	assert.Equal(t, 25*unit.NanosPerHour, n)

	// Sao Paulo skipped midnight when DST began in 2018
	saoPaulo, err := Load("America/Sao_Paulo")
	require.NoError(t, err)
	start, err = StartOfDay(saoPaulo, iso.Date{Year: 2018, Month: 11, Day: 4})
	require.NoError(t, err)
	assert.Equal(t, utc(2018, 11, 4, 3, 0), start)
	assert.Equal(t, "2018-11-04T01:00:00", Project(saoPaulo, start).String())
}

func TestTransitions(t *testing.T) {
	tz := newYork(t)

	for name, zone := range map[string]TimeZone{"zone": tz, "generic": wrapped{tz}} {
		t.Run(name, func(t *testing.T) {
			next, ok := NextTransition(zone, utc(2024, 1, 1, 0, 0))
			require.True(t, ok)
			assert.Equal(t, utc(2024, 3, 10, 7, 0), next)

			prev, ok := PreviousTransition(zone, utc(2024, 6, 1, 0, 0))
			require.True(t, ok)
			assert.Equal(t, utc(2024, 3, 10, 7, 0), prev)

			prev, ok = PreviousTransition(zone, utc(2024, 3, 10, 7, 0))
			require.True(t, ok)
			assert.Equal(t, utc(2023, 11, 5, 6, 0), prev)
		})
	}

	_, ok := NextTransition(FixedOffset{}, utc(2024, 1, 1, 0, 0))
	assert.False(t, ok)
}

func TestGenericPossibleInstants(t *testing.T) {
	tz := wrapped{newYork(t)}
	assert.Len(t, tz.PossibleInstantsFor(wall(2024, 11, 3, 1, 30)), 2)
	assert.Empty(t, tz.PossibleInstantsFor(wall(2024, 3, 10, 2, 30)))
	assert.Len(t, tz.PossibleInstantsFor(wall(2024, 7, 1, 12, 0)), 1)
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		in     string
		nanos  int64
		minute bool
		out    string
	}{
		{"+05:30", 5*unit.NanosPerHour + 30*unit.NanosPerMinute, true, "+05:30"},
		{"-0800", -8 * unit.NanosPerHour, true, "-08:00"},
		{"+00", 0, true, "+00:00"},
		{"−01:00", -unit.NanosPerHour, true, "-01:00"},
		{"+00:19:32", 19*unit.NanosPerMinute + 32*unit.NanosPerSecond, false, "+00:19:32"},
		{"+01:02:03.5", unit.NanosPerHour + 2*unit.NanosPerMinute + 3*unit.NanosPerSecond + 500*unit.NanosPerMillisecond, false, "+01:02:03.5"},
	}
	for _, tt := range tests {
		nanos, minute, err := ParseOffset(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.nanos, nanos, tt.in)
		assert.Equal(t, tt.minute, minute, tt.in)
		assert.Equal(t, tt.out, FormatOffset(nanos))
	}

	for _, bad := range []string{"", "05:00", "+5", "+24:00", "+01:60", "+01:00:00.1234567890"} {
		_, _, err := ParseOffset(bad)
		assert.True(t, mdwerror.IsRange(err), bad)
	}

	assert.Equal(t, 20*unit.NanosPerMinute, RoundOffsetToMinute(19*unit.NanosPerMinute+32*unit.NanosPerSecond))
	assert.Equal(t, -20*unit.NanosPerMinute, RoundOffsetToMinute(-19*unit.NanosPerMinute-30*unit.NanosPerSecond))
}

func TestParseZoned(t *testing.T) {
	in, err := ParseZoned("2024-11-03T01:30-05:00[America/New_York]")
	require.NoError(t, err)
	assert.Equal(t, wall(2024, 11, 3, 1, 30), in.DateTime)
	assert.True(t, in.HasOffset)
	assert.True(t, in.MinutePrecision)
	assert.Equal(t, -5*unit.NanosPerHour, in.Offset)
	assert.Equal(t, "America/New_York", in.Zone)

	in, err = ParseZoned("2024-01-01T00:00Z")
	require.NoError(t, err)
	assert.True(t, in.UTCDesignator)
	assert.Empty(t, in.Zone)

	_, err = ParseZoned("2024-01-01T00:00[UTC")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	loader := NewLoader(nil, nil)

	a, err := loader.Load("Europe/Berlin")
	require.NoError(t, err)
	b, err := loader.Load("Europe/Berlin")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, loader.zones.Size())

	fixed, err := loader.Load("+05:30")
	require.NoError(t, err)
	assert.Equal(t, "+05:30", fixed.ID())

	utcZone, err := loader.Load("utc")
	require.NoError(t, err)
	assert.Equal(t, "UTC", utcZone.ID())

	for _, bad := range []string{"", "Local", "Mars/Olympus_Mons", "+99:00"} {
		_, err := loader.Load(bad)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownTimeZone), bad)
	}
	assert.Equal(t, 1, loader.zones.Size())

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, fixed))
}

func TestLoadIgnoresCase(t *testing.T) {
	loader := NewLoader(nil, nil)

	tests := []struct {
		id   string
		want string
	}{
		{"america/new_york", "America/New_York"},
		{"AMERICA/NEW_YORK", "America/New_York"},
		{"europe/isle_of_man", "Europe/Isle_of_Man"},
		{"america/port-au-prince", "America/Port-au-Prince"},
		{"africa/dar_es_salaam", "Africa/Dar_es_Salaam"},
		{"etc/gmt+5", "Etc/GMT+5"},
		{"us/pacific", "US/Pacific"},
		{"pacific/yap", "Pacific/Yap"},
		{"antarctica/mcmurdo", "Antarctica/McMurdo"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tz, err := loader.Load(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tz.ID())
		})
	}

	a, err := loader.Load("America/New_York")
	require.NoError(t, err)
	b, err := loader.Load("america/new_york")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = loader.Load("local")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownTimeZone))
}

func TestLoadUsesInstalledSpelling(t *testing.T) {
	memFs := afero.NewMemMapFs()
	for _, name := range []string{
		"/zoneinfo/America/Argentina/ComodRivadavia",
		"/zoneinfo/America/Indiana/Knox",
		"/zoneinfo/posix/America/Indiana/Knox",
		"/zoneinfo/zone.tab",
	} {
		require.NoError(t, afero.WriteFile(memFs, name, []byte("TZif"), 0o644))
	}
	loader := NewLoader(nil, nil)
	loader.index = &zoneIndex{fs: memFs, dirs: []string{"/zoneinfo"}}

	canon, ok := loader.index.lookup("america/argentina/comodrivadavia")
	require.True(t, ok)
	assert.Equal(t, "America/Argentina/ComodRivadavia", canon)
	_, ok = loader.index.lookup("zone.tab")
	assert.False(t, ok)
	_, ok = loader.index.lookup("posix/america/indiana/knox")
	assert.False(t, ok)

	tz, err := loader.Load("AMERICA/INDIANA/KNOX")
	require.NoError(t, err)
	assert.Equal(t, "America/Indiana/Knox", tz.ID())
}

func TestOptionParsing(t *testing.T) {
	d, err := ParseDisambiguation("Later")
	require.NoError(t, err)
	assert.Equal(t, Later, d)
	d, err = ParseDisambiguation("")
	require.NoError(t, err)
	assert.Equal(t, Compatible, d)
	_, err = ParseDisambiguation("sometimes")
	assert.True(t, mdwerror.IsType(err))

	p, err := ParseOffsetPolicy("prefer")
	require.NoError(t, err)
	assert.Equal(t, OffsetPrefer, p)
	assert.Equal(t, "ignore", OffsetIgnore.String())
	_, err = ParseOffsetPolicy("always")
	assert.True(t, mdwerror.IsType(err))
}
