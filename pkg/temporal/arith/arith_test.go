package arith

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/pkg/temporal/daytime"
	"github.com/msto63/chronos/pkg/temporal/duration"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/marker"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/timezone"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

func plain(t *testing.T, s string) marker.Plain {
	t.Helper()
	dt, err := iso.ParseDateTime(s)
	require.NoError(t, err)
	p, err := marker.NewPlain(nil, dt)
	require.NoError(t, err)
	return p
}

func zoned(t *testing.T, zone, s string, dis timezone.Disambiguation) marker.Zoned {
	t.Helper()
	tz, err := timezone.Load(zone)
	require.NoError(t, err)
	dt, err := iso.ParseDateTime(s)
	require.NoError(t, err)
	z, err := marker.NewZonedLocal(nil, tz, dt, dis)
	require.NoError(t, err)
	return z
}

func dur(f duration.Fields) duration.Duration { return duration.MustNew(f) }

func TestRoundRelative(t *testing.T) {
	jan1 := plain(t, "2024-01-01T00:00:00")
	tests := []struct {
		name string
		in   duration.Fields
		opts Options
		rel  marker.Marker
		want duration.Fields
	}{
		{
			name: "days and hours to days",
			in:   duration.Fields{Days: 1, Hours: 23},
			opts: RoundOptions(unit.Day),
			rel:  jan1,
			want: duration.Fields{Days: 2},
		},
		{
			name: "months stay below half",
			in:   duration.Fields{Days: 40},
			opts: Options{Largest: unit.Month, Smallest: unit.Month, Increment: 1, Mode: rounding.HalfExpand},
			rel:  jan1,
			want: duration.Fields{Months: 1},
		},
		{
			name: "months ceil",
			in:   duration.Fields{Days: 40},
			opts: Options{Largest: unit.Month, Smallest: unit.Month, Increment: 1, Mode: rounding.Ceil},
			rel:  jan1,
			want: duration.Fields{Months: 2},
		},
		{
			name: "months bubble into a year",
			in:   duration.Fields{Months: 11, Days: 20},
			opts: Options{Largest: unit.Year, Smallest: unit.Month, Increment: 1, Mode: rounding.HalfExpand},
			rel:  jan1,
			want: duration.Fields{Years: 1},
		},
		{
			name: "zoned day is 23 hours long",
			in:   duration.Fields{Hours: 22, Minutes: 40},
			opts: Options{Largest: unit.Day, Smallest: unit.Hour, Increment: 1, Mode: rounding.HalfExpand},
			rel:  zoned(t, "America/New_York", "2024-03-09T12:00:00", timezone.Compatible),
			want: duration.Fields{Days: 1},
		},
		{
			name: "largest only balances",
			in:   duration.Fields{Hours: 50},
			opts: Options{Largest: unit.Day, Smallest: unit.Auto, Increment: 1, Mode: rounding.HalfExpand},
			rel:  jan1,
			want: duration.Fields{Days: 2, Hours: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Round(dur(tt.in), tt.opts, tt.rel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Fields())
		})
	}
}

func TestRoundWithoutMarker(t *testing.T) {
	got, err := Round(dur(duration.Fields{Hours: 36}), RoundOptions(unit.Day), nil)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Days: 2}, got.Fields())

	got, err = Round(dur(duration.Fields{Minutes: 90}), Options{Largest: unit.Hour, Smallest: unit.Auto, Increment: 1, Mode: rounding.HalfExpand}, nil)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Hours: 1, Minutes: 30}, got.Fields())

	got, err = Round(dur(duration.Fields{Minutes: -7, Seconds: -30}), Options{Largest: unit.Auto, Smallest: unit.Minute, Increment: 5, Mode: rounding.Floor}, nil)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Minutes: -10}, got.Fields())

	_, err = Round(dur(duration.Fields{Months: 1}), RoundOptions(unit.Day), nil)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeRelativeToRequired))

	_, err = Round(dur(duration.Fields{Hours: 1}), Options{Largest: unit.Auto, Smallest: unit.Auto, Increment: 1}, nil)
	assert.True(t, mdwerror.IsRange(err))
}

func TestRoundValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"largest below smallest", Options{Largest: unit.Hour, Smallest: unit.Day, Increment: 1}},
		{"increment not dividing", Options{Largest: unit.Auto, Smallest: unit.Hour, Increment: 5}},
		{"increment equal to next unit", Options{Largest: unit.Auto, Smallest: unit.Minute, Increment: 60}},
		{"date increment with larger unit", Options{Largest: unit.Month, Smallest: unit.Day, Increment: 2}},
		{"increment too large", Options{Largest: unit.Auto, Smallest: unit.Day, Increment: rounding.MaxIncrement + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Round(dur(duration.Fields{Hours: 1}), tt.opts, plain(t, "2024-01-01T00:00:00"))
			assert.True(t, mdwerror.IsRange(err), "got %v", err)
		})
	}
}

func TestAdd(t *testing.T) {
	got, err := Add(dur(duration.Fields{Hours: 20}), dur(duration.Fields{Hours: 10}), nil)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Hours: 30}, got.Fields())

	got, err = Add(dur(duration.Fields{Days: 1}), dur(duration.Fields{Hours: 36}), nil)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Days: 2, Hours: 12}, got.Fields())

	_, err = Add(dur(duration.Fields{Months: 1}), dur(duration.Fields{Days: 1}), nil)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeRelativeToRequired))

	got, err = Add(dur(duration.Fields{Months: 1}), dur(duration.Fields{Days: 1}), plain(t, "2024-01-31T00:00:00"))
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Months: 1, Days: 1}, got.Fields())

	got, err = Subtract(dur(duration.Fields{Months: 1}), dur(duration.Fields{Days: 1}), plain(t, "2024-01-31T00:00:00"))
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Days: 28}, got.Fields())

	// zoned days are not 24 hours
	z := zoned(t, "America/New_York", "2024-03-09T12:00:00", timezone.Compatible)
	got, err = Add(dur(duration.Fields{Hours: 12}), dur(duration.Fields{Hours: 12}), z)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Hours: 24}, got.Fields())

	got, err = Add(dur(duration.Fields{Days: 1}), dur(duration.Fields{Hours: -1}), z)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Hours: 22}, got.Fields())
}

func TestCompare(t *testing.T) {
	c, err := Compare(dur(duration.Fields{Hours: 25}), dur(duration.Fields{Days: 1}), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	z := zoned(t, "America/New_York", "2024-03-09T12:00:00", timezone.Compatible)
	c, err = Compare(dur(duration.Fields{Days: 1}), dur(duration.Fields{Hours: 24}), z)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(dur(duration.Fields{Months: 1}), dur(duration.Fields{Days: 30}), plain(t, "2024-02-01T00:00:00"))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(dur(duration.Fields{Months: 1}), dur(duration.Fields{Months: 1}), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = Compare(dur(duration.Fields{Months: 1}), dur(duration.Fields{Days: 30}), nil)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeRelativeToRequired))
}

func TestTotal(t *testing.T) {
	got, err := Total(dur(duration.Fields{Hours: 36}), unit.Day, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	got, err = Total(dur(duration.Fields{Days: 45}), unit.Month, plain(t, "2024-01-01T00:00:00"))
	require.NoError(t, err)
	assert.InDelta(t, 1+14.0/29, got, 1e-12)

	got, err = Total(dur(duration.Fields{Days: 1}), unit.Hour, zoned(t, "America/New_York", "2024-03-09T12:00:00", timezone.Compatible))
	require.NoError(t, err)
	assert.Equal(t, 23.0, got)

	got, err = Total(dur(duration.Fields{Hours: 23}), unit.Day, zoned(t, "America/New_York", "2024-03-09T12:00:00", timezone.Compatible))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	_, err = Total(dur(duration.Fields{Weeks: 1}), unit.Day, nil)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeRelativeToRequired))
}

func TestDifference(t *testing.T) {
	start := plain(t, "2024-01-01T00:00:00")
	end := plain(t, "2024-01-03T13:00:00")

	got, err := Difference(start, end, DifferenceOptions(), false)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Days: 2, Hours: 13}, got.Fields())

	opts := DifferenceOptions()
	opts.Smallest = unit.Day
	got, err = Difference(start, end, opts, false)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Days: 2}, got.Fields())

	opts.Mode = rounding.Floor
	got, err = Difference(start, end, opts, true)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Days: -3}, got.Fields())

	opts.Mode = rounding.HalfExpand
	got, err = Difference(start, end, opts, false)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Days: 3}, got.Fields())
}

func TestDifferenceZoned(t *testing.T) {
	start := zoned(t, "America/New_York", "2024-03-09T12:00:00", timezone.Compatible)
	end := zoned(t, "America/New_York", "2024-03-10T12:00:00", timezone.Compatible)

	got, err := Difference(start, end, DifferenceOptions(), false)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Hours: 23}, got.Fields())

	opts := DifferenceOptions()
	opts.Largest = unit.Day
	got, err = Difference(start, end, opts, false)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Days: 1}, got.Fields())

	got, err = Difference(end, start, opts, true)
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Days: 1}, got.Fields())

	other := zoned(t, "Europe/Berlin", "2024-03-10T12:00:00", timezone.Compatible)
	_, err = Difference(start, other, opts, false)
	assert.True(t, mdwerror.IsRange(err))
}

func TestDiffInstants(t *testing.T) {
	b := daytime.FromNanos(3723*unit.NanosPerSecond + 500*unit.NanosPerMillisecond)

	got, err := DiffInstants(daytime.Zero, b, DifferenceOptions())
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Seconds: 3723, Milliseconds: 500}, got.Fields())

	got, err = DiffInstants(daytime.Zero, b, Options{Largest: unit.Auto, Smallest: unit.Minute, Increment: 1, Mode: rounding.HalfExpand})
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Minutes: 62}, got.Fields())

	got, err = DiffInstants(b, daytime.Zero, Options{Largest: unit.Hour, Smallest: unit.Second, Increment: 1, Mode: rounding.Trunc})
	require.NoError(t, err)
	assert.Equal(t, duration.Fields{Hours: -1, Minutes: -2, Seconds: -3}, got.Fields())

	_, err = DiffInstants(daytime.Zero, b, Options{Largest: unit.Day, Smallest: unit.Auto, Increment: 1})
	assert.True(t, mdwerror.IsType(err))
}

func TestRoundInstant(t *testing.T) {
	in := daytime.FromNanos(90 * unit.NanosPerMinute)

	got, err := RoundInstant(in, unit.Hour, 1, rounding.HalfEven)
	require.NoError(t, err)
	assert.Equal(t, daytime.FromNanos(2*unit.NanosPerHour), got)

	got, err = RoundInstant(in.Neg(), unit.Hour, 1, rounding.HalfTrunc)
	require.NoError(t, err)
	assert.Equal(t, daytime.FromNanos(-unit.NanosPerHour), got)

	got, err = RoundInstant(in, unit.Hour, 24, rounding.Floor)
	require.NoError(t, err)
	assert.Equal(t, daytime.Zero, got)

	_, err = RoundInstant(in, unit.Hour, 7, rounding.Floor)
	assert.True(t, mdwerror.IsRange(err))

	_, err = RoundInstant(in, unit.Day, 1, rounding.Floor)
	assert.True(t, mdwerror.IsType(err))
}

func TestRoundDateTime(t *testing.T) {
	tests := []struct {
		in       string
		smallest unit.Unit
		inc      int64
		mode     rounding.Mode
		want     string
	}{
		{"2024-01-31T23:59:59.5", unit.Second, 1, rounding.HalfExpand, "2024-02-01T00:00:00"},
		{"2024-01-31T12:00:00", unit.Day, 1, rounding.HalfExpand, "2024-02-01T00:00:00"},
		{"2024-01-31T11:59:59", unit.Day, 1, rounding.HalfExpand, "2024-01-31T00:00:00"},
		{"2024-01-31T10:17:00", unit.Minute, 15, rounding.Ceil, "2024-01-31T10:30:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dt, err := iso.ParseDateTime(tt.in)
			require.NoError(t, err)
			got, err := RoundDateTime(dt, tt.smallest, tt.inc, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	dt, err := iso.ParseDateTime("2024-01-31T10:17:00")
	require.NoError(t, err)
	_, err = RoundDateTime(dt, unit.Day, 2, rounding.Floor)
	assert.True(t, mdwerror.IsRange(err))
	_, err = RoundDateTime(dt, unit.Month, 1, rounding.Floor)
	assert.True(t, mdwerror.IsType(err))
}

func TestRoundZoned(t *testing.T) {
	// 2024-03-10 is 23 hours long in New York
	late := zoned(t, "America/New_York", "2024-03-10T13:00:00", timezone.Compatible)
	got, err := RoundZoned(late, unit.Day, 1, rounding.HalfExpand)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11T00:00:00", got.DateTime().String())

	early := zoned(t, "America/New_York", "2024-03-10T11:00:00", timezone.Compatible)
	got, err = RoundZoned(early, unit.Day, 1, rounding.HalfExpand)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10T00:00:00", got.DateTime().String())

	// the repeated hour keeps its offset
	repeated := zoned(t, "America/New_York", "2024-11-03T01:20:00", timezone.Later)
	got, err = RoundZoned(repeated, unit.Hour, 1, rounding.HalfExpand)
	require.NoError(t, err)
	assert.Equal(t, "2024-11-03T01:00:00", got.DateTime().String())
	assert.Equal(t, int64(-5*unit.NanosPerHour), got.Offset())
}
