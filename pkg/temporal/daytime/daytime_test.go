package daytime

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

func TestNewNormalizes(t *testing.T) {
	d := New(0, -1)
	assert.Equal(t, int64(-1), d.Days())
	assert.Equal(t, NanosPerDay-1, d.NanosOfDay())
	assert.Equal(t, -1, d.Sign())

	d = New(1, NanosPerDay*2+5)
	assert.Equal(t, int64(3), d.Days())
	assert.Equal(t, int64(5), d.NanosOfDay())

	assert.Equal(t, 0, New(1, -NanosPerDay).Sign())
}

func TestArithmetic(t *testing.T) {
	a := New(2, 10)
	b := New(0, 20)

	assert.Equal(t, New(2, 30), a.Add(b))
	assert.Equal(t, New(1, NanosPerDay-10), a.Sub(b))
	assert.Equal(t, a, a.Neg().Neg())
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(New(1, NanosPerDay+10)))
	assert.Equal(t, a, a.Neg().Abs())
}

func TestFromUnit(t *testing.T) {
	assert.Equal(t, New(1, unit.NanosPerHour), FromUnit(25, unit.NanosPerHour))
	assert.Equal(t, New(-2, NanosPerDay-unit.NanosPerHour), FromUnit(-25, unit.NanosPerHour))
	assert.Equal(t, FromDays(14), FromUnit(2, 7*NanosPerDay))

	// would overflow as a plain nanosecond product
	far := FromUnit(math.MaxInt64, unit.NanosPerSecond)
	assert.Equal(t, int64(math.MaxInt64/86400), far.Days())
}

func TestDiv(t *testing.T) {
	whole, rem, ok := New(1, 90*unit.NanosPerMinute).Div(unit.NanosPerHour)
	require.True(t, ok)
	assert.Equal(t, int64(25), whole)
	assert.Equal(t, FromNanos(30*unit.NanosPerMinute), rem)

	whole, rem, ok = FromNanos(-90 * unit.NanosPerMinute).Div(unit.NanosPerHour)
	require.True(t, ok)
	assert.Equal(t, int64(-1), whole)
	assert.Equal(t, FromNanos(-30*unit.NanosPerMinute), rem)

	_, _, ok = FromDays(MaxInstantDays * 2).Div(1)
	assert.False(t, ok)
}

func TestSeconds(t *testing.T) {
	s, ns := FromNanos(-1).Seconds()
	assert.Equal(t, int64(0), s)
	assert.Equal(t, int64(-1), ns)

	s, ns = New(-1, 500_000_000).Seconds()
	assert.Equal(t, int64(-86399), s)
	assert.Equal(t, int64(-500_000_000), ns)
}

func TestRoundTo(t *testing.T) {
	hour := unit.NanosPerHour
	tests := []struct {
		name string
		in   DayTime
		inc  int64
		mode rounding.Mode
		want DayTime
	}{
		{"half hour up", FromNanos(90 * unit.NanosPerMinute), hour, rounding.HalfExpand, FromNanos(2 * hour)},
		{"half hour even", FromNanos(90 * unit.NanosPerMinute), hour, rounding.HalfEven, FromNanos(2 * hour)},
		{"half even down", FromNanos(150 * unit.NanosPerMinute), hour, rounding.HalfEven, FromNanos(2 * hour)},
		{"negative floor", FromNanos(-90 * unit.NanosPerMinute), hour, rounding.Floor, FromNanos(-2 * hour)},
		{"negative ceil", FromNanos(-90 * unit.NanosPerMinute), hour, rounding.Ceil, FromNanos(-hour)},
		{"carry into day", New(3, NanosPerDay-1), unit.NanosPerSecond, rounding.Ceil, FromDays(4)},
		{"parity across days", New(1, 30*unit.NanosPerMinute), hour, rounding.HalfEven, FromDays(1)},
		{"multi-day increment", New(11, hour), 7 * NanosPerDay, rounding.HalfExpand, FromDays(14)},
		{"multi-day trunc", New(-10, 0), 7 * NanosPerDay, rounding.Trunc, FromDays(-7)},
		{"exact", FromDays(2), NanosPerDay, rounding.Expand, FromDays(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.RoundTo(tt.inc, tt.mode))
		})
	}
}

func TestBigRoundTrip(t *testing.T) {
	for _, d := range []DayTime{Zero, New(0, -1), New(MaxInstantDays, 0), New(-MaxInstantDays, 123)} {
		back, err := FromBig(d.Big())
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}

	huge := new(big.Int).Lsh(big.NewInt(1), 140)
	_, err := FromBig(huge)
	require.Error(t, err)
	assert.True(t, mdwerror.IsRange(err))

	assert.Equal(t, 0, New(1, 0).Rat(FromDays(2)).Cmp(big.NewRat(1, 2)))
}

func TestCheckInstant(t *testing.T) {
	require.NoError(t, FromDays(MaxInstantDays).CheckInstant())
	require.NoError(t, FromDays(-MaxInstantDays).CheckInstant())

	err := New(MaxInstantDays, 1).CheckInstant()
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeOutOfBounds))

	require.Error(t, New(-MaxInstantDays, -1).CheckInstant())
}

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, -2, FloorDiv(-7, 4))
	assert.Equal(t, 1, FloorMod(-7, 4))
	assert.Equal(t, int64(3), Abs(int64(-3)))

	_, ok := MulAdd(math.MaxInt64, 2, 0)
	assert.False(t, ok)
	v, ok := MulAdd(-3, 4, 5)
	assert.True(t, ok)
	assert.Equal(t, int64(-7), v)
}
