package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

func TestParse(t *testing.T) {
	cases := map[string]Unit{
		"year":         Year,
		"years":        Year,
		"Months":       Month,
		"hour":         Hour,
		"microseconds": Microsecond,
		"nanosecond":   Nanosecond,
		"":             Auto,
		"auto":         Auto,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("fortnight")
	require.Error(t, err)
	assert.True(t, mdwerror.IsType(err))
}

func TestOrderingAndLengths(t *testing.T) {
	assert.Equal(t, Year, Larger(Year, Day))
	assert.Equal(t, Second, Smaller(Hour, Second))
	assert.True(t, Week.IsCalendar())
	assert.False(t, Day.IsCalendar())
	assert.False(t, Day.IsTime())
	assert.True(t, Hour.IsTime())

	assert.Equal(t, int64(86_400_000_000_000), Day.Nanos())
	assert.Equal(t, int64(0), Month.Nanos())
	assert.Equal(t, "milliseconds", Millisecond.Plural())
	assert.Len(t, All(), Count)
}
