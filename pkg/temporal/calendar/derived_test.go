package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/chronos/pkg/temporal/calendar/source"
	"github.com/msto63/chronos/pkg/temporal/iso"
)

func TestDerivedMatchesSource(t *testing.T) {
	for _, spec := range source.Builtins() {
		r := newDerivedRules(spec, Options{})
		for days := int64(-40000); days <= 40000; days += 13 {
			d := iso.DateFromEpochDays(days)
			y, m, day := r.DateParts(d)
			p := spec.Source.Parts(days)

			require.Equal(t, p.Year, y, "%s %s", spec.Source.ID(), d)
			require.Equal(t, p.Day, day, "%s %s", spec.Source.ID(), d)
			require.Equal(t, p.Month, r.data(y).labels[m-1], "%s %s", spec.Source.ID(), d)
			require.Equal(t, days, r.EpochDays(y, m, day), "%s %s", spec.Source.ID(), d)
		}
	}
}

func TestDerivedYearStructure(t *testing.T) {
	hebrew := newDerivedRules(source.Builtins()[0], Options{})
	require.Equal(t, "hebrew", hebrew.ID())

	// 5784 is a leap year of 383 days, 5785 a common year of 355 days
	assert.Equal(t, 13, hebrew.MonthsInYear(5784))
	assert.Equal(t, 12, hebrew.MonthsInYear(5785))
	assert.Equal(t, int64(383), hebrew.data(5784).starts[13]-hebrew.data(5784).starts[0])
	assert.Equal(t, int64(355), hebrew.data(5785).starts[12]-hebrew.data(5785).starts[0])
	assert.Equal(t, iso.EpochDays(iso.Date{Year: 2023, Month: 9, Day: 16}), hebrew.EpochDays(5784, 1, 1))

	y, m := hebrew.MonthAdd(5784, 11, 2)
	assert.Equal(t, 5784, y)
	assert.Equal(t, 13, m)
	y, m = hebrew.MonthAdd(5784, 13, 1)
	assert.Equal(t, 5785, y)
	assert.Equal(t, 1, m)
	y, m = hebrew.MonthAdd(5785, 1, -14)
	assert.Equal(t, 5783, y)
	assert.Equal(t, 12, m)
}

func TestDerivedVariableLeapMonth(t *testing.T) {
	// a source whose leap month moves is detected by the first differing label
	spec := source.Spec{Source: source.Hebrew(), LeapMonthPosition: -1}
	r := newDerivedRules(spec, Options{})
	assert.Equal(t, 6, r.LeapMonth(5784))
	assert.Equal(t, 0, r.LeapMonth(5785))

	cal := New(r)
	got, err := cal.Refine(FieldBag{Year: Int(5785), MonthCode: "M05L", Day: Int(1)}, iso.Constrain)
	require.NoError(t, err)
	// constrains to the common month with the same number
	assert.Equal(t, "M05", cal.MonthCode(got).String())
}

func TestDerivedSearchLimit(t *testing.T) {
	r := newDerivedRules(source.Builtins()[0], Options{SearchLimit: 2})
	// 5733 and 5732 are searched; 5733's Adar I falls after 1972
	_, _, err := r.YearMonthForMonthDay(MonthCode{Number: 5, Leap: true}, 1)
	assert.Error(t, err)
}
