package iso

import (
	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/temporal/daytime"
)

const outOfBounds = mdwerror.CodeOutOfBounds

// DateTime is a wall-clock date and time without zone.
type DateTime struct {
	Date Date
	Time Time
}

// ToInstant reads dt as if it were UTC.
func ToInstant(dt DateTime) daytime.DayTime {
	return daytime.New(EpochDays(dt.Date), dt.Time.Nanos())
}

// FromInstant projects an instant to wall-clock fields at a UTC offset.
func FromInstant(instant daytime.DayTime, offsetNanos int64) DateTime {
	local := instant.AddNanos(offsetNanos)
	return DateTime{
		Date: DateFromEpochDays(local.Days()),
		Time: TimeFromNanos(local.NanosOfDay()),
	}
}

// CompareDateTime orders two date-times.
func CompareDateTime(a, b DateTime) int {
	if c := CompareDate(a.Date, b.Date); c != 0 {
		return c
	}
	return CompareTime(a.Time, b.Time)
}

// RegulateDateTime regulates the date and time parts together.
func RegulateDateTime(year, month, day int, t Time, overflow Overflow) (DateTime, error) {
	d, err := RegulateDate(year, month, day, overflow)
	if err != nil {
		return DateTime{}, err
	}
	t, err = RegulateTime(t, overflow)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: d, Time: t}, nil
}

var (
	dateTimeLower = daytime.FromDays(-daytime.MaxInstantDays - 1)
	dateTimeUpper = daytime.FromDays(daytime.MaxInstantDays + 1)
)

// CheckDateTimeInBounds requires dt, read as UTC, to lie strictly inside
// the instant window widened by one day, so that every offset within a day
// keeps the corresponding instant representable.
func CheckDateTimeInBounds(dt DateTime) error {
	at := ToInstant(dt)
	if at.Compare(dateTimeLower) <= 0 || at.Compare(dateTimeUpper) >= 0 {
		return errors.NewErrorBuilder(errors.ModuleISO).
			Operation("checkDateTimeInBounds").
			Code(outOfBounds).
			Messagef("date-time %s outside of the supported range", dt).
			Build()
	}
	return nil
}

// CheckInstantInBounds enforces the ±10⁸-day instant window.
func CheckInstantInBounds(instant daytime.DayTime) error {
	return instant.CheckInstant()
}
