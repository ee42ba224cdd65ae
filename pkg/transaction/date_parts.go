package transaction

import (
	"fmt"
	"time"
)

// DateParts are the calendar fields derived from a transaction date. They are
// always recomputed from the date, never stored.
type DateParts struct {
	Year        int
	Month       int
	Day         int
	MonthName   string
	WeekdayName string
}

// EnrichDate derives the calendar parts of a valid transaction date. The date
// must already be coerced; a zero value yields ErrInvalidDate.
func EnrichDate(date time.Time) (DateParts, error) {
	if date.IsZero() {
		return DateParts{}, fmt.Errorf("%w: zero date", ErrInvalidDate)
	}
	return DateParts{
		Year:        date.Year(),
		Month:       int(date.Month()),
		Day:         date.Day(),
		MonthName:   date.Month().String(),
		WeekdayName: date.Weekday().String(),
	}, nil
}

// Date reconstructs the calendar date the parts were derived from.
func (p DateParts) Date() time.Time {
	return time.Date(p.Year, time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC)
}
