package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical row every ingested spreadsheet is normalized
// into, regardless of the original column names. Date and Amount are always
// valid on a retained transaction; rows that fail coercion never make it
// into one.
type Transaction struct {
	// ID is set only for transactions sourced from the store.
	ID          int
	Date        time.Time
	Category    string
	Subcategory string
	Amount      decimal.Decimal
	Description string
}

// Period identifies one budgeting/reporting cycle (a calendar year-month).
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period the given time falls in.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a period in "2006-01" form.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, err
	}
	return PeriodOf(t), nil
}

// Start returns the first instant of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

func (p Period) String() string {
	return p.Start().Format("2006-01")
}
