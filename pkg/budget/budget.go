package budget

import (
	"errors"

	"github.com/finboard/finboard/pkg/transaction"
	"github.com/shopspring/decimal"
)

// BudgetLine is one budgeted amount for a (period, category, subcategory)
// triple. At most one line exists per triple and user; re-assigning the
// triple updates the amount in place.
type BudgetLine struct {
	ID          int
	Period      transaction.Period
	Category    string
	Subcategory string
	Amount      decimal.Decimal
}

// Level is the granularity a budget comparison groups by.
type Level string

const (
	LevelCategory    Level = "category"
	LevelSubcategory Level = "subcategory"
)

// ErrInvalidLevel indicates an unsupported comparison granularity.
var ErrInvalidLevel = errors.New("invalid comparison level")

// ComparisonRow is one label of a budget-vs-actual comparison.
type ComparisonRow struct {
	Label    string
	Budgeted decimal.Decimal
	Actual   decimal.Decimal
}
