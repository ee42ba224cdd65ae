package summary

import (
	"github.com/finboard/finboard/pkg/transaction"
	"github.com/shopspring/decimal"
)

// DefaultIncomeCategory is the income label used when the user has not
// configured one.
const DefaultIncomeCategory = "Income"

// FinancialSummary is the income/expense/net breakdown of one period.
// It is constructed fresh on every aggregation and never mutated afterwards.
type FinancialSummary struct {
	Period        transaction.Period
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	// MonthlyNetAmount is income minus expenses within the period only.
	MonthlyNetAmount decimal.Decimal
	// PreviousBalance is the cumulative income-minus-expense total over all
	// transactions strictly before the period. Zero when folding was not
	// requested.
	PreviousBalance decimal.Decimal
	// NetAmount is MonthlyNetAmount plus PreviousBalance.
	NetAmount decimal.Decimal
	Income    []transaction.Transaction
	Expenses  []transaction.Transaction
}
