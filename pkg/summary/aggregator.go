package summary

import (
	"strings"

	"github.com/finboard/finboard/pkg/transaction"
	"github.com/shopspring/decimal"
)

// Calculate aggregates a transaction set into the financial summary of the
// given period. A transaction whose category equals incomeCategory
// (case-insensitively) counts as income, everything else as expense; the two
// subsets are a disjoint cover of the period's transactions.
//
// With includePreviousBalance, the income-minus-expense total of all
// transactions strictly before the first day of the period is folded into
// NetAmount. A period with no transactions yields an all-zero summary.
func Calculate(
	transactions []transaction.Transaction,
	period transaction.Period,
	includePreviousBalance bool,
	incomeCategory string,
) FinancialSummary {
	if incomeCategory == "" {
		incomeCategory = DefaultIncomeCategory
	}

	result := FinancialSummary{
		Period:   period,
		Income:   []transaction.Transaction{},
		Expenses: []transaction.Transaction{},
	}

	for _, tx := range transactions {
		if !period.Contains(tx.Date) {
			continue
		}
		if isIncome(tx, incomeCategory) {
			result.Income = append(result.Income, tx)
			result.TotalIncome = result.TotalIncome.Add(tx.Amount)
		} else {
			result.Expenses = append(result.Expenses, tx)
			result.TotalExpenses = result.TotalExpenses.Add(tx.Amount)
		}
	}
	result.MonthlyNetAmount = result.TotalIncome.Sub(result.TotalExpenses)
	result.NetAmount = result.MonthlyNetAmount

	if includePreviousBalance {
		periodStart := period.Start()
		previousBalance := decimal.Zero
		for _, tx := range transactions {
			if !tx.Date.Before(periodStart) {
				continue
			}
			if isIncome(tx, incomeCategory) {
				previousBalance = previousBalance.Add(tx.Amount)
			} else {
				previousBalance = previousBalance.Sub(tx.Amount)
			}
		}
		result.PreviousBalance = previousBalance
		result.NetAmount = result.MonthlyNetAmount.Add(previousBalance)
	}

	return result
}

func isIncome(tx transaction.Transaction, incomeCategory string) bool {
	return strings.EqualFold(tx.Category, incomeCategory)
}
