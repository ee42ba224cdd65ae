package summary

import (
	"testing"
	"time"

	"github.com/finboard/finboard/pkg/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(date time.Time, category string, amount int64) transaction.Transaction {
	return transaction.Transaction{
		Date:     date,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
	}
}

func TestCalculate(t *testing.T) {
	// given
	transactions := []transaction.Transaction{
		tx(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "Income", 1000),
		tx(time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), "Food", 200),
	}
	period := transaction.Period{Year: 2024, Month: time.February}

	// when
	summary := Calculate(transactions, period, false, "Income")

	// then
	assert.True(t, decimal.NewFromInt(1000).Equal(summary.TotalIncome))
	assert.True(t, decimal.NewFromInt(200).Equal(summary.TotalExpenses))
	assert.True(t, decimal.NewFromInt(800).Equal(summary.MonthlyNetAmount))
	assert.True(t, decimal.NewFromInt(800).Equal(summary.NetAmount))
	assert.True(t, summary.PreviousBalance.IsZero())
	assert.Len(t, summary.Income, 1)
	assert.Len(t, summary.Expenses, 1)
}

func TestCalculate_IncomeMatchIsCaseInsensitive(t *testing.T) {
	// given
	transactions := []transaction.Transaction{
		tx(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), "INCOME", 500),
		tx(time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), "income", 100),
		tx(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), "Rent", 300),
	}
	period := transaction.Period{Year: 2024, Month: time.March}

	// when
	summary := Calculate(transactions, period, false, "Income")

	// then
	assert.True(t, decimal.NewFromInt(600).Equal(summary.TotalIncome))
	assert.True(t, decimal.NewFromInt(300).Equal(summary.TotalExpenses))
}

func TestCalculate_PartitionIsDisjointCover(t *testing.T) {
	// given
	transactions := []transaction.Transaction{
		tx(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), "Income", 10),
		tx(time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC), "Food", 20),
		tx(time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC), "Bills", 30),
	}
	period := transaction.Period{Year: 2024, Month: time.April}

	// when
	summary := Calculate(transactions, period, false, "Income")

	// then
	assert.Equal(t, len(transactions), len(summary.Income)+len(summary.Expenses))
	assert.True(t, summary.TotalIncome.Sub(summary.TotalExpenses).Equal(summary.MonthlyNetAmount))
}

func TestCalculate_FoldsPreviousBalance(t *testing.T) {
	// given
	transactions := []transaction.Transaction{
		tx(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), "Income", 1000),
		tx(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), "Food", 400),
		tx(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "Income", 1000),
		tx(time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), "Food", 200),
	}
	period := transaction.Period{Year: 2024, Month: time.February}

	// when
	summary := Calculate(transactions, period, true, "Income")

	// then
	assert.True(t, decimal.NewFromInt(600).Equal(summary.PreviousBalance))
	assert.True(t, decimal.NewFromInt(800).Equal(summary.MonthlyNetAmount))
	assert.True(t, decimal.NewFromInt(1400).Equal(summary.NetAmount))
	// prior-period transactions stay out of the period subsets
	assert.Len(t, summary.Income, 1)
	assert.Len(t, summary.Expenses, 1)
}

func TestCalculate_EmptyPeriodYieldsZeros(t *testing.T) {
	// given
	period := transaction.Period{Year: 2024, Month: time.June}

	// when
	summary := Calculate(nil, period, true, "Income")

	// then
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpenses.IsZero())
	assert.True(t, summary.MonthlyNetAmount.IsZero())
	assert.True(t, summary.NetAmount.IsZero())
	assert.True(t, summary.PreviousBalance.IsZero())
	assert.Empty(t, summary.Income)
	assert.Empty(t, summary.Expenses)
}

func TestCalculate_DecimalSumsHaveNoDrift(t *testing.T) {
	// given
	period := transaction.Period{Year: 2024, Month: time.May}
	transactions := make([]transaction.Transaction, 0, 100)
	cent := decimal.New(1, -2) // 0.01
	for i := 0; i < 100; i++ {
		transactions = append(transactions, transaction.Transaction{
			Date:     time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
			Category: "Food",
			Amount:   cent,
		})
	}

	// when
	summary := Calculate(transactions, period, false, "Income")

	// then
	assert.True(t, decimal.NewFromInt(1).Equal(summary.TotalExpenses), "100 * 0.01 must be exactly 1")
}
