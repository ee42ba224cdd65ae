package budget

import (
	"testing"
	"time"

	"github.com/finboard/finboard/pkg/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func expense(categoryName string, amount int64) transaction.Transaction {
	return transaction.Transaction{
		Date:     time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		Category: categoryName,
		Amount:   decimal.NewFromInt(amount),
	}
}

func line(categoryName string, amount int64) BudgetLine {
	return BudgetLine{
		Period:   transaction.Period{Year: 2024, Month: time.February},
		Category: categoryName,
		Amount:   decimal.NewFromInt(amount),
	}
}

func findRow(t *testing.T, rows []ComparisonRow, label string) ComparisonRow {
	t.Helper()
	for _, row := range rows {
		if row.Label == label {
			return row
		}
	}
	t.Fatalf("no row with label %q", label)
	return ComparisonRow{}
}

func TestCompare_OuterJoinKeepsLabelsFromBothSides(t *testing.T) {
	// given
	lines := []BudgetLine{line("Food", 300)}
	actual := []transaction.Transaction{
		expense("Food", 250),
		expense("Transportation", 50),
	}

	// when
	rows, err := Compare(actual, lines, LevelCategory, nil, "")

	// then
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	food := findRow(t, rows, "Food")
	assert.True(t, decimal.NewFromInt(300).Equal(food.Budgeted))
	assert.True(t, decimal.NewFromInt(250).Equal(food.Actual))

	transportation := findRow(t, rows, "Transportation")
	assert.True(t, transportation.Budgeted.IsZero())
	assert.True(t, decimal.NewFromInt(50).Equal(transportation.Actual))
}

func TestCompare_RejectsUnknownLevel(t *testing.T) {
	// when
	_, err := Compare(nil, nil, Level("weekly"), nil, "")

	// then
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestCompare_MatchingIgnoresCasingAndWhitespace(t *testing.T) {
	// given
	lines := []BudgetLine{line("  dining   out ", 100)}
	actual := []transaction.Transaction{expense("DINING OUT", 40)}

	// when
	rows, err := Compare(actual, lines, LevelCategory, nil, "")

	// then
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Dining Out", rows[0].Label)
	assert.True(t, decimal.NewFromInt(100).Equal(rows[0].Budgeted))
	assert.True(t, decimal.NewFromInt(40).Equal(rows[0].Actual))
}

func TestCompare_GroupsAndSumsWithinLabel(t *testing.T) {
	// given
	actual := []transaction.Transaction{
		expense("Food", 10),
		expense("Food", 20),
		expense("Food", 30),
	}

	// when
	rows, err := Compare(actual, nil, LevelCategory, nil, "")

	// then
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.True(t, decimal.NewFromInt(60).Equal(rows[0].Actual))
}

func TestCompare_InjectsIncomeRow(t *testing.T) {
	// given
	lines := []BudgetLine{line("Food", 300)}
	actual := []transaction.Transaction{expense("Food", 250)}
	income := []transaction.Transaction{
		expense("Income", 1000),
		expense("Income", 500),
	}

	// when
	rows, err := Compare(actual, lines, LevelCategory, income, "Income")

	// then
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	incomeRow := findRow(t, rows, "Income")
	assert.True(t, incomeRow.Budgeted.IsZero(), "income is never budgeted")
	assert.True(t, decimal.NewFromInt(1500).Equal(incomeRow.Actual))
}

func TestCompare_OverwritesMistakenlyBudgetedIncomeRow(t *testing.T) {
	// given
	lines := []BudgetLine{
		line("Income", 2000),
		line("Food", 300),
	}
	income := []transaction.Transaction{expense("Income", 1000)}

	// when
	rows, err := Compare(nil, lines, LevelCategory, income, "income")

	// then
	assert.NoError(t, err)
	assert.Len(t, rows, 2, "income row is overwritten, not duplicated")
	incomeRow := findRow(t, rows, "Income")
	assert.True(t, incomeRow.Budgeted.IsZero())
	assert.True(t, decimal.NewFromInt(1000).Equal(incomeRow.Actual))
}

func TestCompare_SortsByBudgetedDescending(t *testing.T) {
	// given
	lines := []BudgetLine{
		line("Food", 100),
		line("Housing", 900),
		line("Bills", 400),
	}

	// when
	rows, err := Compare(nil, lines, LevelCategory, nil, "")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "Housing", rows[0].Label)
	assert.Equal(t, "Bills", rows[1].Label)
	assert.Equal(t, "Food", rows[2].Label)
}

func TestCompare_SubcategoryLevel(t *testing.T) {
	// given
	lines := []BudgetLine{{
		Period:      transaction.Period{Year: 2024, Month: time.February},
		Category:    "Food",
		Subcategory: "Groceries",
		Amount:      decimal.NewFromInt(200),
	}}
	actual := []transaction.Transaction{{
		Date:        time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC),
		Category:    "Food",
		Subcategory: "groceries",
		Amount:      decimal.NewFromInt(120),
	}}

	// when
	rows, err := Compare(actual, lines, LevelSubcategory, nil, "")

	// then
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Groceries", rows[0].Label)
	assert.True(t, decimal.NewFromInt(120).Equal(rows[0].Actual))
}

func TestCompare_NeverDropsALabel(t *testing.T) {
	// given
	lines := []BudgetLine{line("A", 1), line("B", 2)}
	actual := []transaction.Transaction{expense("B", 1), expense("C", 1)}
	income := []transaction.Transaction{expense("Income", 1)}

	// when
	rows, err := Compare(actual, lines, LevelCategory, income, "Income")

	// then
	assert.NoError(t, err)
	// distinct labels: A, B, C plus the injected income label
	assert.Len(t, rows, 4)
}
