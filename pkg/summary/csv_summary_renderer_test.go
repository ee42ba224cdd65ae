package summary

import (
	"testing"
	"time"

	"github.com/finboard/finboard/pkg/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCsvSummaryRendererImpl_RenderSummary(t *testing.T) {
	// given
	period := transaction.Period{Year: 2024, Month: time.February}
	transactions := []transaction.Transaction{
		tx(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "Income", 1000),
		tx(time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), "Food", 150),
		tx(time.Date(2024, time.February, 6, 0, 0, 0, 0, time.UTC), "Food", 50),
		tx(time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC), "Bills", 80),
	}
	summary := Calculate(transactions, period, false, "Income")
	renderer := NewCsvSummaryRenderer()

	// when
	csv, err := renderer.RenderSummary(summary)

	// then
	assert.NoError(t, err)
	assert.Contains(t, csv, "Period,2024-02")
	assert.Contains(t, csv, "Total Income,1000.00")
	assert.Contains(t, csv, "Total Expenses,280.00")
	assert.Contains(t, csv, "Net,720.00")
	assert.Contains(t, csv, "Food,200.00")
	assert.Contains(t, csv, "Bills,80.00")
}

func TestGroupByCategory_KeepsFirstSeenOrder(t *testing.T) {
	// given
	transactions := []transaction.Transaction{
		tx(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "Food", 10),
		tx(time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC), "Bills", 20),
		tx(time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC), "Food", 30),
	}

	// when
	groups := groupByCategory(transactions)

	// then
	assert.Len(t, groups, 2)
	assert.Equal(t, "Food", groups[0].label)
	assert.True(t, decimal.NewFromInt(40).Equal(groups[0].total))
	assert.Equal(t, "Bills", groups[1].label)
	assert.True(t, decimal.NewFromInt(20).Equal(groups[1].total))
}
