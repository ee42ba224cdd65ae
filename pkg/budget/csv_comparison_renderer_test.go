package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCsvComparisonRendererImpl_RenderComparison(t *testing.T) {
	// given
	rows := []ComparisonRow{
		{Label: "Food", Budgeted: decimal.NewFromInt(300), Actual: decimal.NewFromInt(250)},
		{Label: "Transportation", Budgeted: decimal.Zero, Actual: decimal.NewFromInt(50)},
	}
	renderer := NewCsvComparisonRenderer()

	// when
	csv, err := renderer.RenderComparison(rows)

	// then
	assert.NoError(t, err)
	assert.Contains(t, csv, "Label,Budgeted,Actual")
	assert.Contains(t, csv, "Food,300.00,250.00")
	assert.Contains(t, csv, "Transportation,0.00,50.00")
}
