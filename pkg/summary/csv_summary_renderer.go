package summary

import (
	"bytes"
	"encoding/csv"

	"github.com/finboard/finboard/pkg/transaction"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// SummaryRenderer turns a financial summary into an exportable representation.
type SummaryRenderer interface {
	RenderSummary(summary FinancialSummary) (string, error)
}

type CsvSummaryRendererImpl struct {
}

func NewCsvSummaryRenderer() *CsvSummaryRendererImpl {
	return &CsvSummaryRendererImpl{}
}

// RenderSummary renders the period totals followed by a per-category expense
// breakdown, one label per row in first-seen order.
func (t *CsvSummaryRendererImpl) RenderSummary(summary FinancialSummary) (string, error) {
	data := [][]string{
		{"Period", summary.Period.String()},
		{"Total Income", summary.TotalIncome.StringFixed(2)},
		{"Total Expenses", summary.TotalExpenses.StringFixed(2)},
		{"Monthly Net", summary.MonthlyNetAmount.StringFixed(2)},
		{"Previous Balance", summary.PreviousBalance.StringFixed(2)},
		{"Net", summary.NetAmount.StringFixed(2)},
		{},
		{"Category", "Amount"},
	}

	for _, group := range groupByCategory(summary.Expenses) {
		data = append(data, []string{group.label, group.total.StringFixed(2)})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}
	return b.String(), nil
}

type categoryGroup struct {
	label string
	total decimal.Decimal
}

// groupByCategory sums amounts per category, keeping first-seen order.
func groupByCategory(transactions []transaction.Transaction) []categoryGroup {
	order := make([]string, 0)
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if _, ok := totals[tx.Category]; !ok {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	groups := make([]categoryGroup, 0, len(order))
	for _, label := range order {
		groups = append(groups, categoryGroup{label: label, total: totals[label]})
	}
	return groups
}
