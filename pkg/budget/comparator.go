package budget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/finboard/finboard/pkg/category"
	"github.com/finboard/finboard/pkg/transaction"
	"github.com/shopspring/decimal"
)

// Compare reconciles budget lines against actual expenses at the chosen
// granularity. Labels are cleaned on both sides before matching, both sides
// are grouped and summed, and the grouped tables are outer-joined: a label
// present on only one side gets zero for the missing side.
//
// When income transactions are supplied, a row for the income label is
// injected with a zero budget and the income total as actual; an existing
// row for that label (a mistakenly budgeted income line) is overwritten, not
// duplicated. Rows come back sorted by budgeted amount descending, ties in
// grouping order.
func Compare(
	actual []transaction.Transaction,
	lines []BudgetLine,
	level Level,
	income []transaction.Transaction,
	incomeCategory string,
) ([]ComparisonRow, error) {
	if level != LevelCategory && level != LevelSubcategory {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	budgeted := newGrouping()
	for _, line := range lines {
		budgeted.add(category.Clean(lineLabel(line, level)), line.Amount)
	}
	spent := newGrouping()
	for _, tx := range actual {
		spent.add(category.Clean(transactionLabel(tx, level)), tx.Amount)
	}

	rows := make([]ComparisonRow, 0, len(budgeted.order)+len(spent.order))
	for _, label := range budgeted.order {
		rows = append(rows, ComparisonRow{
			Label:    label,
			Budgeted: budgeted.totals[label],
			Actual:   spent.totals[label],
		})
	}
	for _, label := range spent.order {
		if _, ok := budgeted.totals[label]; ok {
			continue
		}
		rows = append(rows, ComparisonRow{Label: label, Actual: spent.totals[label]})
	}

	if income != nil {
		if incomeCategory == "" {
			incomeCategory = "Income"
		}
		incomeLabel := category.Clean(incomeCategory)
		totalIncome := decimal.Zero
		for _, tx := range income {
			totalIncome = totalIncome.Add(tx.Amount)
		}

		incomeRow := ComparisonRow{Label: incomeLabel, Budgeted: decimal.Zero, Actual: totalIncome}
		replaced := false
		for i, row := range rows {
			if strings.EqualFold(row.Label, incomeLabel) {
				rows[i] = incomeRow
				replaced = true
				break
			}
		}
		if !replaced {
			rows = append(rows, incomeRow)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Budgeted.GreaterThan(rows[j].Budgeted)
	})
	return rows, nil
}

func lineLabel(line BudgetLine, level Level) string {
	if level == LevelSubcategory {
		return line.Subcategory
	}
	return line.Category
}

func transactionLabel(tx transaction.Transaction, level Level) string {
	if level == LevelSubcategory {
		return tx.Subcategory
	}
	return tx.Category
}

// grouping accumulates per-label sums while remembering first-seen order.
type grouping struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newGrouping() *grouping {
	return &grouping{totals: make(map[string]decimal.Decimal)}
}

func (g *grouping) add(label string, amount decimal.Decimal) {
	if _, ok := g.totals[label]; !ok {
		g.order = append(g.order, label)
	}
	g.totals[label] = g.totals[label].Add(amount)
}
