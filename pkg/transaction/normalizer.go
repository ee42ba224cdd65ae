package transaction

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/finboard/finboard/pkg/category"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// RawRow is one row of an uploaded table: cell values keyed by their source
// column name. Cells keep whatever loose type the upload parser produced.
type RawRow map[string]any

// RawTable is the tabular blob handed over by the ingestion boundary.
type RawTable []RawRow

// NormalizationResult carries the canonical transactions together with the
// diagnostics of the lossy coercion steps. Rows dropped for an unparseable
// date or amount are counted, never retained with placeholders.
type NormalizationResult struct {
	Transactions   []Transaction
	DroppedDates   int
	DroppedAmounts int
}

// Dropped returns the total number of input rows discarded during coercion.
func (r NormalizationResult) Dropped() int {
	return r.DroppedDates + r.DroppedAmounts
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
}

// Normalize maps a raw table onto the canonical transaction schema.
//
// Columns are renamed per the mapping (unmapped ones are dropped, except an
// "id" column which is passed through for edit workflows), date and amount
// are coerced with a drop-and-count policy, category and subcategory labels
// are cleaned, and the result is sorted chronologically with input order
// preserved on ties.
func Normalize(table RawTable, mapping ColumnMapping) (NormalizationResult, error) {
	if err := mapping.Validate(); err != nil {
		return NormalizationResult{}, err
	}
	if err := checkColumnsPresent(table, mapping); err != nil {
		return NormalizationResult{}, err
	}

	dateColumn, _ := mapping.source(FieldDate)
	amountColumn, _ := mapping.source(FieldAmount)
	categoryColumn, hasCategory := mapping.source(FieldCategory)
	subcategoryColumn, hasSubcategory := mapping.source(FieldSubcategory)
	descriptionColumn, hasDescription := mapping.source(FieldDescription)

	result := NormalizationResult{Transactions: make([]Transaction, 0, len(table))}
	for _, row := range table {
		date, ok := coerceDate(row[dateColumn])
		if !ok {
			result.DroppedDates++
			continue
		}
		amount, ok := coerceAmount(row[amountColumn])
		if !ok {
			result.DroppedAmounts++
			continue
		}

		tx := Transaction{Date: date, Amount: amount}
		if hasCategory {
			tx.Category = category.Clean(coerceString(row[categoryColumn]))
		}
		if hasSubcategory {
			tx.Subcategory = category.Clean(coerceString(row[subcategoryColumn]))
		}
		if hasDescription {
			tx.Description = coerceString(row[descriptionColumn])
		}
		if id, ok := coerceId(row["id"]); ok {
			tx.ID = id
		}
		result.Transactions = append(result.Transactions, tx)
	}

	if dropped := result.Dropped(); dropped > 0 {
		log.Debugf("normalization dropped %d of %d rows (%d bad dates, %d bad amounts)",
			dropped, len(table), result.DroppedDates, result.DroppedAmounts)
	}

	sort.SliceStable(result.Transactions, func(i, j int) bool {
		a, b := result.Transactions[i].Date, result.Transactions[j].Date
		if a.Year() != b.Year() {
			return a.Year() < b.Year()
		}
		if a.Month() != b.Month() {
			return a.Month() < b.Month()
		}
		return a.Day() < b.Day()
	})
	return result, nil
}

// checkColumnsPresent fails when a mapped source column never appears in the
// input. An empty table has no columns to check against.
func checkColumnsPresent(table RawTable, mapping ColumnMapping) error {
	if len(table) == 0 {
		return nil
	}
	present := make(map[string]bool)
	for _, row := range table {
		for column := range row {
			present[column] = true
		}
	}
	for source := range mapping {
		if !present[source] {
			return fmt.Errorf("%w: %q", ErrMissingColumn, source)
		}
	}
	return nil
}

func coerceDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func coerceAmount(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func coerceId(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(v))
		return id, err == nil
	}
	return 0, false
}
