package budget

import (
	"bytes"
	"encoding/csv"

	log "github.com/sirupsen/logrus"
)

// ComparisonRenderer turns comparison rows into an exportable representation.
type ComparisonRenderer interface {
	RenderComparison(rows []ComparisonRow) (string, error)
}

type CsvComparisonRendererImpl struct {
}

func NewCsvComparisonRenderer() *CsvComparisonRendererImpl {
	return &CsvComparisonRendererImpl{}
}

func (t *CsvComparisonRendererImpl) RenderComparison(rows []ComparisonRow) (string, error) {
	data := [][]string{
		{"Label", "Budgeted", "Actual"},
	}
	for _, row := range rows {
		data = append(data, []string{row.Label, row.Budgeted.StringFixed(2), row.Actual.StringFixed(2)})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
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
