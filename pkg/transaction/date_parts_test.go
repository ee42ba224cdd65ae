package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnrichDate(t *testing.T) {
	// given
	date := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	// when
	parts, err := EnrichDate(date)

	// then
	assert.NoError(t, err)
	assert.Equal(t, 2024, parts.Year)
	assert.Equal(t, 1, parts.Month)
	assert.Equal(t, 5, parts.Day)
	assert.Equal(t, "January", parts.MonthName)
	assert.Equal(t, "Friday", parts.WeekdayName)
}

func TestEnrichDate_RejectsZeroDate(t *testing.T) {
	// when
	_, err := EnrichDate(time.Time{})

	// then
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestEnrichDate_PartsReconstructDate(t *testing.T) {
	// given
	dates := []time.Time{
		time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, date := range dates {
		// when
		parts, err := EnrichDate(date)

		// then
		assert.NoError(t, err)
		assert.Equal(t, date, parts.Date())
	}
}

func TestPeriod(t *testing.T) {
	// given
	period, err := ParsePeriod("2024-02")

	// then
	assert.NoError(t, err)
	assert.Equal(t, 2024, period.Year)
	assert.Equal(t, time.February, period.Month)
	assert.Equal(t, "2024-02", period.String())
	assert.True(t, period.Contains(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), period.Start())
}
