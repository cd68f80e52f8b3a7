package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RogerFilm/accounting/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFiscalYearFor_MarchYearEnd(t *testing.T) {
	// The last day of the fiscal year still belongs to the prior label.
	fy := domain.FiscalYearFor(date(2024, time.March, 31), 3)
	assert.Equal(t, "2023", fy.Label)
	assert.Equal(t, date(2023, time.April, 1), fy.Start)
	assert.Equal(t, date(2024, time.March, 31), fy.End)

	fy = domain.FiscalYearFor(date(2024, time.April, 1), 3)
	assert.Equal(t, "2024", fy.Label)
	assert.Equal(t, date(2024, time.April, 1), fy.Start)
	assert.Equal(t, date(2025, time.March, 31), fy.End)
}

func TestFiscalYearFor_DecemberYearEndMatchesCalendarYear(t *testing.T) {
	fy := domain.FiscalYearFor(date(2024, time.July, 15), 12)
	assert.Equal(t, "2024", fy.Label)
	assert.Equal(t, date(2024, time.January, 1), fy.Start)
	assert.Equal(t, date(2024, time.December, 31), fy.End)
}

func TestFiscalYearByLabel(t *testing.T) {
	fy, err := domain.FiscalYearByLabel("2024", 3)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.April, 1), fy.Start)
	assert.Equal(t, date(2025, time.March, 31), fy.End)

	_, err = domain.FiscalYearByLabel("not-a-year", 3)
	assert.Error(t, err)
}

func TestMonthsInFirstYear(t *testing.T) {
	// April acquisition, March year end: the full twelve months remain.
	assert.Equal(t, 12, domain.MonthsInFirstYear(date(2024, time.April, 1), 3))
	// October acquisition leaves October through March.
	assert.Equal(t, 6, domain.MonthsInFirstYear(date(2024, time.October, 20), 3))
	// Acquisition in the closing month counts that single month.
	assert.Equal(t, 1, domain.MonthsInFirstYear(date(2025, time.March, 5), 3))
	// December year end, January acquisition.
	assert.Equal(t, 12, domain.MonthsInFirstYear(date(2024, time.January, 10), 12))
}
