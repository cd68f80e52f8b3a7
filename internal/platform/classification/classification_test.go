package classification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RogerFilm/accounting/internal/core/domain"
	"github.com/RogerFilm/accounting/internal/platform/classification"
)

func TestParse(t *testing.T) {
	table, err := classification.Parse([]byte(`
buckets:
  cost_of_sales:
    - "5110"
  non_operating_income:
    - "4200"
`))
	require.NoError(t, err)

	assert.Equal(t, classification.CostOfSales, table.Classify("5110", domain.Expense))
	assert.Equal(t, classification.NonOperatingIncome, table.Classify("4200", domain.Revenue))
}

func TestParse_UnknownBucket(t *testing.T) {
	_, err := classification.Parse([]byte(`
buckets:
  operating_margin:
    - "5110"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bucket")
}

func TestParse_DuplicateCode(t *testing.T) {
	_, err := classification.Parse([]byte(`
buckets:
  cost_of_sales:
    - "5110"
  selling_and_admin:
    - "5110"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5110")
}

func TestClassify_CategoryDefaults(t *testing.T) {
	table, err := classification.Parse([]byte("buckets: {}"))
	require.NoError(t, err)

	// Unclassified codes fall back by account category.
	assert.Equal(t, classification.Sales, table.Classify("4100", domain.Revenue))
	assert.Equal(t, classification.SellingAndAdmin, table.Classify("5320", domain.Expense))
	assert.Equal(t, classification.None, table.Classify("1100", domain.Asset))
	assert.Equal(t, classification.None, table.Classify("2100", domain.Liability))
}

func TestDefault(t *testing.T) {
	table := classification.Default()

	assert.Equal(t, classification.CostOfSales, table.Classify("5110", domain.Expense))
	assert.Equal(t, classification.NonOperatingExpense, table.Classify("5500", domain.Expense))
	assert.Equal(t, classification.ExtraordinaryGain, table.Classify("4500", domain.Revenue))
	assert.Equal(t, classification.ExtraordinaryLoss, table.Classify("5600", domain.Expense))
	assert.Equal(t, classification.IncomeTax, table.Classify("5700", domain.Expense))
}
