// Package classification maps account codes onto profit & loss statement
// buckets. The mapping is configuration, not code: business-rule changes
// (new accounts, reclassifications) are YAML edits that never touch the
// statement derivation logic.
package classification

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RogerFilm/accounting/internal/core/domain"
)

// Bucket is a profit & loss statement classification.
type Bucket string

const (
	Sales               Bucket = "sales"                 // 売上高
	CostOfSales         Bucket = "cost_of_sales"         // 売上原価
	SellingAndAdmin     Bucket = "selling_and_admin"     // 販売費及び一般管理費
	NonOperatingIncome  Bucket = "non_operating_income"  // 営業外収益
	NonOperatingExpense Bucket = "non_operating_expense" // 営業外費用
	ExtraordinaryGain   Bucket = "extraordinary_gain"    // 特別利益
	ExtraordinaryLoss   Bucket = "extraordinary_loss"    // 特別損失
	IncomeTax           Bucket = "income_tax"            // 法人税等
	None                Bucket = ""                      // not a P&L account
)

// Table resolves an account code to its P&L bucket.
type Table struct {
	byCode map[string]Bucket
}

// tableFile is the YAML shape: bucket name → list of account codes.
type tableFile struct {
	Buckets map[string][]string `yaml:"buckets"`
}

var validBuckets = map[Bucket]bool{
	Sales:               true,
	CostOfSales:         true,
	SellingAndAdmin:     true,
	NonOperatingIncome:  true,
	NonOperatingExpense: true,
	ExtraordinaryGain:   true,
	ExtraordinaryLoss:   true,
	IncomeTax:           true,
}

// Load reads a classification table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classification table: %w", err)
	}
	return Parse(data)
}

// Parse builds a classification table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse classification table: %w", err)
	}

	byCode := make(map[string]Bucket)
	for name, codes := range file.Buckets {
		bucket := Bucket(name)
		if !validBuckets[bucket] {
			return nil, fmt.Errorf("unknown bucket %q in classification table", name)
		}
		for _, code := range codes {
			if existing, ok := byCode[code]; ok {
				return nil, fmt.Errorf("account code %q classified as both %q and %q", code, existing, bucket)
			}
			byCode[code] = bucket
		}
	}
	return &Table{byCode: byCode}, nil
}

// Default returns the built-in classification for the seed chart of accounts.
func Default() *Table {
	return &Table{byCode: map[string]Bucket{
		"5100": CostOfSales,
		"5110": CostOfSales,
		"4200": NonOperatingIncome,
		"4300": NonOperatingIncome,
		"4400": NonOperatingIncome,
		"5500": NonOperatingExpense,
		"4500": ExtraordinaryGain,
		"5600": ExtraordinaryLoss,
		"5700": IncomeTax,
	}}
}

// Classify resolves an account to its bucket. Accounts without an explicit
// classification default by category: revenue to Sales, expense to
// SellingAndAdmin; balance sheet accounts never reach a P&L bucket.
func (t *Table) Classify(code string, category domain.AccountCategory) Bucket {
	if bucket, ok := t.byCode[code]; ok {
		return bucket
	}
	switch category {
	case domain.Revenue:
		return Sales
	case domain.Expense:
		return SellingAndAdmin
	}
	return None
}
