package domain

// TaxCategoryType classifies how a tax category participates in the
// consumption tax calculation.
type TaxCategoryType string

const (
	TaxableSales    TaxCategoryType = "taxable_sales"    // 課税売上
	TaxablePurchase TaxCategoryType = "taxable_purchase" // 課税仕入
	Exempt          TaxCategoryType = "exempt"           // 非課税
	NonTaxable      TaxCategoryType = "non_taxable"      // 不課税
	TaxFree         TaxCategoryType = "tax_free"         // 免税
)

// TaxCategory is static reference data describing a consumption tax treatment.
type TaxCategory struct {
	TaxCategoryID string          `json:"taxCategoryID"`
	Code          string          `json:"code"` // e.g. "sales_10"
	Name          string          `json:"name"` // e.g. "課税売上10%"
	Rate          int             `json:"rate"` // integer percent: 0, 8, 10
	Type          TaxCategoryType `json:"type"`
	IsReduced     bool            `json:"isReduced"` // 軽減税率 (reduced 8% rate)
	IsActive      bool            `json:"isActive"`
	SortOrder     int             `json:"sortOrder"`
}

// DefaultTaxCategories returns the standard tax categories for Japanese
// consumption tax, seeded when a company is created.
func DefaultTaxCategories() []TaxCategory {
	return []TaxCategory{
		{Code: "sales_10", Name: "課税売上10%", Rate: 10, Type: TaxableSales, SortOrder: 1},
		{Code: "sales_8r", Name: "課税売上8%（軽減）", Rate: 8, Type: TaxableSales, IsReduced: true, SortOrder: 2},
		{Code: "purchase_10", Name: "課税仕入10%", Rate: 10, Type: TaxablePurchase, SortOrder: 10},
		{Code: "purchase_8r", Name: "課税仕入8%（軽減）", Rate: 8, Type: TaxablePurchase, IsReduced: true, SortOrder: 11},
		{Code: "exempt", Name: "非課税", Rate: 0, Type: Exempt, SortOrder: 20},
		{Code: "non_taxable", Name: "不課税", Rate: 0, Type: NonTaxable, SortOrder: 21},
		{Code: "tax_free", Name: "免税", Rate: 0, Type: TaxFree, SortOrder: 22},
	}
}
