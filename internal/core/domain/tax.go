package domain

// TaxBreakdown is the taxable amount and tax for one (rate, isReduced) bucket.
type TaxBreakdown struct {
	Rate          int   `json:"rate"` // 10 or 8
	IsReduced     bool  `json:"isReduced"`
	TaxableAmount int64 `json:"taxableAmount"` // 課税対象額 (tax-inclusive)
	TaxAmount     int64 `json:"taxAmount"`     // 消費税額
}

// ConsumptionTaxResult is the outcome of a consumption tax calculation.
// TaxPayable may be negative (refund position) and is never clamped.
type ConsumptionTaxResult struct {
	Method TaxMethod `json:"method"`

	SalesBreakdown    []TaxBreakdown `json:"salesBreakdown"`
	TotalTaxableSales int64          `json:"totalTaxableSales"`
	TotalSalesTax     int64          `json:"totalSalesTax"`

	// Purchase side, populated for the standard method only.
	PurchaseBreakdown     []TaxBreakdown `json:"purchaseBreakdown"`
	TotalTaxablePurchases int64          `json:"totalTaxablePurchases"`
	TotalPurchaseTax      int64          `json:"totalPurchaseTax"`

	// Simplified method detail.
	BusinessType       int    `json:"businessType,omitempty"`
	DeemedPurchaseRate string `json:"deemedPurchaseRate,omitempty"` // e.g. "0.9"
	DeemedPurchaseTax  int64  `json:"deemedPurchaseTax,omitempty"`

	TaxPayable int64 `json:"taxPayable"`

	// Statutory 78/22 split for the 10%/8% rate regime.
	NationalTax int64 `json:"nationalTax"`
	LocalTax    int64 `json:"localTax"`
}
