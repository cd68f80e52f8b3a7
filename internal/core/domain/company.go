package domain

import "time"

// TaxMethod selects the consumption tax calculation method.
type TaxMethod string

const (
	StandardMethod   TaxMethod = "standard"   // 本則課税
	SimplifiedMethod TaxMethod = "simplified" // 簡易課税
)

// Company holds the fiscal settings every period-based calculation depends on.
type Company struct {
	CompanyID                 string    `json:"companyID"`
	Name                      string    `json:"name"`
	Address                   string    `json:"address,omitempty"`
	InvoiceRegistrationNumber string    `json:"invoiceRegistrationNumber,omitempty"` // T+13桁
	FiscalYearEndMonth        int       `json:"fiscalYearEndMonth"`                  // 1-12, 決算月
	TaxMethod                 TaxMethod `json:"taxMethod"`
	CreatedAt                 time.Time `json:"createdAt"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}
