package dto

import "github.com/RogerFilm/accounting/internal/core/domain"

// CreateCompanyRequest defines the payload to set up a company. Creation
// seeds the default chart of accounts and tax categories.
type CreateCompanyRequest struct {
	Name                      string `json:"name" binding:"required"`
	Address                   string `json:"address"`
	InvoiceRegistrationNumber string `json:"invoiceRegistrationNumber"`
	FiscalYearEndMonth        int    `json:"fiscalYearEndMonth" binding:"omitempty,min=1,max=12"`
	TaxMethod                 string `json:"taxMethod" binding:"omitempty,oneof=standard simplified"`
}

// UpdateCompanyRequest defines the mutable company settings.
type UpdateCompanyRequest struct {
	Name                      *string `json:"name"`
	Address                   *string `json:"address"`
	InvoiceRegistrationNumber *string `json:"invoiceRegistrationNumber"`
	FiscalYearEndMonth        *int    `json:"fiscalYearEndMonth" binding:"omitempty,min=1,max=12"`
	TaxMethod                 *string `json:"taxMethod" binding:"omitempty,oneof=standard simplified"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID                 string `json:"companyID"`
	Name                      string `json:"name"`
	Address                   string `json:"address,omitempty"`
	InvoiceRegistrationNumber string `json:"invoiceRegistrationNumber,omitempty"`
	FiscalYearEndMonth        int    `json:"fiscalYearEndMonth"`
	TaxMethod                 string `json:"taxMethod"`
}

// ToCompanyResponse converts a domain.Company to its response DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:                 c.CompanyID,
		Name:                      c.Name,
		Address:                   c.Address,
		InvoiceRegistrationNumber: c.InvoiceRegistrationNumber,
		FiscalYearEndMonth:        c.FiscalYearEndMonth,
		TaxMethod:                 string(c.TaxMethod),
	}
}

// TaxCategoryResponse defines the data returned for a tax category.
type TaxCategoryResponse struct {
	TaxCategoryID string `json:"taxCategoryID"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Rate          int    `json:"rate"`
	Type          string `json:"type"`
	IsReduced     bool   `json:"isReduced"`
	IsActive      bool   `json:"isActive"`
}

// ToTaxCategoryResponses converts a slice of tax categories.
func ToTaxCategoryResponses(categories []domain.TaxCategory) []TaxCategoryResponse {
	responses := make([]TaxCategoryResponse, len(categories))
	for i, tc := range categories {
		responses[i] = TaxCategoryResponse{
			TaxCategoryID: tc.TaxCategoryID,
			Code:          tc.Code,
			Name:          tc.Name,
			Rate:          tc.Rate,
			Type:          string(tc.Type),
			IsReduced:     tc.IsReduced,
			IsActive:      tc.IsActive,
		}
	}
	return responses
}
