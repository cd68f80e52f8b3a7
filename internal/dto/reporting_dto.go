package dto

import "github.com/RogerFilm/accounting/internal/core/domain"

// ReportPeriod is the inclusive date range a report covers.
type ReportPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TrialBalanceResponse wraps a trial balance with its period.
type TrialBalanceResponse struct {
	Period ReportPeriod        `json:"period"`
	Report domain.TrialBalance `json:"report"`
}

// BalanceSheetResponse wraps a balance sheet with its period.
type BalanceSheetResponse struct {
	Period ReportPeriod        `json:"period"`
	Report domain.BalanceSheet `json:"report"`
}

// ProfitLossResponse wraps a profit & loss statement with its period.
type ProfitLossResponse struct {
	Period ReportPeriod      `json:"period"`
	Report domain.ProfitLoss `json:"report"`
}

// MonthlyTrendResponse wraps the monthly trend series with its period.
type MonthlyTrendResponse struct {
	Period ReportPeriod        `json:"period"`
	Report domain.MonthlyTrend `json:"report"`
}

// ConsumptionTaxResponse wraps a tax calculation with its period.
type ConsumptionTaxResponse struct {
	Period ReportPeriod                `json:"period"`
	Result domain.ConsumptionTaxResult `json:"result"`
}
