package services

import (
	"context"
	"time"

	"github.com/RogerFilm/accounting/internal/core/domain"
	"github.com/RogerFilm/accounting/internal/dto"
)

// AccountSvcFacade exposes the account registry operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, companyID, accountID string) error
}

// JournalSvcFacade exposes the posting boundary of the ledger.
type JournalSvcFacade interface {
	CreateEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	GetEntry(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, companyID string, from, to time.Time, status *domain.EntryStatus) ([]domain.JournalEntry, error)
	UpdateEntry(ctx context.Context, companyID, entryID string, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	ConfirmEntry(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, companyID, entryID string) error
}

// AggregationSvcFacade folds confirmed ledger lines into per-account totals.
type AggregationSvcFacade interface {
	// AggregateByAccount returns one row per account in the company, always,
	// zero-filled for accounts without activity in [from, to].
	AggregateByAccount(ctx context.Context, companyID string, from, to time.Time) ([]domain.AccountBalance, error)

	// AggregateByMonth re-runs the per-range aggregation once per calendar
	// month spanned by [from, to]; each month is independent, not cumulative.
	AggregateByMonth(ctx context.Context, companyID string, from, to time.Time) ([]domain.MonthlyBalances, error)
}

// ReportingSvcFacade derives the financial statements.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, companyID string, from, to time.Time) (*domain.TrialBalance, error)
	BalanceSheet(ctx context.Context, companyID string, from, to time.Time) (*domain.BalanceSheet, error)
	ProfitLoss(ctx context.Context, companyID string, from, to time.Time) (*domain.ProfitLoss, error)
	MonthlyTrend(ctx context.Context, companyID string, from, to time.Time) (*domain.MonthlyTrend, error)
}

// TaxSvcFacade computes consumption tax liability.
type TaxSvcFacade interface {
	// CalculateConsumptionTax derives tax payable for the range under the
	// given method. businessType (1-6) is only consulted for the simplified
	// method.
	CalculateConsumptionTax(ctx context.Context, companyID string, from, to time.Time, method domain.TaxMethod, businessType int) (*domain.ConsumptionTaxResult, error)
}

// DepreciationSvcFacade manages fixed assets and their amortization schedules.
type DepreciationSvcFacade interface {
	// GenerateSchedule derives the full year-by-year schedule for one asset.
	// Pure: no repository access.
	GenerateSchedule(input domain.DepreciationInput) ([]domain.DepreciationScheduleRow, error)

	// CurrentYearDepreciation looks up the fiscal year's row in the full
	// generated schedule; zero if the year has no row.
	CurrentYearDepreciation(input domain.DepreciationInput, fiscalYear string) (int64, error)

	CreateAsset(ctx context.Context, companyID string, req dto.CreateFixedAssetRequest) (*domain.FixedAsset, error)
	GetAsset(ctx context.Context, companyID, assetID string) (*domain.FixedAsset, error)
	ListAssets(ctx context.Context, companyID string) ([]domain.FixedAsset, error)
	ListAssetDepreciation(ctx context.Context, companyID, fiscalYear string) ([]domain.AssetDepreciation, error)
	DisposeAsset(ctx context.Context, companyID, assetID string, disposalDate time.Time) error

	// PostDepreciation creates one balanced journal entry per asset with a
	// non-zero current-year amount, debiting the depreciation expense account
	// and crediting the asset account directly. Returns the created entry IDs.
	PostDepreciation(ctx context.Context, companyID, fiscalYear string) ([]string, error)
}

// CompanySvcFacade manages company settings and reference data.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error)
	ListTaxCategories(ctx context.Context) ([]domain.TaxCategory, error)
}

// SettlementSvcFacade instantiates year-end adjustment templates
// (決算整理仕訳) as draft journal entries.
type SettlementSvcFacade interface {
	// ListTemplates returns the built-in adjustment catalog.
	ListTemplates() []domain.SettlementTemplate

	// ApplyTemplate creates a balanced draft entry from a template, resolving
	// its account codes against the company's chart.
	ApplyTemplate(ctx context.Context, companyID string, req dto.ApplySettlementRequest) (*domain.JournalEntry, error)
}

// ServiceContainer bundles every service for handler registration.
type ServiceContainer struct {
	Company      CompanySvcFacade
	Account      AccountSvcFacade
	Journal      JournalSvcFacade
	Aggregation  AggregationSvcFacade
	Reporting    ReportingSvcFacade
	Tax          TaxSvcFacade
	Depreciation DepreciationSvcFacade
	Settlement   SettlementSvcFacade
}
