package services

import (
	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/platform/classification"
)

// NewServiceContainer wires every service with its repository dependencies.
// plTable drives profit-and-loss bucket classification; nil falls back to the
// built-in table.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, plTable *classification.Table) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	aggregationSvc := NewAggregationService(repos.AccountRepo, repos.JournalRepo)

	return &portssvc.ServiceContainer{
		Company:      NewCompanyService(repos.CompanyRepo, repos.AccountRepo, repos.TaxCategoryRepo),
		Account:      accountSvc,
		Journal:      NewJournalService(repos.JournalRepo, accountSvc, repos.TaxCategoryRepo),
		Aggregation:  aggregationSvc,
		Reporting:    NewReportingService(aggregationSvc, plTable),
		Tax:          NewTaxService(repos.JournalRepo, repos.TaxCategoryRepo, repos.CompanyRepo),
		Depreciation: NewDepreciationService(repos.FixedAssetRepo, repos.CompanyRepo, repos.JournalRepo),
		Settlement:   NewSettlementService(repos.JournalRepo, repos.AccountRepo),
	}
}
