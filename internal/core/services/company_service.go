package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RogerFilm/accounting/internal/core/domain"
	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/dto"
)

// companyService manages company settings and seeds reference data.
type companyService struct {
	BaseService
	companyRepo     portsrepo.CompanyRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	taxCategoryRepo portsrepo.TaxCategoryRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, taxCategoryRepo portsrepo.TaxCategoryRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo:     companyRepo,
		accountRepo:     accountRepo,
		taxCategoryRepo: taxCategoryRepo,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany sets up a company and installs the default chart of accounts
// and tax categories. The fiscal year end month defaults to March.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	fiscalYearEndMonth := req.FiscalYearEndMonth
	if fiscalYearEndMonth == 0 {
		fiscalYearEndMonth = 3
	}
	taxMethod := domain.TaxMethod(req.TaxMethod)
	if taxMethod == "" {
		taxMethod = domain.StandardMethod
	}

	now := time.Now().UTC()
	company := domain.Company{
		CompanyID:                 uuid.NewString(),
		Name:                      req.Name,
		Address:                   req.Address,
		InvoiceRegistrationNumber: req.InvoiceRegistrationNumber,
		FiscalYearEndMonth:        fiscalYearEndMonth,
		TaxMethod:                 taxMethod,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save company: %w", err)
	}

	accounts := domain.DefaultChartOfAccounts()
	for i := range accounts {
		accounts[i].AccountID = uuid.NewString()
		accounts[i].CompanyID = company.CompanyID
		accounts[i].IsSystem = true
		accounts[i].IsActive = true
		accounts[i].SortOrder = i
		accounts[i].CreatedAt = now
	}
	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		s.LogError(ctx, err, "Failed to seed chart of accounts", slog.String("company_id", company.CompanyID))
		return nil, fmt.Errorf("failed to seed chart of accounts: %w", err)
	}

	categories, err := s.taxCategoryRepo.ListTaxCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax categories: %w", err)
	}
	if len(categories) == 0 {
		seed := domain.DefaultTaxCategories()
		for i := range seed {
			seed[i].TaxCategoryID = uuid.NewString()
			seed[i].IsActive = true
		}
		if err := s.taxCategoryRepo.SaveTaxCategories(ctx, seed); err != nil {
			s.LogError(ctx, err, "Failed to seed tax categories")
			return nil, fmt.Errorf("failed to seed tax categories: %w", err)
		}
	}

	s.LogInfo(ctx, "Company created",
		slog.String("company_id", company.CompanyID),
		slog.Int("fiscal_year_end_month", fiscalYearEndMonth),
		slog.Int("accounts_seeded", len(accounts)))
	return &company, nil
}

// GetCompany retrieves one company.
func (s *companyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// UpdateCompany applies the mutable company settings.
func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.InvoiceRegistrationNumber != nil {
		company.InvoiceRegistrationNumber = *req.InvoiceRegistrationNumber
	}
	if req.FiscalYearEndMonth != nil {
		company.FiscalYearEndMonth = *req.FiscalYearEndMonth
	}
	if req.TaxMethod != nil {
		company.TaxMethod = domain.TaxMethod(*req.TaxMethod)
	}
	company.UpdatedAt = time.Now().UTC()

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// ListTaxCategories returns the tax category reference data.
func (s *companyService) ListTaxCategories(ctx context.Context) ([]domain.TaxCategory, error) {
	return s.taxCategoryRepo.ListTaxCategories(ctx)
}
