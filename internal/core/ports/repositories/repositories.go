package repositories

import (
	"context"
	"time"

	"github.com/RogerFilm/accounting/internal/core/domain"
)

// TaxCategoryRepositoryFacade defines operations for tax category reference data.
type TaxCategoryRepositoryFacade interface {
	// SaveTaxCategories inserts a batch of tax categories (seeding).
	SaveTaxCategories(ctx context.Context, categories []domain.TaxCategory) error

	// ListTaxCategories retrieves all tax categories ordered by sort order.
	ListTaxCategories(ctx context.Context) ([]domain.TaxCategory, error)

	// FindTaxCategoriesByIDs retrieves tax categories keyed by ID.
	FindTaxCategoriesByIDs(ctx context.Context, ids []string) (map[string]domain.TaxCategory, error)
}

// FixedAssetRepositoryFacade defines operations for the fixed asset register.
type FixedAssetRepositoryFacade interface {
	// SaveAsset inserts a new fixed asset.
	SaveAsset(ctx context.Context, asset domain.FixedAsset) error

	// FindAssetByID retrieves an asset scoped to a company.
	FindAssetByID(ctx context.Context, companyID, assetID string) (*domain.FixedAsset, error)

	// ListAssets retrieves every asset for a company.
	ListAssets(ctx context.Context, companyID string) ([]domain.FixedAsset, error)

	// SetDisposalDate records the disposal of an asset.
	SetDisposalDate(ctx context.Context, companyID, assetID string, disposalDate time.Time, updatedAt time.Time) error
}

// CompanyRepositoryFacade defines operations for company settings.
type CompanyRepositoryFacade interface {
	// SaveCompany inserts a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// FindCompanyByID retrieves a company by ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// UpdateCompany updates company settings (fiscal year end month, tax method).
	UpdateCompany(ctx context.Context, company domain.Company) error
}

// RepositoryProvider bundles every repository for dependency injection.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	TaxCategoryRepo TaxCategoryRepositoryFacade
	FixedAssetRepo  FixedAssetRepositoryFacade
	CompanyRepo     CompanyRepositoryFacade
}
