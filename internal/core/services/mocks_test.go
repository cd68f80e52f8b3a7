package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/RogerFilm/accounting/internal/core/domain"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntryStatus(ctx context.Context, companyID, entryID string, status domain.EntryStatus, updatedAt time.Time) error {
	args := m.Called(ctx, companyID, entryID, status, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, companyID, entryID string) error {
	args := m.Called(ctx, companyID, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, companyID string, from, to time.Time, status *domain.EntryStatus) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, from, to, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// MockTaxCategoryRepository is a mock type for the TaxCategoryRepositoryFacade interface
type MockTaxCategoryRepository struct {
	mock.Mock
}

func (m *MockTaxCategoryRepository) SaveTaxCategories(ctx context.Context, categories []domain.TaxCategory) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockTaxCategoryRepository) ListTaxCategories(ctx context.Context) ([]domain.TaxCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxCategory), args.Error(1)
}

func (m *MockTaxCategoryRepository) FindTaxCategoriesByIDs(ctx context.Context, ids []string) (map[string]domain.TaxCategory, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.TaxCategory), args.Error(1)
}

// MockFixedAssetRepository is a mock type for the FixedAssetRepositoryFacade interface
type MockFixedAssetRepository struct {
	mock.Mock
}

func (m *MockFixedAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockFixedAssetRepository) FindAssetByID(ctx context.Context, companyID, assetID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, companyID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockFixedAssetRepository) ListAssets(ctx context.Context, companyID string) ([]domain.FixedAsset, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockFixedAssetRepository) SetDisposalDate(ctx context.Context, companyID, assetID string, disposalDate time.Time, updatedAt time.Time) error {
	args := m.Called(ctx, companyID, assetID, disposalDate, updatedAt)
	return args.Error(0)
}

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// MockAggregationService is a mock type for the AggregationSvcFacade interface
type MockAggregationService struct {
	mock.Mock
}

func (m *MockAggregationService) AggregateByAccount(ctx context.Context, companyID string, from, to time.Time) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockAggregationService) AggregateByMonth(ctx context.Context, companyID string, from, to time.Time) ([]domain.MonthlyBalances, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyBalances), args.Error(1)
}
