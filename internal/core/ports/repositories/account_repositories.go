package repositories

import (
	"context"

	"github.com/RogerFilm/accounting/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier, scoped to a company.
	FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by ID, keyed by account ID.
	FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves every account for a company ordered by code.
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccounts inserts a batch of accounts in one transaction (company seeding).
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	// UpdateAccount updates the mutable fields of an account (name, isActive, sortOrder).
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines account read and write operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
