package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every pgsql-backed repository on one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:     NewAccountRepository(pool),
		JournalRepo:     NewJournalRepository(pool),
		TaxCategoryRepo: NewTaxCategoryRepository(pool),
		FixedAssetRepo:  NewFixedAssetRepository(pool),
		CompanyRepo:     NewCompanyRepository(pool),
	}
}
