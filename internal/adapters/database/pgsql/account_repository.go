package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RogerFilm/accounting/internal/apperrors"
	"github.com/RogerFilm/accounting/internal/core/domain"
	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
)

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for chart-of-accounts data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &accountRepository{pool: pool}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

const insertAccountQuery = `
	INSERT INTO accounts (account_id, company_id, code, name, category, parent_id, is_system, is_active, sort_order, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

// SaveAccount inserts a new account.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	var parentID *string
	if account.ParentID != "" {
		parentID = &account.ParentID
	}

	_, err := r.pool.Exec(ctx, insertAccountQuery,
		account.AccountID,
		account.CompanyID,
		account.Code,
		account.Name,
		account.Category,
		parentID,
		account.IsSystem,
		account.IsActive,
		account.SortOrder,
		account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.AccountID, err)
	}
	return nil
}

// SaveAccounts inserts a batch of accounts in one transaction, used when
// seeding a company's chart of accounts.
func (r *accountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	batch := &pgx.Batch{}
	for _, account := range accounts {
		var parentID *string
		if account.ParentID != "" {
			parentID = &account.ParentID
		}
		batch.Queue(insertAccountQuery,
			account.AccountID,
			account.CompanyID,
			account.Code,
			account.Name,
			account.Category,
			parentID,
			account.IsSystem,
			account.IsActive,
			account.SortOrder,
			account.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert account batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit account batch: %w", err)
	}
	return nil
}

// UpdateAccount updates the mutable fields of an account.
func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $3, is_active = $4, sort_order = $5
		WHERE company_id = $1 AND account_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query,
		account.CompanyID,
		account.AccountID,
		account.Name,
		account.IsActive,
		account.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const selectAccountColumns = `
	SELECT account_id, company_id, code, name, category, parent_id, is_system, is_active, sort_order, created_at
	FROM accounts
`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var account domain.Account
	var parentID *string
	err := row.Scan(
		&account.AccountID,
		&account.CompanyID,
		&account.Code,
		&account.Name,
		&account.Category,
		&parentID,
		&account.IsSystem,
		&account.IsActive,
		&account.SortOrder,
		&account.CreatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	if parentID != nil {
		account.ParentID = *parentID
	}
	return account, nil
}

// FindAccountByID retrieves an account by its ID, scoped to a company.
func (r *accountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	query := selectAccountColumns + ` WHERE company_id = $1 AND account_id = $2;`
	account, err := scanAccount(r.pool.QueryRow(ctx, query, companyID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by account ID.
func (r *accountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	query := selectAccountColumns + ` WHERE company_id = $1 AND account_id = ANY($2);`
	rows, err := r.pool.Query(ctx, query, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result[account.AccountID] = account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return result, nil
}

// ListAccounts retrieves every account for a company ordered by code.
func (r *accountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	query := selectAccountColumns + ` WHERE company_id = $1 ORDER BY code;`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
