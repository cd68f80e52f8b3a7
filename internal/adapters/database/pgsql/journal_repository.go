package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RogerFilm/accounting/internal/apperrors"
	"github.com/RogerFilm/accounting/internal/core/domain"
	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
)

type journalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a new repository for journal entries and lines.
func NewJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &journalRepository{pool: pool}
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

const insertLineQuery = `
	INSERT INTO journal_lines (line_id, entry_id, side, account_id, amount, tax_category_id, tax_amount, description, sort_order)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

// SaveEntry persists an entry and its lines in one database transaction so a
// partially written entry is never visible.
func (r *journalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	entryQuery := `
		INSERT INTO journal_entries (entry_id, company_id, entry_date, description, client_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.CompanyID,
		entry.Date,
		entry.Description,
		entry.ClientName,
		entry.Status,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", entry.EntryID, err)
	}

	if err := queueLines(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// UpdateEntry replaces a draft entry's fields and lines atomically. Lines are
// deleted and re-inserted rather than diffed.
func (r *journalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	entryQuery := `
		UPDATE journal_entries
		SET entry_date = $3, description = $4, client_name = $5, status = $6, updated_at = $7
		WHERE company_id = $1 AND entry_id = $2;
	`
	tag, err := tx.Exec(ctx, entryQuery,
		entry.CompanyID,
		entry.EntryID,
		entry.Date,
		entry.Description,
		entry.ClientName,
		entry.Status,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entry.EntryID); err != nil {
		return fmt.Errorf("failed to clear lines for entry %s: %w", entry.EntryID, err)
	}

	if err := queueLines(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// queueLines batch-inserts the entry's lines on the given transaction.
func queueLines(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		var taxCategoryID *string
		if line.TaxCategoryID != "" {
			taxCategoryID = &line.TaxCategoryID
		}
		batch.Queue(insertLineQuery,
			line.LineID,
			entry.EntryID,
			line.Side,
			line.AccountID,
			line.Amount,
			taxCategoryID,
			line.TaxAmount,
			line.Description,
			line.SortOrder,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert lines for entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// UpdateEntryStatus transitions an entry's lifecycle status.
func (r *journalRepository) UpdateEntryStatus(ctx context.Context, companyID, entryID string, status domain.EntryStatus, updatedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $3, updated_at = $4
		WHERE company_id = $1 AND entry_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, companyID, entryID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update status of entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes a draft entry; lines go with it via ON DELETE CASCADE.
func (r *journalRepository) DeleteEntry(ctx context.Context, companyID, entryID string) error {
	query := `DELETE FROM journal_entries WHERE company_id = $1 AND entry_id = $2;`
	tag, err := r.pool.Exec(ctx, query, companyID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEntryByID retrieves an entry with its lines.
func (r *journalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, company_id, entry_date, description, client_name, status, created_at, updated_at
		FROM journal_entries
		WHERE company_id = $1 AND entry_id = $2;
	`
	var entry domain.JournalEntry
	err := r.pool.QueryRow(ctx, query, companyID, entryID).Scan(
		&entry.EntryID,
		&entry.CompanyID,
		&entry.Date,
		&entry.Description,
		&entry.ClientName,
		&entry.Status,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	lines, err := r.findLinesByEntryIDs(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entryID]
	return &entry, nil
}

// ListEntries retrieves entries with their lines for a date range, newest
// first. status filters when non-nil.
func (r *journalRepository) ListEntries(ctx context.Context, companyID string, from, to time.Time, status *domain.EntryStatus) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, company_id, entry_date, description, client_name, status, created_at, updated_at
		FROM journal_entries
		WHERE company_id = $1 AND entry_date >= $2 AND entry_date <= $3
	`
	args := []any{companyID, from, to}
	if status != nil {
		query += ` AND status = $4`
		args = append(args, *status)
	}
	query += ` ORDER BY entry_date DESC, created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	entryIDs := []string{}
	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(
			&entry.EntryID,
			&entry.CompanyID,
			&entry.Date,
			&entry.Description,
			&entry.ClientName,
			&entry.Status,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, entry)
		entryIDs = append(entryIDs, entry.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	if len(entries) == 0 {
		return entries, nil
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}
	return entries, nil
}

// findLinesByEntryIDs loads lines for a set of entries in one query, keyed by
// entry ID and ordered by sort order.
func (r *journalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, side, account_id, amount, tax_category_id, tax_amount, description, sort_order
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, sort_order;
	`
	rows, err := r.pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var line domain.JournalLine
		var taxCategoryID *string
		if err := rows.Scan(
			&line.LineID,
			&line.EntryID,
			&line.Side,
			&line.AccountID,
			&line.Amount,
			&taxCategoryID,
			&line.TaxAmount,
			&line.Description,
			&line.SortOrder,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		if taxCategoryID != nil {
			line.TaxCategoryID = *taxCategoryID
		}
		result[line.EntryID] = append(result[line.EntryID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return result, nil
}
