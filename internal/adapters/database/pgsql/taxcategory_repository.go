package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RogerFilm/accounting/internal/core/domain"
	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
)

type taxCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewTaxCategoryRepository creates a new repository for tax category reference data.
func NewTaxCategoryRepository(pool *pgxpool.Pool) portsrepo.TaxCategoryRepositoryFacade {
	return &taxCategoryRepository{pool: pool}
}

var _ portsrepo.TaxCategoryRepositoryFacade = (*taxCategoryRepository)(nil)

// SaveTaxCategories inserts a batch of tax categories. Codes already present
// are left untouched so seeding is idempotent.
func (r *taxCategoryRepository) SaveTaxCategories(ctx context.Context, categories []domain.TaxCategory) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
		INSERT INTO tax_categories (tax_category_id, code, name, rate, type, is_reduced, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (code) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, tc := range categories {
		batch.Queue(query, tc.TaxCategoryID, tc.Code, tc.Name, tc.Rate, tc.Type, tc.IsReduced, tc.IsActive, tc.SortOrder)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert tax category batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit tax category batch: %w", err)
	}
	return nil
}

// ListTaxCategories retrieves all tax categories ordered by sort order.
func (r *taxCategoryRepository) ListTaxCategories(ctx context.Context) ([]domain.TaxCategory, error) {
	query := `
		SELECT tax_category_id, code, name, rate, type, is_reduced, is_active, sort_order
		FROM tax_categories
		ORDER BY sort_order;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.TaxCategory{}
	for rows.Next() {
		var tc domain.TaxCategory
		if err := rows.Scan(&tc.TaxCategoryID, &tc.Code, &tc.Name, &tc.Rate, &tc.Type, &tc.IsReduced, &tc.IsActive, &tc.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan tax category row: %w", err)
		}
		categories = append(categories, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tax category rows: %w", err)
	}
	return categories, nil
}

// FindTaxCategoriesByIDs retrieves tax categories keyed by ID.
func (r *taxCategoryRepository) FindTaxCategoriesByIDs(ctx context.Context, ids []string) (map[string]domain.TaxCategory, error) {
	query := `
		SELECT tax_category_id, code, name, rate, type, is_reduced, is_active, sort_order
		FROM tax_categories
		WHERE tax_category_id = ANY($1);
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax categories by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.TaxCategory, len(ids))
	for rows.Next() {
		var tc domain.TaxCategory
		if err := rows.Scan(&tc.TaxCategoryID, &tc.Code, &tc.Name, &tc.Rate, &tc.Type, &tc.IsReduced, &tc.IsActive, &tc.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan tax category row: %w", err)
		}
		result[tc.TaxCategoryID] = tc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tax category rows: %w", err)
	}
	return result, nil
}
