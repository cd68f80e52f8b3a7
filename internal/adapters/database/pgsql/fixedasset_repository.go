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

type fixedAssetRepository struct {
	pool *pgxpool.Pool
}

// NewFixedAssetRepository creates a new repository for the fixed asset register.
func NewFixedAssetRepository(pool *pgxpool.Pool) portsrepo.FixedAssetRepositoryFacade {
	return &fixedAssetRepository{pool: pool}
}

var _ portsrepo.FixedAssetRepositoryFacade = (*fixedAssetRepository)(nil)

// SaveAsset inserts a new fixed asset.
func (r *fixedAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	query := `
		INSERT INTO fixed_assets (asset_id, company_id, name, category, acquisition_date, acquisition_cost, useful_life, depreciation_method, residual_value, account_id, depreciation_account_id, disposal_date, memo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		asset.AssetID,
		asset.CompanyID,
		asset.Name,
		asset.Category,
		asset.AcquisitionDate,
		asset.AcquisitionCost,
		asset.UsefulLife,
		asset.DepreciationMethod,
		asset.ResidualValue,
		asset.AccountID,
		asset.DepreciationAccountID,
		asset.DisposalDate,
		asset.Memo,
		asset.CreatedAt,
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save fixed asset %s: %w", asset.AssetID, err)
	}
	return nil
}

const selectAssetColumns = `
	SELECT asset_id, company_id, name, category, acquisition_date, acquisition_cost, useful_life, depreciation_method, residual_value, account_id, depreciation_account_id, disposal_date, memo, created_at, updated_at
	FROM fixed_assets
`

func scanAsset(row pgx.Row) (domain.FixedAsset, error) {
	var asset domain.FixedAsset
	err := row.Scan(
		&asset.AssetID,
		&asset.CompanyID,
		&asset.Name,
		&asset.Category,
		&asset.AcquisitionDate,
		&asset.AcquisitionCost,
		&asset.UsefulLife,
		&asset.DepreciationMethod,
		&asset.ResidualValue,
		&asset.AccountID,
		&asset.DepreciationAccountID,
		&asset.DisposalDate,
		&asset.Memo,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	return asset, err
}

// FindAssetByID retrieves an asset scoped to a company.
func (r *fixedAssetRepository) FindAssetByID(ctx context.Context, companyID, assetID string) (*domain.FixedAsset, error) {
	query := selectAssetColumns + ` WHERE company_id = $1 AND asset_id = $2;`
	asset, err := scanAsset(r.pool.QueryRow(ctx, query, companyID, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fixed asset %s: %w", assetID, err)
	}
	return &asset, nil
}

// ListAssets retrieves every asset for a company ordered by acquisition date.
func (r *fixedAssetRepository) ListAssets(ctx context.Context, companyID string) ([]domain.FixedAsset, error) {
	query := selectAssetColumns + ` WHERE company_id = $1 ORDER BY acquisition_date, asset_id;`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.FixedAsset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed asset rows: %w", err)
	}
	return assets, nil
}

// SetDisposalDate records the disposal of an asset.
func (r *fixedAssetRepository) SetDisposalDate(ctx context.Context, companyID, assetID string, disposalDate time.Time, updatedAt time.Time) error {
	query := `
		UPDATE fixed_assets
		SET disposal_date = $3, updated_at = $4
		WHERE company_id = $1 AND asset_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, companyID, assetID, disposalDate, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to set disposal date for asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
