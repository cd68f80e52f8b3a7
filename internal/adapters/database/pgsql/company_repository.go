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

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new repository for company settings.
func NewCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &companyRepository{pool: pool}
}

var _ portsrepo.CompanyRepositoryFacade = (*companyRepository)(nil)

// SaveCompany inserts a new company.
func (r *companyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (company_id, name, address, invoice_registration_number, fiscal_year_end_month, tax_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.Address,
		company.InvoiceRegistrationNumber,
		company.FiscalYearEndMonth,
		company.TaxMethod,
		company.CreatedAt,
		company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save company %s: %w", company.CompanyID, err)
	}
	return nil
}

// FindCompanyByID retrieves a company by ID.
func (r *companyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, address, invoice_registration_number, fiscal_year_end_month, tax_method, created_at, updated_at
		FROM companies
		WHERE company_id = $1;
	`
	var company domain.Company
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&company.CompanyID,
		&company.Name,
		&company.Address,
		&company.InvoiceRegistrationNumber,
		&company.FiscalYearEndMonth,
		&company.TaxMethod,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company %s: %w", companyID, err)
	}
	return &company, nil
}

// UpdateCompany updates company settings.
func (r *companyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies
		SET name = $2, address = $3, invoice_registration_number = $4, fiscal_year_end_month = $5, tax_method = $6, updated_at = $7
		WHERE company_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.Address,
		company.InvoiceRegistrationNumber,
		company.FiscalYearEndMonth,
		company.TaxMethod,
		company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", company.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
