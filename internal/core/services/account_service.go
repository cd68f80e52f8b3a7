package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RogerFilm/accounting/internal/apperrors"
	"github.com/RogerFilm/accounting/internal/core/domain"
	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/dto"
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount adds a user-defined account. Codes are unique within a
// company.
func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	category := domain.AccountCategory(req.Category)
	if !category.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown account category %q", req.Category))
	}

	existing, err := s.accountRepo.ListAccounts(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	for i := range existing {
		if existing[i].Code == req.Code {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
		}
	}

	if req.ParentID != "" {
		if _, err := s.accountRepo.FindAccountByID(ctx, companyID, req.ParentID); err != nil {
			return nil, fmt.Errorf("parent account %s: %w", req.ParentID, err)
		}
	}

	account := domain.Account{
		AccountID: uuid.NewString(),
		CompanyID: companyID,
		Code:      req.Code,
		Name:      req.Name,
		Category:  category,
		ParentID:  req.ParentID,
		IsSystem:  false,
		IsActive:  true,
		SortOrder: req.SortOrder,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("company_id", companyID), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves one account.
func (s *accountService) GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, companyID, accountID)
}

// GetAccountsByIDs retrieves multiple accounts keyed by ID.
func (s *accountService) GetAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
}

// ListAccounts retrieves the company's chart of accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, companyID)
}

// UpdateAccount applies the mutable fields of an account. System accounts
// keep their name.
func (s *accountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if account.IsSystem {
			return nil, apperrors.NewValidationError("system accounts cannot be renamed")
		}
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		account.SortOrder = *req.SortOrder
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// DeactivateAccount hides an account from new entry selection. Existing
// entries keep referencing it; aggregation still reports it.
func (s *accountService) DeactivateAccount(ctx context.Context, companyID, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return err
	}
	if account.IsSystem {
		return apperrors.NewValidationError("system accounts cannot be deactivated")
	}
	account.IsActive = false
	return s.accountRepo.UpdateAccount(ctx, *account)
}
