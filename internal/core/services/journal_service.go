package services

import (
	"context"
	"errors"
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

var (
	ErrEntryUnbalanced  = errors.New("debit and credit totals do not match")
	ErrEntryMissingSide = errors.New("entry needs at least one line on each side")
)

// journalService is the posting boundary of the ledger. Candidate entries
// that fail the balance invariant are rejected with per-line detail, never
// silently fixed.
type journalService struct {
	BaseService
	journalRepo     portsrepo.JournalRepositoryFacade
	accountSvc      portssvc.AccountSvcFacade
	taxCategoryRepo portsrepo.TaxCategoryRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, taxCategoryRepo portsrepo.TaxCategoryRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:     journalRepo,
		accountSvc:      accountSvc,
		taxCategoryRepo: taxCategoryRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines enforces the entry invariants on a candidate entry:
// positive amounts, resolvable account and tax category references,
// at least one line per side, and Σ(debit) == Σ(credit).
// Every offending line is reported, not just the first.
func (s *journalService) validateLines(ctx context.Context, companyID string, lines []dto.CreateJournalLineRequest) error {
	var lineErrors []apperrors.LineError
	var debitTotal, creditTotal int64
	hasDebit, hasCredit := false, false

	accountIDs := make([]string, 0, len(lines))
	taxCategoryIDs := make([]string, 0)
	for _, l := range lines {
		accountIDs = append(accountIDs, l.AccountID)
		if l.TaxCategoryID != "" {
			taxCategoryIDs = append(taxCategoryIDs, l.TaxCategoryID)
		}
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, companyID, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to resolve accounts: %w", err)
	}
	taxCategories := map[string]domain.TaxCategory{}
	if len(taxCategoryIDs) > 0 {
		taxCategories, err = s.taxCategoryRepo.FindTaxCategoriesByIDs(ctx, taxCategoryIDs)
		if err != nil {
			return fmt.Errorf("failed to resolve tax categories: %w", err)
		}
	}

	for i, l := range lines {
		if l.Amount <= 0 {
			lineErrors = append(lineErrors, apperrors.LineError{Index: i, Message: "amount must be positive"})
		}
		if l.TaxAmount < 0 || l.TaxAmount > l.Amount {
			lineErrors = append(lineErrors, apperrors.LineError{Index: i, Message: "tax amount must be between 0 and the line amount"})
		}
		if _, ok := accounts[l.AccountID]; !ok {
			lineErrors = append(lineErrors, apperrors.LineError{Index: i, Message: fmt.Sprintf("unknown account %s", l.AccountID)})
		}
		if l.TaxCategoryID != "" {
			if _, ok := taxCategories[l.TaxCategoryID]; !ok {
				lineErrors = append(lineErrors, apperrors.LineError{Index: i, Message: fmt.Sprintf("unknown tax category %s", l.TaxCategoryID)})
			}
		}

		switch domain.Side(l.Side) {
		case domain.DebitSide:
			hasDebit = true
			debitTotal += l.Amount
		case domain.CreditSide:
			hasCredit = true
			creditTotal += l.Amount
		default:
			lineErrors = append(lineErrors, apperrors.LineError{Index: i, Message: fmt.Sprintf("invalid side %q", l.Side)})
		}
	}

	if len(lineErrors) > 0 {
		return apperrors.NewValidationError("journal entry has invalid lines", lineErrors...)
	}
	if !hasDebit || !hasCredit {
		return apperrors.NewValidationError(ErrEntryMissingSide.Error())
	}
	if debitTotal != creditTotal {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s: debit total is %d, credit total is %d", ErrEntryUnbalanced.Error(), debitTotal, creditTotal))
	}
	return nil
}

// buildEntry maps a validated request onto a domain entry with fresh IDs.
func buildEntry(companyID, entryID string, req dto.CreateJournalEntryRequest, status domain.EntryStatus, now time.Time) (domain.JournalEntry, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return domain.JournalEntry{}, apperrors.NewValidationError(fmt.Sprintf("invalid date %q", req.Date))
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:        uuid.NewString(),
			EntryID:       entryID,
			Side:          domain.Side(l.Side),
			AccountID:     l.AccountID,
			Amount:        l.Amount,
			TaxCategoryID: l.TaxCategoryID,
			TaxAmount:     l.TaxAmount,
			Description:   l.Description,
			SortOrder:     i,
		}
	}

	return domain.JournalEntry{
		EntryID:     entryID,
		CompanyID:   companyID,
		Date:        date,
		Description: req.Description,
		ClientName:  req.ClientName,
		Status:      status,
		Lines:       lines,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CreateEntry submits a candidate entry. Drafts skip nothing but the balance
// check is always run before a confirmed entry becomes visible to reports.
func (s *journalService) CreateEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	status := domain.Draft
	if req.Status != "" {
		status = domain.EntryStatus(req.Status)
	}

	if err := s.validateLines(ctx, companyID, req.Lines); err != nil {
		s.LogWarn(ctx, "Journal entry rejected", slog.String("company_id", companyID), slog.String("reason", err.Error()))
		return nil, err
	}

	entry, err := buildEntry(companyID, uuid.NewString(), req, status, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("status", string(entry.Status)),
		slog.Int64("debit_total", entry.DebitTotal()))
	return &entry, nil
}

// GetEntry retrieves one entry with its lines.
func (s *journalService) GetEntry(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves entries for the period, optionally filtered by status.
func (s *journalService) ListEntries(ctx context.Context, companyID string, from, to time.Time, status *domain.EntryStatus) ([]domain.JournalEntry, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidRange
	}
	return s.journalRepo.ListEntries(ctx, companyID, from, to, status)
}

// UpdateEntry replaces a draft entry's content. Confirmed entries are immutable.
func (s *journalService) UpdateEntry(ctx context.Context, companyID, entryID string, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	existing, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.Confirmed {
		return nil, apperrors.ErrImmutableEntry
	}

	if err := s.validateLines(ctx, companyID, req.Lines); err != nil {
		return nil, err
	}

	status := existing.Status
	if req.Status != "" {
		status = domain.EntryStatus(req.Status)
	}

	entry, err := buildEntry(companyID, entryID, req, status, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	entry.CreatedAt = existing.CreatedAt

	if err := s.journalRepo.UpdateEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}
	return &entry, nil
}

// ConfirmEntry transitions a draft to confirmed after re-running validation.
// This is the point at which the balance invariant becomes load-bearing for
// every downstream report, so it is never skipped.
func (s *journalService) ConfirmEntry(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.Confirmed {
		return entry, nil
	}

	lines := make([]dto.CreateJournalLineRequest, len(entry.Lines))
	for i, l := range entry.Lines {
		lines[i] = dto.CreateJournalLineRequest{
			Side:          string(l.Side),
			AccountID:     l.AccountID,
			Amount:        l.Amount,
			TaxCategoryID: l.TaxCategoryID,
			TaxAmount:     l.TaxAmount,
		}
	}
	if err := s.validateLines(ctx, companyID, lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.journalRepo.UpdateEntryStatus(ctx, companyID, entryID, domain.Confirmed, now); err != nil {
		s.LogError(ctx, err, "Failed to confirm journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to confirm journal entry: %w", err)
	}

	entry.Status = domain.Confirmed
	entry.UpdatedAt = now
	s.LogInfo(ctx, "Journal entry confirmed", slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteEntry removes a draft. Confirmed entries cannot be deleted.
func (s *journalService) DeleteEntry(ctx context.Context, companyID, entryID string) error {
	entry, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return err
	}
	if entry.Status == domain.Confirmed {
		return apperrors.ErrImmutableEntry
	}
	return s.journalRepo.DeleteEntry(ctx, companyID, entryID)
}
