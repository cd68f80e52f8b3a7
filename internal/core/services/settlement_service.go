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

// settlementService instantiates year-end adjustment templates as draft
// journal entries. Drafts keep the review step: a settlement entry only
// reaches the reports once it is confirmed through the journal lifecycle.
type settlementService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.SettlementSvcFacade {
	return &settlementService{journalRepo: journalRepo, accountRepo: accountRepo}
}

var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

// ListTemplates returns the adjustment catalog. Pure reference data.
func (s *settlementService) ListTemplates() []domain.SettlementTemplate {
	return domain.SettlementTemplates()
}

// ApplyTemplate creates one balanced draft entry from a template, resolving
// the template's account codes against the company's chart.
func (s *settlementService) ApplyTemplate(ctx context.Context, companyID string, req dto.ApplySettlementRequest) (*domain.JournalEntry, error) {
	var template *domain.SettlementTemplate
	for _, t := range domain.SettlementTemplates() {
		if t.ID == req.TemplateID {
			template = &t
			break
		}
	}
	if template == nil {
		return nil, fmt.Errorf("%w: settlement template %q", apperrors.ErrNotFound, req.TemplateID)
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid date %q", req.Date))
	}
	if req.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	byCode := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}

	debitAccount, ok := byCode[template.DebitAccountCode]
	if !ok {
		return nil, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, template.DebitAccountCode)
	}
	creditAccount, ok := byCode[template.CreditAccountCode]
	if !ok {
		return nil, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, template.CreditAccountCode)
	}

	description := req.Memo
	if description == "" {
		description = template.Name
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:     entryID,
		CompanyID:   companyID,
		Date:        date,
		Description: description,
		Status:      domain.Draft,
		Lines: []domain.JournalLine{
			{
				LineID:    uuid.NewString(),
				EntryID:   entryID,
				Side:      domain.DebitSide,
				AccountID: debitAccount.AccountID,
				Amount:    req.Amount,
				SortOrder: 0,
			},
			{
				LineID:    uuid.NewString(),
				EntryID:   entryID,
				Side:      domain.CreditSide,
				AccountID: creditAccount.AccountID,
				Amount:    req.Amount,
				SortOrder: 1,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save settlement entry", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save settlement entry: %w", err)
	}

	s.LogInfo(ctx, "Settlement entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("template_id", template.ID),
		slog.Int64("amount", req.Amount))
	return &entry, nil
}
