package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RogerFilm/accounting/internal/apperrors"
	"github.com/RogerFilm/accounting/internal/core/domain"
	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
)

// aggregationService folds confirmed ledger lines into per-account totals.
// It is the single upstream of every statement deriver.
type aggregationService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewAggregationService creates a new AggregationService.
func NewAggregationService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade) portssvc.AggregationSvcFacade {
	return &aggregationService{accountRepo: accountRepo, journalRepo: journalRepo}
}

var _ portssvc.AggregationSvcFacade = (*aggregationService)(nil)

type sideTotals struct {
	debit  int64
	credit int64
}

// AggregateByAccount returns one row per account in the company, zero-filled
// for accounts with no activity, so downstream consumers never special-case
// missing accounts. A confirmed entry found unbalanced here is a fatal
// consistency fault: it would invalidate every downstream report.
func (s *aggregationService) AggregateByAccount(ctx context.Context, companyID string, from, to time.Time) ([]domain.AccountBalance, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidRange
	}

	confirmed := domain.Confirmed
	entries, err := s.journalRepo.ListEntries(ctx, companyID, from, to, &confirmed)
	if err != nil {
		s.LogError(ctx, err, "Failed to list confirmed entries", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list confirmed entries: %w", err)
	}

	totals := make(map[string]sideTotals)
	for i := range entries {
		e := &entries[i]
		if e.DebitTotal() != e.CreditTotal() {
			s.LogError(ctx, apperrors.ErrIntegrity, "Confirmed entry is unbalanced",
				slog.String("entry_id", e.EntryID),
				slog.Int64("debit_total", e.DebitTotal()),
				slog.Int64("credit_total", e.CreditTotal()))
			return nil, fmt.Errorf("%w: confirmed entry %s is unbalanced", apperrors.ErrIntegrity, e.EntryID)
		}
		for _, l := range e.Lines {
			t := totals[l.AccountID]
			if l.Side == domain.DebitSide {
				t.debit += l.Amount
			} else {
				t.credit += l.Amount
			}
			totals[l.AccountID] = t
		}
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	balances := make([]domain.AccountBalance, len(accounts))
	for i, a := range accounts {
		t := totals[a.AccountID]

		// Positive balance means the account sits on its normal side.
		var balance int64
		if a.Category.IsDebitNormal() {
			balance = t.debit - t.credit
		} else {
			balance = t.credit - t.debit
		}

		balances[i] = domain.AccountBalance{
			AccountID:   a.AccountID,
			AccountCode: a.Code,
			AccountName: a.Name,
			Category:    a.Category,
			DebitTotal:  t.debit,
			CreditTotal: t.credit,
			Balance:     balance,
		}
	}

	return balances, nil
}

// AggregateByMonth re-invokes the per-range aggregation once per calendar
// month spanned by [from, to]. Each month is an independent fold, not a
// cumulative one. O(months × ledger-scan) is acceptable at the volumes
// monthly reports cover.
func (s *aggregationService) AggregateByMonth(ctx context.Context, companyID string, from, to time.Time) ([]domain.MonthlyBalances, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidRange
	}

	var results []domain.MonthlyBalances

	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(to) {
		monthStart := cursor
		monthEnd := cursor.AddDate(0, 1, -1)
		label := fmt.Sprintf("%04d/%02d", cursor.Year(), int(cursor.Month()))

		balances, err := s.AggregateByAccount(ctx, companyID, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.MonthlyBalances{Month: label, Balances: balances})

		cursor = cursor.AddDate(0, 1, 0)
	}

	return results, nil
}
