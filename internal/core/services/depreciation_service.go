package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RogerFilm/accounting/internal/apperrors"
	"github.com/RogerFilm/accounting/internal/core/domain"
	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/dto"
)

// guaranteeRates is the statutory 保証率 table for the 200% declining-balance
// method, keyed by useful life in years. Lives outside the table use the
// 1/n² fallback; the approximation is logged so it never passes silently.
var guaranteeRates = map[int]decimal.Decimal{
	2:  decimal.RequireFromString("0.500"),
	3:  decimal.RequireFromString("0.11089"),
	4:  decimal.RequireFromString("0.05274"),
	5:  decimal.RequireFromString("0.06249"),
	6:  decimal.RequireFromString("0.05776"),
	7:  decimal.RequireFromString("0.05496"),
	8:  decimal.RequireFromString("0.05111"),
	10: decimal.RequireFromString("0.04448"),
	15: decimal.RequireFromString("0.03217"),
	20: decimal.RequireFromString("0.02517"),
}

// guaranteeRate returns the statutory guarantee rate for a useful life and
// whether the value came from the table or the fallback formula.
func guaranteeRate(usefulLife int) (decimal.Decimal, bool) {
	if rate, ok := guaranteeRates[usefulLife]; ok {
		return rate, true
	}
	n := decimal.NewFromInt(int64(usefulLife))
	return decimal.NewFromInt(1).Div(n.Mul(n)), false
}

// depreciationService manages the fixed asset register and derives
// amortization schedules. Schedule generation is a pure function; posting
// writes the results back into the ledger as balanced entries.
type depreciationService struct {
	BaseService
	fixedAssetRepo portsrepo.FixedAssetRepositoryFacade
	companyRepo    portsrepo.CompanyRepositoryFacade
	journalRepo    portsrepo.JournalRepositoryFacade
}

// NewDepreciationService creates a new DepreciationService.
func NewDepreciationService(fixedAssetRepo portsrepo.FixedAssetRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade) portssvc.DepreciationSvcFacade {
	return &depreciationService{
		fixedAssetRepo: fixedAssetRepo,
		companyRepo:    companyRepo,
		journalRepo:    journalRepo,
	}
}

var _ portssvc.DepreciationSvcFacade = (*depreciationService)(nil)

// GenerateSchedule derives the full year-by-year schedule for one asset.
// Every method terminates with the final row's end book value exactly equal
// to the residual value; the schedule never overshoots into negative book
// value. First-year month pro-ration applies to straight_line and
// declining_balance only: immediate expenses the whole depreciable amount in
// the acquisition year and bulk_3year is a flat three-way split regardless
// of the acquisition month.
func (s *depreciationService) GenerateSchedule(input domain.DepreciationInput) ([]domain.DepreciationScheduleRow, error) {
	if !input.Method.Valid() {
		return nil, fmt.Errorf("%w: depreciation method %q", apperrors.ErrUnsupportedMethod, input.Method)
	}
	if input.UsefulLife < 1 {
		return nil, apperrors.NewValidationError("useful life must be at least 1 year")
	}
	if input.AcquisitionCost <= 0 {
		return nil, apperrors.NewValidationError("acquisition cost must be positive")
	}
	if input.ResidualValue < 0 || input.ResidualValue > input.AcquisitionCost {
		return nil, apperrors.NewValidationError("residual value must be between 0 and the acquisition cost")
	}

	fyStartYear := domain.FiscalYearFor(input.AcquisitionDate, input.FiscalYearEndMonth)

	switch input.Method {
	case domain.Immediate:
		return immediateSchedule(input, fyStartYear.Label), nil
	case domain.Bulk3Year:
		return bulk3YearSchedule(input, fyStartYear.Label), nil
	case domain.StraightLine:
		return straightLineSchedule(input, fyStartYear.Label), nil
	default:
		return decliningBalanceSchedule(input, fyStartYear.Label), nil
	}
}

// fiscalLabelAfter shifts a fiscal year label by n years.
func fiscalLabelAfter(label string, n int) string {
	startYear, err := strconv.Atoi(label)
	if err != nil {
		return label
	}
	return strconv.Itoa(startYear + n)
}

// immediateSchedule expenses the full depreciable amount in the acquisition
// fiscal year (少額減価償却資産の特例).
func immediateSchedule(input domain.DepreciationInput, firstLabel string) []domain.DepreciationScheduleRow {
	amount := input.AcquisitionCost - input.ResidualValue
	return []domain.DepreciationScheduleRow{{
		Year:                    1,
		FiscalYear:              firstLabel,
		StartBookValue:          input.AcquisitionCost,
		DepreciationAmount:      amount,
		EndBookValue:            input.ResidualValue,
		AccumulatedDepreciation: amount,
	}}
}

// bulk3YearSchedule spreads the cost over three equal rows of floor(cost/3),
// with the remainder absorbed into the third row so the schedule lands on
// the residual value exactly (一括償却資産).
func bulk3YearSchedule(input domain.DepreciationInput, firstLabel string) []domain.DepreciationScheduleRow {
	annual := input.AcquisitionCost / 3
	bookValue := input.AcquisitionCost
	var accumulated int64

	rows := make([]domain.DepreciationScheduleRow, 0, 3)
	for y := 0; y < 3; y++ {
		amount := annual
		if y == 2 {
			amount = bookValue - input.ResidualValue
		}
		accumulated += amount
		rows = append(rows, domain.DepreciationScheduleRow{
			Year:                    y + 1,
			FiscalYear:              fiscalLabelAfter(firstLabel, y),
			StartBookValue:          bookValue,
			DepreciationAmount:      amount,
			EndBookValue:            bookValue - amount,
			AccumulatedDepreciation: accumulated,
		})
		bookValue -= amount
	}
	return rows
}

// straightLineAnnual is the constant annual amount of the 定額法.
func straightLineAnnual(cost, residual int64, usefulLife int) int64 {
	return (cost - residual) / int64(usefulLife)
}

// prorate scales an annual amount by whole months over twelve, flooring.
func prorate(annual int64, months int) int64 {
	return annual * int64(months) / 12
}

func straightLineSchedule(input domain.DepreciationInput, firstLabel string) []domain.DepreciationScheduleRow {
	annual := straightLineAnnual(input.AcquisitionCost, input.ResidualValue, input.UsefulLife)
	firstYearMonths := domain.MonthsInFirstYear(input.AcquisitionDate, input.FiscalYearEndMonth)

	bookValue := input.AcquisitionCost
	var accumulated int64
	var rows []domain.DepreciationScheduleRow

	// One extra iteration past the useful life absorbs rounding drift.
	for y := 0; y <= input.UsefulLife; y++ {
		if bookValue <= input.ResidualValue {
			break
		}

		months := 12
		if y == 0 {
			months = firstYearMonths
		}
		amount := prorate(annual, months)

		// The terminal row is clamped so the ending book value equals the
		// residual value exactly.
		if y == input.UsefulLife || bookValue-amount < input.ResidualValue {
			amount = bookValue - input.ResidualValue
		}
		if amount <= 0 {
			break
		}

		accumulated += amount
		rows = append(rows, domain.DepreciationScheduleRow{
			Year:                    y + 1,
			FiscalYear:              fiscalLabelAfter(firstLabel, y),
			StartBookValue:          bookValue,
			DepreciationAmount:      amount,
			EndBookValue:            bookValue - amount,
			AccumulatedDepreciation: accumulated,
		})
		bookValue -= amount
	}
	return rows
}

// decliningBalanceSchedule implements the 200% declining-balance method.
// The annual rate is min(1, 2/n). The statutory guarantee amount acts as a
// floor: the first year the candidate amount falls below it, the method
// permanently switches to straight-line over the remaining useful life.
// The switch is one-directional and never reverts.
func decliningBalanceSchedule(input domain.DepreciationInput, firstLabel string) []domain.DepreciationScheduleRow {
	n := int64(input.UsefulLife)
	rate := decimal.NewFromInt(2).Div(decimal.NewFromInt(n))
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		rate = decimal.NewFromInt(1)
	}

	gRate, _ := guaranteeRate(input.UsefulLife)
	guarantee := decimal.NewFromInt(input.AcquisitionCost).Mul(gRate)

	firstYearMonths := domain.MonthsInFirstYear(input.AcquisitionDate, input.FiscalYearEndMonth)

	bookValue := input.AcquisitionCost
	var accumulated int64
	var rows []domain.DepreciationScheduleRow
	switched := false
	var switchedAnnual int64

	for y := 0; y <= input.UsefulLife; y++ {
		if bookValue <= input.ResidualValue {
			break
		}

		months := 12
		if y == 0 {
			months = firstYearMonths
		}

		var amount int64
		if switched {
			amount = prorate(switchedAnnual, months)
		} else {
			candidate := decimal.NewFromInt(bookValue).
				Mul(rate).
				Mul(decimal.NewFromInt(int64(months))).
				Div(decimal.NewFromInt(12)).
				Floor().IntPart()

			if decimal.NewFromInt(candidate).LessThan(guarantee) {
				// Permanent switch: fixed straight-line amount over the
				// remaining useful life, from this year on.
				switched = true
				remaining := input.UsefulLife - y
				if remaining < 1 {
					remaining = 1
				}
				switchedAnnual = bookValue / int64(remaining)
				amount = prorate(switchedAnnual, months)
			} else {
				amount = candidate
			}
		}

		if y == input.UsefulLife || bookValue-amount < input.ResidualValue {
			amount = bookValue - input.ResidualValue
		}
		if amount <= 0 {
			break
		}

		accumulated += amount
		rows = append(rows, domain.DepreciationScheduleRow{
			Year:                    y + 1,
			FiscalYear:              fiscalLabelAfter(firstLabel, y),
			StartBookValue:          bookValue,
			DepreciationAmount:      amount,
			EndBookValue:            bookValue - amount,
			AccumulatedDepreciation: accumulated,
		})
		bookValue -= amount
	}
	return rows
}

// CurrentYearDepreciation looks up the fiscal year's row in the full
// generated schedule. No shortcut computation: the figure is always
// consistent with the schedule shown to users.
func (s *depreciationService) CurrentYearDepreciation(input domain.DepreciationInput, fiscalYear string) (int64, error) {
	schedule, err := s.GenerateSchedule(input)
	if err != nil {
		return 0, err
	}
	for _, row := range schedule {
		if row.FiscalYear == fiscalYear {
			return row.DepreciationAmount, nil
		}
	}
	return 0, nil
}

// depreciationInput maps an asset and company settings onto scheduler input.
func depreciationInput(asset *domain.FixedAsset, fiscalYearEndMonth int) domain.DepreciationInput {
	return domain.DepreciationInput{
		AcquisitionCost:    asset.AcquisitionCost,
		ResidualValue:      asset.ResidualValue,
		UsefulLife:         asset.UsefulLife,
		Method:             asset.DepreciationMethod,
		AcquisitionDate:    asset.AcquisitionDate,
		FiscalYearEndMonth: fiscalYearEndMonth,
	}
}

// CreateAsset registers a fixed asset. The schedule is derived up front so an
// asset that cannot be scheduled is rejected at registration time.
func (s *depreciationService) CreateAsset(ctx context.Context, companyID string, req dto.CreateFixedAssetRequest) (*domain.FixedAsset, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	acquisitionDate, err := dto.ParseDate(req.AcquisitionDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid acquisition date %q", req.AcquisitionDate))
	}

	residual := req.ResidualValue
	if residual == 0 {
		residual = 1
	}

	now := time.Now().UTC()
	asset := domain.FixedAsset{
		AssetID:               uuid.NewString(),
		CompanyID:             companyID,
		Name:                  req.Name,
		Category:              req.Category,
		AcquisitionDate:       acquisitionDate,
		AcquisitionCost:       req.AcquisitionCost,
		UsefulLife:            req.UsefulLife,
		DepreciationMethod:    domain.DepreciationMethod(req.DepreciationMethod),
		ResidualValue:         residual,
		AccountID:             req.AccountID,
		DepreciationAccountID: req.DepreciationAccountID,
		Memo:                  req.Memo,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if _, err := s.GenerateSchedule(depreciationInput(&asset, company.FiscalYearEndMonth)); err != nil {
		return nil, err
	}

	if err := s.fixedAssetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save fixed asset", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save fixed asset: %w", err)
	}

	s.LogInfo(ctx, "Fixed asset registered",
		slog.String("asset_id", asset.AssetID),
		slog.String("method", string(asset.DepreciationMethod)),
		slog.Int64("cost", asset.AcquisitionCost))
	return &asset, nil
}

// GetAsset retrieves one fixed asset.
func (s *depreciationService) GetAsset(ctx context.Context, companyID, assetID string) (*domain.FixedAsset, error) {
	return s.fixedAssetRepo.FindAssetByID(ctx, companyID, assetID)
}

// ListAssets lists every fixed asset in the register, disposed included.
func (s *depreciationService) ListAssets(ctx context.Context, companyID string) ([]domain.FixedAsset, error) {
	return s.fixedAssetRepo.ListAssets(ctx, companyID)
}

// ListAssetDepreciation returns every non-disposed asset with its full
// schedule and the given fiscal year's figures.
func (s *depreciationService) ListAssetDepreciation(ctx context.Context, companyID, fiscalYear string) ([]domain.AssetDepreciation, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	assets, err := s.fixedAssetRepo.ListAssets(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed assets: %w", err)
	}

	results := make([]domain.AssetDepreciation, 0, len(assets))
	for i := range assets {
		asset := assets[i]
		if asset.DisposalDate != nil {
			continue
		}

		input := depreciationInput(&asset, company.FiscalYearEndMonth)
		if _, fromTable := guaranteeRate(asset.UsefulLife); !fromTable && asset.DepreciationMethod == domain.DecliningBalance {
			s.LogWarn(ctx, "Useful life outside the statutory guarantee-rate table, using 1/n² fallback",
				slog.String("asset_id", asset.AssetID),
				slog.Int("useful_life", asset.UsefulLife))
		}

		schedule, err := s.GenerateSchedule(input)
		if err != nil {
			return nil, fmt.Errorf("failed to generate schedule for asset %s: %w", asset.AssetID, err)
		}

		var currentYearAmount, accumulated int64
		for _, row := range schedule {
			if row.FiscalYear == fiscalYear {
				currentYearAmount = row.DepreciationAmount
			}
			if row.FiscalYear <= fiscalYear {
				accumulated += row.DepreciationAmount
			}
		}

		results = append(results, domain.AssetDepreciation{
			Asset:                   asset,
			Schedule:                schedule,
			CurrentYearAmount:       currentYearAmount,
			AccumulatedDepreciation: accumulated,
			BookValue:               asset.AcquisitionCost - accumulated,
		})
	}

	return results, nil
}

// DisposeAsset records the disposal date of an asset; disposed assets drop
// out of future depreciation runs.
func (s *depreciationService) DisposeAsset(ctx context.Context, companyID, assetID string, disposalDate time.Time) error {
	if _, err := s.fixedAssetRepo.FindAssetByID(ctx, companyID, assetID); err != nil {
		return err
	}
	return s.fixedAssetRepo.SetDisposalDate(ctx, companyID, assetID, disposalDate, time.Now().UTC())
}

// PostDepreciation creates one balanced journal entry per asset with a
// non-zero current-year amount, dated at the fiscal year end: debit the
// depreciation expense account, credit the asset account directly. Book
// value reduction is modeled as a direct credit to the asset account; there
// is no separate accumulated-depreciation contra-account.
func (s *depreciationService) PostDepreciation(ctx context.Context, companyID, fiscalYear string) ([]string, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	fy, err := domain.FiscalYearByLabel(fiscalYear, company.FiscalYearEndMonth)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid fiscal year %q", fiscalYear))
	}

	assets, err := s.fixedAssetRepo.ListAssets(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed assets: %w", err)
	}

	now := time.Now().UTC()
	var created []string

	for i := range assets {
		asset := assets[i]
		if asset.DisposalDate != nil {
			continue
		}

		amount, err := s.CurrentYearDepreciation(depreciationInput(&asset, company.FiscalYearEndMonth), fiscalYear)
		if err != nil {
			return nil, fmt.Errorf("failed to compute depreciation for asset %s: %w", asset.AssetID, err)
		}
		if amount <= 0 {
			continue
		}

		entryID := uuid.NewString()
		entry := domain.JournalEntry{
			EntryID:     entryID,
			CompanyID:   companyID,
			Date:        fy.End,
			Description: fmt.Sprintf("減価償却費 %s", asset.Name),
			Status:      domain.Confirmed,
			Lines: []domain.JournalLine{
				{
					LineID:    uuid.NewString(),
					EntryID:   entryID,
					Side:      domain.DebitSide,
					AccountID: asset.DepreciationAccountID,
					Amount:    amount,
					SortOrder: 0,
				},
				{
					LineID:    uuid.NewString(),
					EntryID:   entryID,
					Side:      domain.CreditSide,
					AccountID: asset.AccountID,
					Amount:    amount,
					SortOrder: 1,
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
			s.LogError(ctx, err, "Failed to post depreciation entry", slog.String("asset_id", asset.AssetID))
			return nil, fmt.Errorf("failed to post depreciation entry for asset %s: %w", asset.AssetID, err)
		}
		created = append(created, entryID)
	}

	s.LogInfo(ctx, "Depreciation posted",
		slog.String("company_id", companyID),
		slog.String("fiscal_year", fiscalYear),
		slog.Int("entries_created", len(created)))
	return created, nil
}
