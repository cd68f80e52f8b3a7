package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RogerFilm/accounting/internal/apperrors"
	"github.com/RogerFilm/accounting/internal/core/domain"
	portsrepo "github.com/RogerFilm/accounting/internal/core/ports/repositories"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
)

// deemedPurchaseRates are the statutory みなし仕入率 per business type for
// the simplified taxation method.
var deemedPurchaseRates = map[int]decimal.Decimal{
	1: decimal.RequireFromString("0.9"), // 第1種（卸売業）
	2: decimal.RequireFromString("0.8"), // 第2種（小売業）
	3: decimal.RequireFromString("0.7"), // 第3種（製造業等）
	4: decimal.RequireFromString("0.6"), // 第4種（その他）
	5: decimal.RequireFromString("0.5"), // 第5種（サービス業等）
	6: decimal.RequireFromString("0.4"), // 第6種（不動産業）
}

// taxService derives consumption tax payable from tax-tagged confirmed lines.
type taxService struct {
	BaseService
	journalRepo     portsrepo.JournalRepositoryFacade
	taxCategoryRepo portsrepo.TaxCategoryRepositoryFacade
	companyRepo     portsrepo.CompanyRepositoryFacade
}

// NewTaxService creates a new TaxService.
func NewTaxService(journalRepo portsrepo.JournalRepositoryFacade, taxCategoryRepo portsrepo.TaxCategoryRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade) portssvc.TaxSvcFacade {
	return &taxService{journalRepo: journalRepo, taxCategoryRepo: taxCategoryRepo, companyRepo: companyRepo}
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

type rateKey struct {
	rate      int
	isReduced bool
}

type rateBucket struct {
	taxable     int64
	recordedTax int64
}

// CalculateConsumptionTax buckets tax-categorized confirmed lines by
// (rate, reduced-rate flag) and derives the payable under the requested
// method. An empty method resolves to the company's configured taxMethod.
// The payable may be negative (refund position); it is never clamped.
func (s *taxService) CalculateConsumptionTax(ctx context.Context, companyID string, from, to time.Time, method domain.TaxMethod, businessType int) (*domain.ConsumptionTaxResult, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidRange
	}
	if method == "" {
		company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		method = company.TaxMethod
		if method == "" {
			method = domain.StandardMethod
		}
	}
	if method != domain.StandardMethod && method != domain.SimplifiedMethod {
		return nil, fmt.Errorf("%w: tax method %q", apperrors.ErrUnsupportedMethod, method)
	}
	var deemedRate decimal.Decimal
	if method == domain.SimplifiedMethod {
		var ok bool
		deemedRate, ok = deemedPurchaseRates[businessType]
		if !ok {
			return nil, fmt.Errorf("%w: %d", apperrors.ErrUnknownBusinessType, businessType)
		}
	}

	confirmed := domain.Confirmed
	entries, err := s.journalRepo.ListEntries(ctx, companyID, from, to, &confirmed)
	if err != nil {
		s.LogError(ctx, err, "Failed to list confirmed entries for tax calculation", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list confirmed entries: %w", err)
	}

	taxCategories, err := s.taxCategoryRepo.ListTaxCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax categories: %w", err)
	}
	categoryByID := make(map[string]domain.TaxCategory, len(taxCategories))
	for _, tc := range taxCategories {
		categoryByID[tc.TaxCategoryID] = tc
	}

	salesBuckets := make(map[rateKey]*rateBucket)
	purchaseBuckets := make(map[rateKey]*rateBucket)

	for i := range entries {
		for _, line := range entries[i].Lines {
			if line.TaxCategoryID == "" {
				continue
			}
			tc, ok := categoryByID[line.TaxCategoryID]
			if !ok || tc.Rate == 0 {
				continue
			}

			var buckets map[rateKey]*rateBucket
			switch tc.Type {
			case domain.TaxableSales:
				buckets = salesBuckets
			case domain.TaxablePurchase:
				buckets = purchaseBuckets
			default:
				continue
			}

			key := rateKey{rate: tc.Rate, isReduced: tc.IsReduced}
			bucket := buckets[key]
			if bucket == nil {
				bucket = &rateBucket{}
				buckets[key] = bucket
			}
			bucket.taxable += line.Amount
			bucket.recordedTax += line.TaxAmount
		}
	}

	salesBreakdown, totalTaxableSales, totalSalesTax := resolveBuckets(salesBuckets)
	purchaseBreakdown, totalTaxablePurchases, totalPurchaseTax := resolveBuckets(purchaseBuckets)

	result := &domain.ConsumptionTaxResult{
		Method:                method,
		SalesBreakdown:        salesBreakdown,
		TotalTaxableSales:     totalTaxableSales,
		TotalSalesTax:         totalSalesTax,
		PurchaseBreakdown:     purchaseBreakdown,
		TotalTaxablePurchases: totalTaxablePurchases,
		TotalPurchaseTax:      totalPurchaseTax,
	}

	if method == domain.SimplifiedMethod {
		// Purchase-side ledger data is not consulted under this method (by law).
		deemedTax := decimal.NewFromInt(totalSalesTax).Mul(deemedRate).Floor().IntPart()
		result.BusinessType = businessType
		result.DeemedPurchaseRate = deemedRate.String()
		result.DeemedPurchaseTax = deemedTax
		result.TaxPayable = totalSalesTax - deemedTax
	} else {
		result.TaxPayable = totalSalesTax - totalPurchaseTax
	}

	// Statutory 78/22 split of the 10%/8% rate regime. Floor (toward minus
	// infinity) keeps the split consistent for refund positions too.
	result.NationalTax = decimal.NewFromInt(result.TaxPayable).
		Mul(decimal.NewFromInt(78)).
		Div(decimal.NewFromInt(100)).
		Floor().IntPart()
	result.LocalTax = result.TaxPayable - result.NationalTax

	s.LogInfo(ctx, "Consumption tax calculated",
		slog.String("company_id", companyID),
		slog.String("method", string(method)),
		slog.Int64("tax_payable", result.TaxPayable))
	return result, nil
}

// resolveBuckets turns the per-rate accumulators into sorted breakdowns.
// Recorded line tax amounts are the source of truth for a bucket; only a
// bucket with no recorded tax at all falls back to the tax-inclusive formula
// floor(taxable × rate / (100 + rate)). The two paths never blend within a
// bucket, so each figure stays reproducible from the bucket totals alone.
func resolveBuckets(buckets map[rateKey]*rateBucket) ([]domain.TaxBreakdown, int64, int64) {
	breakdowns := make([]domain.TaxBreakdown, 0, len(buckets))
	var totalTaxable, totalTax int64

	for key, bucket := range buckets {
		tax := bucket.recordedTax
		if tax == 0 && bucket.taxable > 0 {
			tax = bucket.taxable * int64(key.rate) / int64(100+key.rate)
		}
		breakdowns = append(breakdowns, domain.TaxBreakdown{
			Rate:          key.rate,
			IsReduced:     key.isReduced,
			TaxableAmount: bucket.taxable,
			TaxAmount:     tax,
		})
		totalTaxable += bucket.taxable
		totalTax += tax
	}

	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].Rate != breakdowns[j].Rate {
			return breakdowns[i].Rate > breakdowns[j].Rate
		}
		return !breakdowns[i].IsReduced && breakdowns[j].IsReduced
	})

	return breakdowns, totalTaxable, totalTax
}
