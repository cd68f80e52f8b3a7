package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/RogerFilm/accounting/internal/apperrors"
	"github.com/RogerFilm/accounting/internal/core/domain"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/core/services"
)

type TaxServiceTestSuite struct {
	suite.Suite
	mockJournalRepo     *MockJournalRepository
	mockTaxCategoryRepo *MockTaxCategoryRepository
	mockCompanyRepo     *MockCompanyRepository
	service             portssvc.TaxSvcFacade
	ctx                 context.Context
	from, to            time.Time
}

func (s *TaxServiceTestSuite) SetupTest() {
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockTaxCategoryRepo = new(MockTaxCategoryRepository)
	s.mockCompanyRepo = new(MockCompanyRepository)
	s.service = services.NewTaxService(s.mockJournalRepo, s.mockTaxCategoryRepo, s.mockCompanyRepo)
	s.ctx = context.Background()
	s.from = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	s.to = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
}

func taxCategories() []domain.TaxCategory {
	return []domain.TaxCategory{
		{TaxCategoryID: "tc-sales-10", Code: "sales_10", Rate: 10, Type: domain.TaxableSales},
		{TaxCategoryID: "tc-sales-8r", Code: "sales_8r", Rate: 8, Type: domain.TaxableSales, IsReduced: true},
		{TaxCategoryID: "tc-purchase-10", Code: "purchase_10", Rate: 10, Type: domain.TaxablePurchase},
		{TaxCategoryID: "tc-exempt", Code: "exempt", Rate: 0, Type: domain.Exempt},
	}
}

func taxedEntry(id string, lines ...domain.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:   id,
		CompanyID: testCompanyID,
		Date:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:    domain.Confirmed,
		Lines:     lines,
	}
}

func (s *TaxServiceTestSuite) expectLedger(entries ...domain.JournalEntry) {
	confirmed := domain.Confirmed
	s.mockJournalRepo.On("ListEntries", s.ctx, testCompanyID, s.from, s.to, &confirmed).
		Return(entries, nil)
	s.mockTaxCategoryRepo.On("ListTaxCategories", s.ctx).Return(taxCategories(), nil)
}

func (s *TaxServiceTestSuite) TestStandard_RecordedTaxWins() {
	s.expectLedger(
		taxedEntry("e-1",
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 11000},
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 11000, TaxCategoryID: "tc-sales-10", TaxAmount: 1000},
		),
		taxedEntry("e-2",
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-supplies", Amount: 5500, TaxCategoryID: "tc-purchase-10", TaxAmount: 500},
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-cash", Amount: 5500},
		),
	)

	result, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.StandardMethod, 0)

	s.Require().NoError(err)
	s.Equal(int64(11000), result.TotalTaxableSales)
	s.Equal(int64(1000), result.TotalSalesTax)
	s.Equal(int64(5500), result.TotalTaxablePurchases)
	s.Equal(int64(500), result.TotalPurchaseTax)
	s.Equal(int64(500), result.TaxPayable)
	s.Equal(int64(390), result.NationalTax) // floor(500 * 78 / 100)
	s.Equal(int64(110), result.LocalTax)
}

func (s *TaxServiceTestSuite) TestStandard_FormulaFallbackWhenNoRecordedTax() {
	s.expectLedger(
		taxedEntry("e-1",
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 11000},
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 11000, TaxCategoryID: "tc-sales-10"},
		),
	)

	result, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.StandardMethod, 0)

	s.Require().NoError(err)
	// Tax-inclusive extraction: floor(11000 * 10 / 110).
	s.Equal(int64(1000), result.TotalSalesTax)
	s.Equal(int64(1000), result.TaxPayable)
}

func (s *TaxServiceTestSuite) TestStandard_NegativePayableIsNotClamped() {
	s.expectLedger(
		taxedEntry("e-1",
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 1045, TaxCategoryID: "tc-sales-10", TaxAmount: 95},
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 1045},
		),
		taxedEntry("e-2",
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-supplies", Amount: 11000, TaxCategoryID: "tc-purchase-10", TaxAmount: 1000},
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-cash", Amount: 11000},
		),
	)

	result, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.StandardMethod, 0)

	s.Require().NoError(err)
	s.Equal(int64(-905), result.TaxPayable)
	// Floor toward minus infinity: -905 * 78 / 100 = -705.9 rounds to -706.
	s.Equal(int64(-706), result.NationalTax)
	s.Equal(int64(-199), result.LocalTax)
	s.Equal(result.TaxPayable, result.NationalTax+result.LocalTax)
}

func (s *TaxServiceTestSuite) TestStandard_BreakdownSortedRateDescending() {
	s.expectLedger(
		taxedEntry("e-1",
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 2160, TaxCategoryID: "tc-sales-8r", TaxAmount: 160},
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 2160},
		),
		taxedEntry("e-2",
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 3300, TaxCategoryID: "tc-sales-10", TaxAmount: 300},
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 3300},
		),
	)

	result, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.StandardMethod, 0)

	s.Require().NoError(err)
	s.Require().Len(result.SalesBreakdown, 2)
	s.Equal(10, result.SalesBreakdown[0].Rate)
	s.False(result.SalesBreakdown[0].IsReduced)
	s.Equal(8, result.SalesBreakdown[1].Rate)
	s.True(result.SalesBreakdown[1].IsReduced)
	s.Equal(int64(460), result.TotalSalesTax)
}

func (s *TaxServiceTestSuite) TestStandard_ZeroRateCategoriesIgnored() {
	s.expectLedger(
		taxedEntry("e-1",
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 5000, TaxCategoryID: "tc-exempt"},
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 5000},
		),
	)

	result, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.StandardMethod, 0)

	s.Require().NoError(err)
	s.Empty(result.SalesBreakdown)
	s.Zero(result.TaxPayable)
}

func (s *TaxServiceTestSuite) TestSimplified_DeemedPurchaseIgnoresLedgerPurchases() {
	s.expectLedger(
		taxedEntry("e-1",
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 11000, TaxCategoryID: "tc-sales-10", TaxAmount: 1000},
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 11000},
		),
		taxedEntry("e-2",
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-supplies", Amount: 8800, TaxCategoryID: "tc-purchase-10", TaxAmount: 800},
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-cash", Amount: 8800},
		),
	)

	// 第5種 service business: deemed purchase rate 0.5.
	result, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.SimplifiedMethod, 5)

	s.Require().NoError(err)
	s.Equal(5, result.BusinessType)
	s.Equal("0.5", result.DeemedPurchaseRate)
	s.Equal(int64(500), result.DeemedPurchaseTax)
	// Actual purchase tax of 800 plays no part in the payable.
	s.Equal(int64(500), result.TaxPayable)
}

func (s *TaxServiceTestSuite) TestSimplified_DeemedTaxIsFloored() {
	s.expectLedger(
		taxedEntry("e-1",
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 10989, TaxCategoryID: "tc-sales-10", TaxAmount: 999},
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 10989},
		),
	)

	// 第1種 wholesale: floor(999 * 0.9) = 899.
	result, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.SimplifiedMethod, 1)

	s.Require().NoError(err)
	s.Equal(int64(899), result.DeemedPurchaseTax)
	s.Equal(int64(100), result.TaxPayable)
}

func (s *TaxServiceTestSuite) TestEmptyMethodUsesCompanyTaxMethod() {
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, testCompanyID).Return(&domain.Company{
		CompanyID:          testCompanyID,
		FiscalYearEndMonth: 3,
		TaxMethod:          domain.SimplifiedMethod,
	}, nil)
	s.expectLedger(
		taxedEntry("e-1",
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 11000, TaxCategoryID: "tc-sales-10", TaxAmount: 1000},
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 11000},
		),
	)

	result, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, "", 5)

	s.Require().NoError(err)
	// The company is configured for 簡易課税, so the deemed purchase path runs.
	s.Equal(domain.SimplifiedMethod, result.Method)
	s.Equal(int64(500), result.DeemedPurchaseTax)
	s.Equal(int64(500), result.TaxPayable)
	s.mockCompanyRepo.AssertExpectations(s.T())
}

func (s *TaxServiceTestSuite) TestExplicitMethodOverridesCompanyDefault() {
	s.expectLedger(
		taxedEntry("e-1",
			domain.JournalLine{Side: domain.CreditSide, AccountID: "acc-sales", Amount: 11000, TaxCategoryID: "tc-sales-10", TaxAmount: 1000},
			domain.JournalLine{Side: domain.DebitSide, AccountID: "acc-cash", Amount: 11000},
		),
	)

	result, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.StandardMethod, 0)

	s.Require().NoError(err)
	s.Equal(domain.StandardMethod, result.Method)
	s.mockCompanyRepo.AssertNotCalled(s.T(), "FindCompanyByID")
}

func (s *TaxServiceTestSuite) TestSimplified_UnknownBusinessType() {
	_, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.SimplifiedMethod, 7)

	s.Require().ErrorIs(err, apperrors.ErrUnknownBusinessType)
	s.mockJournalRepo.AssertNotCalled(s.T(), "ListEntries")
}

func (s *TaxServiceTestSuite) TestUnsupportedMethod() {
	_, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.from, s.to, domain.TaxMethod("cash"), 0)

	s.Require().ErrorIs(err, apperrors.ErrUnsupportedMethod)
}

func (s *TaxServiceTestSuite) TestInvalidRange() {
	_, err := s.service.CalculateConsumptionTax(s.ctx, testCompanyID, s.to, s.from, domain.StandardMethod, 0)

	s.Require().ErrorIs(err, apperrors.ErrInvalidRange)
}

func TestTaxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaxServiceTestSuite))
}
