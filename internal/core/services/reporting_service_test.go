package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/RogerFilm/accounting/internal/core/domain"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAggregation *MockAggregationService
	service         portssvc.ReportingSvcFacade
	ctx             context.Context
	from, to        time.Time
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockAggregation = new(MockAggregationService)
	s.service = services.NewReportingService(s.mockAggregation, nil)
	s.ctx = context.Background()
	s.from = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	s.to = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
}

func balance(code, name string, category domain.AccountCategory, debit, credit int64) domain.AccountBalance {
	var bal int64
	if category.IsDebitNormal() {
		bal = debit - credit
	} else {
		bal = credit - debit
	}
	return domain.AccountBalance{
		AccountID:   "acc-" + code,
		AccountCode: code,
		AccountName: name,
		Category:    category,
		DebitTotal:  debit,
		CreditTotal: credit,
		Balance:     bal,
	}
}

func (s *ReportingServiceTestSuite) TestTrialBalance_SingleSale() {
	s.mockAggregation.On("AggregateByAccount", s.ctx, testCompanyID, s.from, s.to).
		Return([]domain.AccountBalance{
			balance("1100", "現金", domain.Asset, 10000, 0),
			balance("4100", "売上高", domain.Revenue, 0, 10000),
			balance("5320", "消耗品費", domain.Expense, 0, 0),
		}, nil)

	tb, err := s.service.TrialBalance(s.ctx, testCompanyID, s.from, s.to)

	s.Require().NoError(err)
	// The zero-activity account is excluded.
	s.Require().Len(tb.Rows, 2)
	s.Equal("1100", tb.Rows[0].AccountCode)
	s.Equal(int64(10000), tb.Rows[0].DebitBalance)
	s.Zero(tb.Rows[0].CreditBalance)
	s.Equal("4100", tb.Rows[1].AccountCode)
	s.Equal(int64(10000), tb.Rows[1].CreditBalance)

	s.Equal(tb.TotalDebit, tb.TotalCredit)
	s.Equal(tb.TotalDebitBalance, tb.TotalCreditBalance)
}

func (s *ReportingServiceTestSuite) TestTrialBalance_NegativeBalanceFlipsColumn() {
	// Asset in a credit position lands in the credit column as an absolute value.
	s.mockAggregation.On("AggregateByAccount", s.ctx, testCompanyID, s.from, s.to).
		Return([]domain.AccountBalance{
			balance("1100", "現金", domain.Asset, 1000, 4000),
			balance("5320", "消耗品費", domain.Expense, 3000, 0),
		}, nil)

	tb, err := s.service.TrialBalance(s.ctx, testCompanyID, s.from, s.to)

	s.Require().NoError(err)
	s.Equal(int64(3000), tb.Rows[0].CreditBalance)
	s.Zero(tb.Rows[0].DebitBalance)
	s.Equal(tb.TotalDebitBalance, tb.TotalCreditBalance)
}

func (s *ReportingServiceTestSuite) TestBalanceSheet_NetIncomeBalancesTheSides() {
	s.mockAggregation.On("AggregateByAccount", s.ctx, testCompanyID, s.from, s.to).
		Return([]domain.AccountBalance{
			balance("1100", "現金", domain.Asset, 50000, 10000),
			balance("2100", "買掛金", domain.Liability, 0, 5000),
			balance("3100", "資本金", domain.Equity, 0, 20000),
			balance("4100", "売上高", domain.Revenue, 0, 30000),
			balance("5320", "消耗品費", domain.Expense, 15000, 0),
		}, nil)

	bs, err := s.service.BalanceSheet(s.ctx, testCompanyID, s.from, s.to)

	s.Require().NoError(err)
	s.Equal(int64(15000), bs.NetIncome)
	s.Equal(bs.TotalAssets, bs.TotalLiabilitiesAndEquity)

	// The injected equity line carries the 当期純利益 label.
	last := bs.Equity.Items[len(bs.Equity.Items)-1]
	s.Equal("当期純利益", last.Name)
	s.Equal(int64(15000), last.Amount)
}

func (s *ReportingServiceTestSuite) TestBalanceSheet_EmptyLedger() {
	s.mockAggregation.On("AggregateByAccount", s.ctx, testCompanyID, s.from, s.to).
		Return([]domain.AccountBalance{
			balance("1100", "現金", domain.Asset, 0, 0),
		}, nil)

	bs, err := s.service.BalanceSheet(s.ctx, testCompanyID, s.from, s.to)

	s.Require().NoError(err)
	s.Zero(bs.TotalAssets)
	s.Zero(bs.TotalLiabilitiesAndEquity)
	s.Zero(bs.NetIncome)
	s.Empty(bs.Equity.Items)
}

func (s *ReportingServiceTestSuite) TestProfitLoss_SubtotalChain() {
	s.mockAggregation.On("AggregateByAccount", s.ctx, testCompanyID, s.from, s.to).
		Return([]domain.AccountBalance{
			balance("4100", "売上高", domain.Revenue, 0, 100000),
			balance("5110", "仕入高", domain.Expense, 40000, 0),
			balance("5320", "消耗品費", domain.Expense, 10000, 0),
			balance("4200", "受取利息", domain.Revenue, 0, 500),
			balance("5500", "支払利息", domain.Expense, 1500, 0),
			balance("4500", "固定資産売却益", domain.Revenue, 0, 2000),
			balance("5600", "固定資産売却損", domain.Expense, 3000, 0),
			balance("5700", "法人税等", domain.Expense, 12000, 0),
		}, nil)

	pl, err := s.service.ProfitLoss(s.ctx, testCompanyID, s.from, s.to)

	s.Require().NoError(err)
	s.Equal(int64(100000), pl.Revenue.Total)
	s.Equal(int64(40000), pl.CostOfSales.Total)
	s.Equal(int64(60000), pl.GrossProfit)
	s.Equal(int64(10000), pl.SellingAndAdmin.Total)
	s.Equal(int64(50000), pl.OperatingIncome)
	s.Equal(int64(49000), pl.OrdinaryIncome)  // +500 −1500
	s.Equal(int64(48000), pl.IncomeBeforeTax) // +2000 −3000
	s.Equal(int64(12000), pl.IncomeTax)
	s.Equal(int64(36000), pl.NetIncome)
}

func (s *ReportingServiceTestSuite) TestProfitLoss_MatchesDirectNetIncome() {
	balances := []domain.AccountBalance{
		balance("4100", "売上高", domain.Revenue, 0, 80000),
		balance("5110", "仕入高", domain.Expense, 30000, 0),
		balance("5700", "法人税等", domain.Expense, 5000, 0),
	}
	s.mockAggregation.On("AggregateByAccount", s.ctx, testCompanyID, s.from, s.to).
		Return(balances, nil)

	pl, err := s.service.ProfitLoss(s.ctx, testCompanyID, s.from, s.to)

	s.Require().NoError(err)
	var direct int64
	for _, b := range balances {
		if b.Category == domain.Revenue {
			direct += b.Balance
		} else if b.Category == domain.Expense {
			direct -= b.Balance
		}
	}
	s.Equal(direct, pl.NetIncome)
}

func (s *ReportingServiceTestSuite) TestMonthlyTrend() {
	s.mockAggregation.On("AggregateByMonth", s.ctx, testCompanyID, s.from, s.to).
		Return([]domain.MonthlyBalances{
			{Month: "2024/04", Balances: []domain.AccountBalance{
				balance("4100", "売上高", domain.Revenue, 0, 9000),
				balance("5320", "消耗品費", domain.Expense, 4000, 0),
			}},
			{Month: "2024/05", Balances: []domain.AccountBalance{}},
		}, nil)

	trend, err := s.service.MonthlyTrend(s.ctx, testCompanyID, s.from, s.to)

	s.Require().NoError(err)
	s.Require().Len(trend.Rows, 2)
	s.Equal(int64(9000), trend.Rows[0].Revenue)
	s.Equal(int64(4000), trend.Rows[0].Expense)
	s.Equal(int64(5000), trend.Rows[0].Net)
	s.Zero(trend.Rows[1].Net)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
