package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/RogerFilm/accounting/internal/core/domain"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/platform/classification"
)

// netIncomeLabel is the synthetic equity line injected into the balance sheet.
const netIncomeLabel = "当期純利益"

// reportingService derives the financial statements. Every statement is a
// pure transform of the aggregation output; re-running over the same ledger
// snapshot always yields the identical report.
type reportingService struct {
	BaseService
	aggregationSvc portssvc.AggregationSvcFacade
	plTable        *classification.Table
}

// NewReportingService creates a new ReportingService. table may be nil, in
// which case the built-in classification for the seed chart is used.
func NewReportingService(aggregationSvc portssvc.AggregationSvcFacade, table *classification.Table) portssvc.ReportingSvcFacade {
	if table == nil {
		table = classification.Default()
	}
	return &reportingService{aggregationSvc: aggregationSvc, plTable: table}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance lists every account with activity, its side totals, and its
// net balance split into exactly one of the debit/credit balance columns.
func (s *reportingService) TrialBalance(ctx context.Context, companyID string, from, to time.Time) (*domain.TrialBalance, error) {
	balances, err := s.aggregationSvc.AggregateByAccount(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	report := deriveTrialBalance(balances)

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("company_id", companyID),
		slog.Int("row_count", len(report.Rows)))
	return report, nil
}

func deriveTrialBalance(balances []domain.AccountBalance) *domain.TrialBalance {
	active := make([]domain.AccountBalance, 0, len(balances))
	for _, b := range balances {
		if b.DebitTotal != 0 || b.CreditTotal != 0 {
			active = append(active, b)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].AccountCode < active[j].AccountCode })

	report := &domain.TrialBalance{Rows: make([]domain.TrialBalanceRow, 0, len(active))}
	for _, b := range active {
		row := domain.TrialBalanceRow{
			AccountCode: b.AccountCode,
			AccountName: b.AccountName,
			Category:    b.Category,
			DebitTotal:  b.DebitTotal,
			CreditTotal: b.CreditTotal,
		}

		// A negative balance flips into the opposite column as an absolute
		// value, surfacing abnormal positions instead of hiding them.
		switch {
		case b.Balance > 0 && b.Category.IsDebitNormal():
			row.DebitBalance = b.Balance
		case b.Balance > 0:
			row.CreditBalance = b.Balance
		case b.Balance < 0 && b.Category.IsDebitNormal():
			row.CreditBalance = -b.Balance
		case b.Balance < 0:
			row.DebitBalance = -b.Balance
		}

		report.Rows = append(report.Rows, row)
		report.TotalDebit += row.DebitTotal
		report.TotalCredit += row.CreditTotal
		report.TotalDebitBalance += row.DebitBalance
		report.TotalCreditBalance += row.CreditBalance
	}
	return report
}

// BalanceSheet groups balances into the three sections and injects the
// period's net income into equity as 当期純利益. Without the injection the
// two sides would differ by exactly the period's net income.
func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, from, to time.Time) (*domain.BalanceSheet, error) {
	balances, err := s.aggregationSvc.AggregateByAccount(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	report := deriveBalanceSheet(balances)

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("company_id", companyID),
		slog.Int64("total_assets", report.TotalAssets),
		slog.Int64("net_income", report.NetIncome))
	return report, nil
}

func deriveBalanceSheet(balances []domain.AccountBalance) *domain.BalanceSheet {
	assets := buildCategorySection(balances, domain.Asset, "資産の部")
	liabilities := buildCategorySection(balances, domain.Liability, "負債の部")
	equity := buildCategorySection(balances, domain.Equity, "純資産の部")

	var revenue, expense int64
	for _, b := range balances {
		switch b.Category {
		case domain.Revenue:
			revenue += b.Balance
		case domain.Expense:
			expense += b.Balance
		}
	}
	netIncome := revenue - expense

	if netIncome != 0 {
		equity.Items = append(equity.Items, domain.ReportItem{Name: netIncomeLabel, Amount: netIncome})
		equity.Total += netIncome
	}

	return &domain.BalanceSheet{
		Assets:                    assets,
		Liabilities:               liabilities,
		Equity:                    equity,
		TotalAssets:               assets.Total,
		TotalLiabilities:          liabilities.Total,
		TotalEquity:               equity.Total,
		TotalLiabilitiesAndEquity: liabilities.Total + equity.Total,
		NetIncome:                 netIncome,
	}
}

func buildCategorySection(balances []domain.AccountBalance, category domain.AccountCategory, label string) domain.ReportSection {
	section := domain.ReportSection{Label: label}
	for _, b := range balances {
		if b.Category != category || b.Balance == 0 {
			continue
		}
		section.Items = append(section.Items, domain.ReportItem{Code: b.AccountCode, Name: b.AccountName, Amount: b.Balance})
		section.Total += b.Balance
	}
	sort.Slice(section.Items, func(i, j int) bool { return section.Items[i].Code < section.Items[j].Code })
	return section
}

// ProfitLoss classifies revenue/expense accounts into buckets via the
// classification table and folds the chain of subtotals.
func (s *reportingService) ProfitLoss(ctx context.Context, companyID string, from, to time.Time) (*domain.ProfitLoss, error) {
	balances, err := s.aggregationSvc.AggregateByAccount(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	report := deriveProfitLoss(balances, s.plTable)

	s.LogInfo(ctx, "Profit and loss generated",
		slog.String("company_id", companyID),
		slog.Int64("net_income", report.NetIncome))
	return report, nil
}

func deriveProfitLoss(balances []domain.AccountBalance, table *classification.Table) *domain.ProfitLoss {
	sections := map[classification.Bucket]*domain.ReportSection{
		classification.Sales:               {Label: "売上高"},
		classification.CostOfSales:         {Label: "売上原価"},
		classification.SellingAndAdmin:     {Label: "販売費及び一般管理費"},
		classification.NonOperatingIncome:  {Label: "営業外収益"},
		classification.NonOperatingExpense: {Label: "営業外費用"},
		classification.ExtraordinaryGain:   {Label: "特別利益"},
		classification.ExtraordinaryLoss:   {Label: "特別損失"},
		classification.IncomeTax:           {Label: "法人税等"},
	}

	for _, b := range balances {
		if b.Balance == 0 {
			continue
		}
		bucket := table.Classify(b.AccountCode, b.Category)
		section, ok := sections[bucket]
		if !ok {
			continue
		}
		section.Items = append(section.Items, domain.ReportItem{Code: b.AccountCode, Name: b.AccountName, Amount: b.Balance})
		section.Total += b.Balance
	}
	for _, section := range sections {
		items := section.Items
		sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	}

	report := &domain.ProfitLoss{
		Revenue:             *sections[classification.Sales],
		CostOfSales:         *sections[classification.CostOfSales],
		SellingAndAdmin:     *sections[classification.SellingAndAdmin],
		NonOperatingIncome:  *sections[classification.NonOperatingIncome],
		NonOperatingExpense: *sections[classification.NonOperatingExpense],
		ExtraordinaryGain:   *sections[classification.ExtraordinaryGain],
		ExtraordinaryLoss:   *sections[classification.ExtraordinaryLoss],
	}

	report.GrossProfit = report.Revenue.Total - report.CostOfSales.Total
	report.OperatingIncome = report.GrossProfit - report.SellingAndAdmin.Total
	report.OrdinaryIncome = report.OperatingIncome + report.NonOperatingIncome.Total - report.NonOperatingExpense.Total
	report.IncomeBeforeTax = report.OrdinaryIncome + report.ExtraordinaryGain.Total - report.ExtraordinaryLoss.Total
	report.IncomeTax = sections[classification.IncomeTax].Total
	report.NetIncome = report.IncomeBeforeTax - report.IncomeTax

	return report
}

// MonthlyTrend summarizes revenue, expense and net result per calendar month.
func (s *reportingService) MonthlyTrend(ctx context.Context, companyID string, from, to time.Time) (*domain.MonthlyTrend, error) {
	monthly, err := s.aggregationSvc.AggregateByMonth(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	trend := &domain.MonthlyTrend{Rows: make([]domain.MonthlyTrendRow, len(monthly))}
	for i, m := range monthly {
		row := domain.MonthlyTrendRow{Month: m.Month}
		for _, b := range m.Balances {
			switch b.Category {
			case domain.Revenue:
				row.Revenue += b.Balance
			case domain.Expense:
				row.Expense += b.Balance
			}
		}
		row.Net = row.Revenue - row.Expense
		trend.Rows[i] = row
	}

	return trend, nil
}
