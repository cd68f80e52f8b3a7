package domain

// AccountBalance is one account's aggregated activity over a date range.
// Balance is signed relative to the account's normal side: positive means the
// account sits on its normal side, negative means it is in an abnormal
// position (e.g. a liability with a debit balance). Abnormal positions are
// rendered faithfully by every report, never clamped.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Category    AccountCategory `json:"category"`
	DebitTotal  int64           `json:"debitTotal"`
	CreditTotal int64           `json:"creditTotal"`
	Balance     int64           `json:"balance"`
}

// MonthlyBalances is one calendar month's independent aggregation.
type MonthlyBalances struct {
	Month    string           `json:"month"` // "2024/04"
	Balances []AccountBalance `json:"balances"`
}

// TrialBalanceRow is one account row of a trial balance (試算表). The signed
// balance is split into exactly one of DebitBalance/CreditBalance; a negative
// balance lands in the column opposite the account's normal side as an
// absolute value, surfacing bookkeeping anomalies instead of hiding them.
type TrialBalanceRow struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	Category      AccountCategory `json:"category"`
	DebitTotal    int64           `json:"debitTotal"`
	CreditTotal   int64           `json:"creditTotal"`
	DebitBalance  int64           `json:"debitBalance"`
	CreditBalance int64           `json:"creditBalance"`
}

// TrialBalance lists every account with activity in the period.
// TotalDebitBalance == TotalCreditBalance for any well-formed ledger.
type TrialBalance struct {
	Rows               []TrialBalanceRow `json:"rows"`
	TotalDebit         int64             `json:"totalDebit"`
	TotalCredit        int64             `json:"totalCredit"`
	TotalDebitBalance  int64             `json:"totalDebitBalance"`
	TotalCreditBalance int64             `json:"totalCreditBalance"`
}

// ReportItem is one account line within a report section.
type ReportItem struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// ReportSection is a labeled group of report items with a subtotal.
type ReportSection struct {
	Label string       `json:"label"`
	Items []ReportItem `json:"items"`
	Total int64        `json:"total"`
}

// BalanceSheet is a 貸借対照表. Net income for the period is injected into
// the equity section as 当期純利益, which is what makes
// TotalAssets == TotalLiabilitiesAndEquity hold.
type BalanceSheet struct {
	Assets                    ReportSection `json:"assets"`
	Liabilities               ReportSection `json:"liabilities"`
	Equity                    ReportSection `json:"equity"`
	TotalAssets               int64         `json:"totalAssets"`
	TotalLiabilities          int64         `json:"totalLiabilities"`
	TotalEquity               int64         `json:"totalEquity"`
	TotalLiabilitiesAndEquity int64         `json:"totalLiabilitiesAndEquity"`
	NetIncome                 int64         `json:"netIncome"`
}

// ProfitLoss is a 損益計算書 with its chain of subtotals. Each subtotal is a
// flat arithmetic fold over the section totals above it.
type ProfitLoss struct {
	Revenue             ReportSection `json:"revenue"`             // 売上高
	CostOfSales         ReportSection `json:"costOfSales"`         // 売上原価
	GrossProfit         int64         `json:"grossProfit"`         // 売上総利益
	SellingAndAdmin     ReportSection `json:"sellingAndAdmin"`     // 販売費及び一般管理費
	OperatingIncome     int64         `json:"operatingIncome"`     // 営業利益
	NonOperatingIncome  ReportSection `json:"nonOperatingIncome"`  // 営業外収益
	NonOperatingExpense ReportSection `json:"nonOperatingExpense"` // 営業外費用
	OrdinaryIncome      int64         `json:"ordinaryIncome"`      // 経常利益
	ExtraordinaryGain   ReportSection `json:"extraordinaryGain"`   // 特別利益
	ExtraordinaryLoss   ReportSection `json:"extraordinaryLoss"`   // 特別損失
	IncomeBeforeTax     int64         `json:"incomeBeforeTax"`     // 税引前当期純利益
	IncomeTax           int64         `json:"incomeTax"`           // 法人税等
	NetIncome           int64         `json:"netIncome"`           // 当期純利益
}

// MonthlyTrendRow summarizes one month's revenue, expense and net result.
type MonthlyTrendRow struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
}

// MonthlyTrend is the month-by-month revenue/expense series for a range.
type MonthlyTrend struct {
	Rows []MonthlyTrendRow `json:"rows"`
}
