// Package export renders financial statements as CSV for download. Output is
// UTF-8 with a BOM so Japanese spreadsheet software opens it correctly.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/RogerFilm/accounting/internal/core/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV serializes the records to a BOM-prefixed CSV byte slice.
func WriteCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func yen(v int64) string {
	return strconv.FormatInt(v, 10)
}

// TrialBalanceRecords projects a trial balance onto CSV rows with a header
// and a trailing totals row.
func TrialBalanceRecords(tb *domain.TrialBalance) [][]string {
	records := [][]string{
		{"勘定科目コード", "勘定科目", "借方合計", "貸方合計", "借方残高", "貸方残高"},
	}
	for _, row := range tb.Rows {
		records = append(records, []string{
			row.AccountCode,
			row.AccountName,
			yen(row.DebitTotal),
			yen(row.CreditTotal),
			yen(row.DebitBalance),
			yen(row.CreditBalance),
		})
	}
	records = append(records, []string{
		"合計",
		"",
		yen(tb.TotalDebit),
		yen(tb.TotalCredit),
		yen(tb.TotalDebitBalance),
		yen(tb.TotalCreditBalance),
	})
	return records
}

func sectionRecords(section domain.ReportSection) [][]string {
	records := [][]string{{section.Label, "", ""}}
	for _, item := range section.Items {
		records = append(records, []string{item.Code, item.Name, yen(item.Amount)})
	}
	records = append(records, []string{"", section.Label + "合計", yen(section.Total)})
	return records
}

// BalanceSheetRecords projects a balance sheet onto CSV rows, section by
// section with the closing totals.
func BalanceSheetRecords(bs *domain.BalanceSheet) [][]string {
	records := [][]string{{"貸借対照表", "", ""}}
	records = append(records, sectionRecords(bs.Assets)...)
	records = append(records, sectionRecords(bs.Liabilities)...)
	records = append(records, sectionRecords(bs.Equity)...)
	records = append(records,
		[]string{"", "資産合計", yen(bs.TotalAssets)},
		[]string{"", "負債純資産合計", yen(bs.TotalLiabilitiesAndEquity)},
	)
	return records
}

// ProfitLossRecords projects a profit and loss statement onto CSV rows,
// interleaving sections with the subtotal chain.
func ProfitLossRecords(pl *domain.ProfitLoss) [][]string {
	records := [][]string{{"損益計算書", "", ""}}
	records = append(records, sectionRecords(pl.Revenue)...)
	records = append(records, sectionRecords(pl.CostOfSales)...)
	records = append(records, []string{"", "売上総利益", yen(pl.GrossProfit)})
	records = append(records, sectionRecords(pl.SellingAndAdmin)...)
	records = append(records, []string{"", "営業利益", yen(pl.OperatingIncome)})
	records = append(records, sectionRecords(pl.NonOperatingIncome)...)
	records = append(records, sectionRecords(pl.NonOperatingExpense)...)
	records = append(records, []string{"", "経常利益", yen(pl.OrdinaryIncome)})
	records = append(records, sectionRecords(pl.ExtraordinaryGain)...)
	records = append(records, sectionRecords(pl.ExtraordinaryLoss)...)
	records = append(records,
		[]string{"", "税引前当期純利益", yen(pl.IncomeBeforeTax)},
		[]string{"", "法人税等", yen(pl.IncomeTax)},
		[]string{"", "当期純利益", yen(pl.NetIncome)},
	)
	return records
}
