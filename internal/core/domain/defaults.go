package domain

// DefaultChartOfAccounts returns the seed chart of accounts for a Japanese
// small corporation, installed at company creation. Seeded accounts are
// marked IsSystem and cannot be deleted, only deactivated.
func DefaultChartOfAccounts() []Account {
	return []Account{
		// 資産
		{Code: "1100", Name: "現金", Category: Asset},
		{Code: "1200", Name: "普通預金", Category: Asset},
		{Code: "1300", Name: "売掛金", Category: Asset},
		{Code: "1400", Name: "仮払消費税", Category: Asset},
		{Code: "1410", Name: "前払費用", Category: Asset},
		{Code: "1500", Name: "工具器具備品", Category: Asset},
		{Code: "1510", Name: "車両運搬具", Category: Asset},
		{Code: "1520", Name: "ソフトウェア", Category: Asset},
		// 負債
		{Code: "2100", Name: "買掛金", Category: Liability},
		{Code: "2310", Name: "未払費用", Category: Liability},
		{Code: "2320", Name: "未払法人税等", Category: Liability},
		{Code: "2330", Name: "未払消費税等", Category: Liability},
		{Code: "2360", Name: "仮受消費税", Category: Liability},
		// 純資産
		{Code: "3100", Name: "資本金", Category: Equity},
		{Code: "3200", Name: "利益剰余金", Category: Equity},
		// 収益
		{Code: "4100", Name: "売上高", Category: Revenue},
		{Code: "4200", Name: "受取利息", Category: Revenue},
		{Code: "4300", Name: "受取配当金", Category: Revenue},
		{Code: "4400", Name: "雑収入", Category: Revenue},
		{Code: "4500", Name: "固定資産売却益", Category: Revenue},
		// 費用
		{Code: "5100", Name: "売上原価", Category: Expense},
		{Code: "5110", Name: "仕入高", Category: Expense},
		{Code: "5200", Name: "役員報酬", Category: Expense},
		{Code: "5230", Name: "法定福利費", Category: Expense},
		{Code: "5300", Name: "旅費交通費", Category: Expense},
		{Code: "5310", Name: "通信費", Category: Expense},
		{Code: "5320", Name: "消耗品費", Category: Expense},
		{Code: "5330", Name: "水道光熱費", Category: Expense},
		{Code: "5340", Name: "地代家賃", Category: Expense},
		{Code: "5360", Name: "保険料", Category: Expense},
		{Code: "5410", Name: "支払手数料", Category: Expense},
		{Code: "5450", Name: "減価償却費", Category: Expense},
		{Code: "5500", Name: "支払利息", Category: Expense},
		{Code: "5600", Name: "固定資産売却損", Category: Expense},
		{Code: "5700", Name: "法人税等", Category: Expense},
	}
}
