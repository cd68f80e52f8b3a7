package domain

// SettlementCategory groups settlement adjustment templates (決算整理仕訳).
type SettlementCategory string

const (
	SettlementAccrual SettlementCategory = "accrual" // 未払費用
	SettlementPrepaid SettlementCategory = "prepaid" // 前払費用
	SettlementTax     SettlementCategory = "tax"     // 税金
)

// SettlementTemplate describes one year-end adjustment as a debit/credit
// account-code pair. Codes are resolved against the company's chart at
// instantiation time, so renumbered or missing accounts fail loudly instead
// of posting to the wrong account.
type SettlementTemplate struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Category          SettlementCategory `json:"category"`
	DebitAccountCode  string             `json:"debitAccountCode"`
	CreditAccountCode string             `json:"creditAccountCode"`
}

// SettlementTemplates returns the built-in year-end adjustment catalog.
// Depreciation is absent on purpose: the fixed asset register posts it from
// the computed schedules.
func SettlementTemplates() []SettlementTemplate {
	return []SettlementTemplate{
		{
			ID:                "accrued_salary",
			Name:              "未払役員報酬の計上",
			Description:       "月末締め翌月払いの役員報酬の未払分を計上",
			Category:          SettlementAccrual,
			DebitAccountCode:  "5200", // 役員報酬
			CreditAccountCode: "2310", // 未払費用
		},
		{
			ID:                "accrued_social_insurance",
			Name:              "未払社会保険料の計上",
			Description:       "会社負担分の社会保険料の未払分を計上",
			Category:          SettlementAccrual,
			DebitAccountCode:  "5230", // 法定福利費
			CreditAccountCode: "2310",
		},
		{
			ID:                "accrued_rent",
			Name:              "未払家賃の計上",
			Description:       "期末時点で未払いの家賃を計上",
			Category:          SettlementAccrual,
			DebitAccountCode:  "5340", // 地代家賃
			CreditAccountCode: "2310",
		},
		{
			ID:                "prepaid_insurance",
			Name:              "前払保険料の振替",
			Description:       "年払い保険料のうち翌期分を前払費用に振替",
			Category:          SettlementPrepaid,
			DebitAccountCode:  "1410", // 前払費用
			CreditAccountCode: "5360", // 保険料
		},
		{
			ID:                "prepaid_rent",
			Name:              "前払家賃の振替",
			Description:       "前払いした翌期分の家賃を前払費用に振替",
			Category:          SettlementPrepaid,
			DebitAccountCode:  "1410",
			CreditAccountCode: "5340",
		},
		{
			ID:                "consumption_tax",
			Name:              "消費税の確定計上",
			Description:       "仮受消費税と仮払消費税を相殺し、未払消費税を計上",
			Category:          SettlementTax,
			DebitAccountCode:  "2360", // 仮受消費税
			CreditAccountCode: "2330", // 未払消費税等
		},
		{
			ID:                "corporate_tax",
			Name:              "法人税等の計上",
			Description:       "確定した法人税・住民税・事業税を未払計上",
			Category:          SettlementTax,
			DebitAccountCode:  "5700", // 法人税等
			CreditAccountCode: "2320", // 未払法人税等
		},
	}
}
