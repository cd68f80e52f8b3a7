package domain

import "time"

// DepreciationMethod selects the statutory amortization method for an asset.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "straight_line"     // 定額法
	DecliningBalance DepreciationMethod = "declining_balance" // 定率法（200%定率法）
	Immediate        DepreciationMethod = "immediate"         // 少額減価償却資産の特例
	Bulk3Year        DepreciationMethod = "bulk_3year"        // 一括償却資産（3年均等）
)

// Valid reports whether m is one of the four supported methods.
func (m DepreciationMethod) Valid() bool {
	switch m {
	case StraightLine, DecliningBalance, Immediate, Bulk3Year:
		return true
	}
	return false
}

// FixedAsset is a fixed asset register row. Its lifecycle is independent of
// the ledger: depreciation runs produce journal entries but never mutate the
// asset beyond an optional disposal date.
type FixedAsset struct {
	AssetID                 string             `json:"assetID"`
	CompanyID               string             `json:"companyID"`
	Name                    string             `json:"name"`
	Category                string             `json:"category"` // 建物/車両運搬具/工具器具備品 等
	AcquisitionDate         time.Time          `json:"acquisitionDate"`
	AcquisitionCost         int64              `json:"acquisitionCost"`
	UsefulLife              int                `json:"usefulLife"` // years
	DepreciationMethod      DepreciationMethod `json:"depreciationMethod"`
	ResidualValue           int64              `json:"residualValue"` // 通常1円
	AccountID               string             `json:"accountID"`               // asset account, credited on posting
	DepreciationAccountID   string             `json:"depreciationAccountID"`   // expense account, debited on posting
	DisposalDate            *time.Time         `json:"disposalDate,omitempty"`  // 処分日
	Memo                    string             `json:"memo,omitempty"`
	CreatedAt               time.Time          `json:"createdAt"`
	UpdatedAt               time.Time          `json:"updatedAt"`
}
