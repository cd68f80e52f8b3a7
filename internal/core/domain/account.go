package domain

import "time"

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "asset"
	Liability AccountCategory = "liability"
	Equity    AccountCategory = "equity"
	Revenue   AccountCategory = "revenue"
	Expense   AccountCategory = "expense"
)

// IsDebitNormal reports whether accounts of this category carry a positive
// balance on the debit side. Asset and expense accounts are debit-normal;
// liability, equity and revenue accounts are credit-normal.
func (c AccountCategory) IsDebitNormal() bool {
	return c == Asset || c == Expense
}

// Valid reports whether c is one of the five known categories.
func (c AccountCategory) Valid() bool {
	switch c {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is a chart-of-accounts entry, scoped to a company.
// Accounts referenced by journal lines are never deleted, only deactivated.
type Account struct {
	AccountID string          `json:"accountID"`
	CompanyID string          `json:"companyID"`
	Code      string          `json:"code"` // e.g. "1100"
	Name      string          `json:"name"` // e.g. "現金"
	Category  AccountCategory `json:"category"`
	ParentID  string          `json:"parentID,omitempty"` // sub-account parent, informational only
	IsSystem  bool            `json:"isSystem"`           // seeded accounts cannot be deleted
	IsActive  bool            `json:"isActive"`
	SortOrder int             `json:"sortOrder"`
	CreatedAt time.Time       `json:"createdAt"`
}
