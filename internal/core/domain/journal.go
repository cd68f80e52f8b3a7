package domain

import "time"

// EntryStatus indicates the lifecycle state of a journal entry.
// Only confirmed entries participate in aggregation and reporting.
type EntryStatus string

const (
	Draft     EntryStatus = "draft"
	Confirmed EntryStatus = "confirmed"
)

// Side indicates whether a journal line is a debit or a credit.
type Side string

const (
	DebitSide  Side = "debit"
	CreditSide Side = "credit"
)

// JournalEntry is a single bookkeeping event composed of balanced lines.
// A confirmed entry is immutable for reporting purposes.
type JournalEntry struct {
	EntryID     string        `json:"entryID"`
	CompanyID   string        `json:"companyID"`
	Date        time.Time     `json:"date"` // date of the event, day precision
	Description string        `json:"description,omitempty"`
	ClientName  string        `json:"clientName,omitempty"` // 取引先
	Status      EntryStatus   `json:"status"`
	Lines       []JournalLine `json:"lines,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// JournalLine is one debit or credit row within a journal entry.
// Amount is a positive integer number of yen; TaxAmount is the tax portion
// of Amount under the tax-inclusive convention.
type JournalLine struct {
	LineID        string `json:"lineID"`
	EntryID       string `json:"entryID"`
	Side          Side   `json:"side"`
	AccountID     string `json:"accountID"`
	Amount        int64  `json:"amount"`
	TaxCategoryID string `json:"taxCategoryID,omitempty"`
	TaxAmount     int64  `json:"taxAmount"`
	Description   string `json:"description,omitempty"`
	SortOrder     int    `json:"sortOrder"`
}

// DebitTotal sums the debit-side line amounts.
func (e *JournalEntry) DebitTotal() int64 {
	var total int64
	for _, l := range e.Lines {
		if l.Side == DebitSide {
			total += l.Amount
		}
	}
	return total
}

// CreditTotal sums the credit-side line amounts.
func (e *JournalEntry) CreditTotal() int64 {
	var total int64
	for _, l := range e.Lines {
		if l.Side == CreditSide {
			total += l.Amount
		}
	}
	return total
}
