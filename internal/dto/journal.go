package dto

import (
	"time"

	"github.com/RogerFilm/accounting/internal/core/domain"
)

// CreateJournalLineRequest is one debit or credit row of a candidate entry.
type CreateJournalLineRequest struct {
	Side          string `json:"side" binding:"required,oneof=debit credit"`
	AccountID     string `json:"accountID" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	TaxCategoryID string `json:"taxCategoryID"`
	TaxAmount     int64  `json:"taxAmount" binding:"min=0"`
	Description   string `json:"description"`
}

// CreateJournalEntryRequest is a candidate entry submitted at the posting
// boundary. Entries failing the balance invariant are rejected, never fixed.
type CreateJournalEntryRequest struct {
	Date        string                     `json:"date" binding:"required,dateonly"`
	Description string                     `json:"description"`
	ClientName  string                     `json:"clientName"`
	Status      string                     `json:"status" binding:"omitempty,oneof=draft confirmed"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID        string `json:"lineID"`
	Side          string `json:"side"`
	AccountID     string `json:"accountID"`
	Amount        int64  `json:"amount"`
	TaxCategoryID string `json:"taxCategoryID,omitempty"`
	TaxAmount     int64  `json:"taxAmount"`
	Description   string `json:"description,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	Date        string                `json:"date"`
	Description string                `json:"description,omitempty"`
	ClientName  string                `json:"clientName,omitempty"`
	Status      string                `json:"status"`
	Lines       []JournalLineResponse `json:"lines"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:        l.LineID,
			Side:          string(l.Side),
			AccountID:     l.AccountID,
			Amount:        l.Amount,
			TaxCategoryID: l.TaxCategoryID,
			TaxAmount:     l.TaxAmount,
			Description:   l.Description,
		}
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		Date:        e.Date.Format(DateLayout),
		Description: e.Description,
		ClientName:  e.ClientName,
		Status:      string(e.Status),
		Lines:       lines,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
