package dto

import (
	"time"

	"github.com/RogerFilm/accounting/internal/core/domain"
)

// CreateAccountRequest defines the payload to add a chart-of-accounts entry.
type CreateAccountRequest struct {
	Code      string `json:"code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category" binding:"required,oneof=asset liability equity revenue expense"`
	ParentID  string `json:"parentID"`
	SortOrder int    `json:"sortOrder"`
}

// UpdateAccountRequest defines the mutable fields of an account.
type UpdateAccountRequest struct {
	Name      *string `json:"name"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"sortOrder"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string    `json:"accountID"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	ParentID  string    `json:"parentID,omitempty"`
	IsSystem  bool      `json:"isSystem"`
	IsActive  bool      `json:"isActive"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		Code:      a.Code,
		Name:      a.Name,
		Category:  string(a.Category),
		ParentID:  a.ParentID,
		IsSystem:  a.IsSystem,
		IsActive:  a.IsActive,
		SortOrder: a.SortOrder,
		CreatedAt: a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
