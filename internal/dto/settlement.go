package dto

// ApplySettlementRequest instantiates a settlement template as a draft
// journal entry on a given date.
type ApplySettlementRequest struct {
	TemplateID string `json:"templateID" binding:"required"`
	Date       string `json:"date" binding:"required,dateonly"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	Memo       string `json:"memo"`
}
