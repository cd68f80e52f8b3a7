package dto

import (
	"github.com/RogerFilm/accounting/internal/core/domain"
)

// CreateFixedAssetRequest defines the payload to register a fixed asset.
type CreateFixedAssetRequest struct {
	Name                  string `json:"name" binding:"required"`
	Category              string `json:"category"`
	AcquisitionDate       string `json:"acquisitionDate" binding:"required,dateonly"`
	AcquisitionCost       int64  `json:"acquisitionCost" binding:"required,gt=0"`
	UsefulLife            int    `json:"usefulLife" binding:"required,min=1"`
	DepreciationMethod    string `json:"depreciationMethod" binding:"required,oneof=straight_line declining_balance immediate bulk_3year"`
	ResidualValue         int64  `json:"residualValue" binding:"min=0"`
	AccountID             string `json:"accountID" binding:"required"`
	DepreciationAccountID string `json:"depreciationAccountID" binding:"required"`
	Memo                  string `json:"memo"`
}

// DisposeFixedAssetRequest records the disposal of an asset.
type DisposeFixedAssetRequest struct {
	DisposalDate string `json:"disposalDate" binding:"required,dateonly"`
}

// PostDepreciationRequest selects the fiscal year to post depreciation for.
type PostDepreciationRequest struct {
	FiscalYear string `json:"fiscalYear" binding:"required"`
}

// FixedAssetResponse defines the data returned for a fixed asset.
type FixedAssetResponse struct {
	AssetID               string `json:"assetID"`
	Name                  string `json:"name"`
	Category              string `json:"category,omitempty"`
	AcquisitionDate       string `json:"acquisitionDate"`
	AcquisitionCost       int64  `json:"acquisitionCost"`
	UsefulLife            int    `json:"usefulLife"`
	DepreciationMethod    string `json:"depreciationMethod"`
	ResidualValue         int64  `json:"residualValue"`
	AccountID             string `json:"accountID"`
	DepreciationAccountID string `json:"depreciationAccountID"`
	DisposalDate          string `json:"disposalDate,omitempty"`
	Memo                  string `json:"memo,omitempty"`
}

// ToFixedAssetResponse converts a domain.FixedAsset to its response DTO.
func ToFixedAssetResponse(a *domain.FixedAsset) FixedAssetResponse {
	resp := FixedAssetResponse{
		AssetID:               a.AssetID,
		Name:                  a.Name,
		Category:              a.Category,
		AcquisitionDate:       a.AcquisitionDate.Format(DateLayout),
		AcquisitionCost:       a.AcquisitionCost,
		UsefulLife:            a.UsefulLife,
		DepreciationMethod:    string(a.DepreciationMethod),
		ResidualValue:         a.ResidualValue,
		AccountID:             a.AccountID,
		DepreciationAccountID: a.DepreciationAccountID,
		Memo:                  a.Memo,
	}
	if a.DisposalDate != nil {
		resp.DisposalDate = a.DisposalDate.Format(DateLayout)
	}
	return resp
}

// AssetDepreciationResponse pairs an asset with its schedule for one fiscal year view.
type AssetDepreciationResponse struct {
	Asset                   FixedAssetResponse               `json:"asset"`
	Schedule                []domain.DepreciationScheduleRow `json:"schedule"`
	CurrentYearAmount       int64                            `json:"currentYearAmount"`
	AccumulatedDepreciation int64                            `json:"accumulatedDepreciation"`
	BookValue               int64                            `json:"bookValue"`
}

// DepreciationListResponse is the fiscal-year depreciation overview.
type DepreciationListResponse struct {
	FiscalYear       string                      `json:"fiscalYear"`
	Assets           []AssetDepreciationResponse `json:"assets"`
	TotalCurrentYear int64                       `json:"totalCurrentYear"`
}

// ToDepreciationListResponse converts the service result for one fiscal year.
func ToDepreciationListResponse(fiscalYear string, items []domain.AssetDepreciation) DepreciationListResponse {
	assets := make([]AssetDepreciationResponse, len(items))
	var total int64
	for i, item := range items {
		assets[i] = AssetDepreciationResponse{
			Asset:                   ToFixedAssetResponse(&item.Asset),
			Schedule:                item.Schedule,
			CurrentYearAmount:       item.CurrentYearAmount,
			AccumulatedDepreciation: item.AccumulatedDepreciation,
			BookValue:               item.BookValue,
		}
		total += item.CurrentYearAmount
	}
	return DepreciationListResponse{FiscalYear: fiscalYear, Assets: assets, TotalCurrentYear: total}
}
