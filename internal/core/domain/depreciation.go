package domain

import "time"

// DepreciationInput is everything the scheduler needs to derive a full
// schedule for one asset. It is deliberately detached from FixedAsset so the
// scheduler stays a pure function of its parameters.
type DepreciationInput struct {
	AcquisitionCost    int64
	ResidualValue      int64 // 通常1円
	UsefulLife         int   // years
	Method             DepreciationMethod
	AcquisitionDate    time.Time
	FiscalYearEndMonth int // 1-12
}

// DepreciationScheduleRow is one fiscal year of an asset's schedule.
type DepreciationScheduleRow struct {
	Year                    int    `json:"year"`       // ordinal, 1-based
	FiscalYear              string `json:"fiscalYear"` // label, e.g. "2024"
	StartBookValue          int64  `json:"startBookValue"`
	DepreciationAmount      int64  `json:"depreciationAmount"`
	EndBookValue            int64  `json:"endBookValue"`
	AccumulatedDepreciation int64  `json:"accumulatedDepreciation"`
}

// AssetDepreciation pairs an asset with its schedule and current-year figures.
type AssetDepreciation struct {
	Asset                   FixedAsset                `json:"asset"`
	Schedule                []DepreciationScheduleRow `json:"schedule"`
	CurrentYearAmount       int64                     `json:"currentYearAmount"`
	AccumulatedDepreciation int64                     `json:"accumulatedDepreciation"`
	BookValue               int64                     `json:"bookValue"`
}
