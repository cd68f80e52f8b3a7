package domain

import (
	"strconv"
	"time"
)

// FiscalYear is the inclusive date span of one business year. Label is the
// calendar year the fiscal year starts in (e.g. "2024" for 2024-04-01 to
// 2025-03-31 when the fiscal year ends in March).
type FiscalYear struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FiscalYearFor returns the fiscal year containing date for a company whose
// fiscal year ends in fiscalYearEndMonth (1-12). It is a pure function and is
// passed explicitly wherever fiscal-year context is needed.
func FiscalYearFor(date time.Time, fiscalYearEndMonth int) FiscalYear {
	startMonth := fiscalYearEndMonth%12 + 1

	startYear := date.Year()
	if int(date.Month()) < startMonth {
		startYear--
	}

	start := time.Date(startYear, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, -1)

	return FiscalYear{
		Label: strconv.Itoa(startYear),
		Start: start,
		End:   end,
	}
}

// FiscalYearByLabel returns the fiscal year with the given start-year label.
func FiscalYearByLabel(label string, fiscalYearEndMonth int) (FiscalYear, error) {
	startYear, err := strconv.Atoi(label)
	if err != nil {
		return FiscalYear{}, err
	}
	startMonth := fiscalYearEndMonth%12 + 1
	start := time.Date(startYear, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	return FiscalYear{Label: label, Start: start, End: start.AddDate(1, 0, -1)}, nil
}

// MonthsInFirstYear returns the number of whole months from the acquisition
// month through the end of the fiscal year containing it, clamped to [1, 12].
// Used to pro-rate the first depreciation year.
func MonthsInFirstYear(acquisitionDate time.Time, fiscalYearEndMonth int) int {
	acqMonth := int(acquisitionDate.Month())

	var months int
	if acqMonth <= fiscalYearEndMonth {
		months = fiscalYearEndMonth - acqMonth + 1
	} else {
		months = 12 - acqMonth + fiscalYearEndMonth + 1
	}

	if months < 1 {
		months = 1
	}
	if months > 12 {
		months = 12
	}
	return months
}
