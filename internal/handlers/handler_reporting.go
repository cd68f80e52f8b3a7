package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/dto"
	"github.com/RogerFilm/accounting/internal/export"
	"github.com/RogerFilm/accounting/internal/middleware"
)

// reportingHandler handles HTTP requests for aggregations and financial
// statements. Report endpoints render JSON by default and CSV with
// ?format=csv.
type reportingHandler struct {
	reportingService   portssvc.ReportingSvcFacade
	aggregationService portssvc.AggregationSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, as portssvc.AggregationSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, aggregationService: as}
}

// registerReportingRoutes registers aggregation and report routes on a
// company scope.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, aggregationService portssvc.AggregationSvcFacade) {
	h := newReportingHandler(reportingService, aggregationService)

	aggregation := rg.Group("/aggregation")
	{
		aggregation.GET("/accounts", h.aggregateByAccount)
		aggregation.GET("/monthly", h.aggregateByMonth)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/profit-loss", h.profitLoss)
		reports.GET("/monthly-trend", h.monthlyTrend)
	}
}

// writeCSV sends a BOM-prefixed CSV attachment.
func writeCSV(c *gin.Context, filename string, records [][]string) {
	data, err := export.WriteCSV(records)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		respondError(c, logger, err, "Failed to render CSV")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *reportingHandler) aggregateByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	balances, err := h.aggregationService.AggregateByAccount(c.Request.Context(), c.Param("companyID"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to aggregate by account")
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period(from, to), "balances": balances})
}

func (h *reportingHandler) aggregateByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	months, err := h.aggregationService.AggregateByMonth(c.Request.Context(), c.Param("companyID"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to aggregate by month")
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period(from, to), "months": months})
}

func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), c.Param("companyID"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to derive trial balance")
		return
	}

	if c.Query("format") == "csv" {
		writeCSV(c, "trial_balance.csv", export.TrialBalanceRecords(tb))
		return
	}
	c.JSON(http.StatusOK, dto.TrialBalanceResponse{Period: period(from, to), Report: *tb})
}

func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	bs, err := h.reportingService.BalanceSheet(c.Request.Context(), c.Param("companyID"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to derive balance sheet")
		return
	}

	if c.Query("format") == "csv" {
		writeCSV(c, "balance_sheet.csv", export.BalanceSheetRecords(bs))
		return
	}
	c.JSON(http.StatusOK, dto.BalanceSheetResponse{Period: period(from, to), Report: *bs})
}

func (h *reportingHandler) profitLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	pl, err := h.reportingService.ProfitLoss(c.Request.Context(), c.Param("companyID"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to derive profit and loss statement")
		return
	}

	if c.Query("format") == "csv" {
		writeCSV(c, "profit_loss.csv", export.ProfitLossRecords(pl))
		return
	}
	c.JSON(http.StatusOK, dto.ProfitLossResponse{Period: period(from, to), Report: *pl})
}

func (h *reportingHandler) monthlyTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	trend, err := h.reportingService.MonthlyTrend(c.Request.Context(), c.Param("companyID"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to derive monthly trend")
		return
	}
	c.JSON(http.StatusOK, dto.MonthlyTrendResponse{Period: period(from, to), Report: *trend})
}
