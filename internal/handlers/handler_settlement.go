package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/dto"
	"github.com/RogerFilm/accounting/internal/middleware"
)

// settlementHandler handles HTTP requests for year-end adjustment templates.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

func newSettlementHandler(ss portssvc.SettlementSvcFacade) *settlementHandler {
	return &settlementHandler{settlementService: ss}
}

// registerSettlementRoutes registers settlement routes on a company scope.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	h := newSettlementHandler(settlementService)

	settlement := rg.Group("/settlement")
	{
		settlement.GET("/templates", h.listTemplates)
		settlement.POST("/entries", h.applyTemplate)
	}
}

func (h *settlementHandler) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.settlementService.ListTemplates())
}

func (h *settlementHandler) applyTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplySettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.settlementService.ApplyTemplate(c.Request.Context(), c.Param("companyID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create settlement entry")
		return
	}

	logger.Info("Settlement entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("template_id", req.TemplateID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
