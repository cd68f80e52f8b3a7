package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RogerFilm/accounting/internal/core/domain"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/dto"
	"github.com/RogerFilm/accounting/internal/middleware"
)

// journalHandler handles HTTP requests at the posting boundary.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers journal entry routes on a company scope.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.POST("/:entryID/confirm", h.confirmEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
	}
}

func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), c.Param("companyID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("status", string(entry.Status)),
		slog.Int("lines", len(entry.Lines)))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	var status *domain.EntryStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.EntryStatus(raw)
		if st != domain.Draft && st != domain.Confirmed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be 'draft' or 'confirmed'"})
			return
		}
		status = &st
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), c.Param("companyID"), from, to, status)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": dto.ToJournalEntryResponses(entries)})
}

func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.journalService.GetEntry(c.Request.Context(), c.Param("companyID"), c.Param("entryID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) confirmEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.journalService.ConfirmEntry(c.Request.Context(), c.Param("companyID"), c.Param("entryID"))
	if err != nil {
		respondError(c, logger, err, "Failed to confirm journal entry")
		return
	}

	logger.Info("Journal entry confirmed", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	err := h.journalService.DeleteEntry(c.Request.Context(), c.Param("companyID"), c.Param("entryID"))
	if err != nil {
		respondError(c, logger, err, "Failed to delete journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}
