package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/dto"
	"github.com/RogerFilm/accounting/internal/middleware"
)

// depreciationHandler handles HTTP requests for the fixed asset register.
type depreciationHandler struct {
	depreciationService portssvc.DepreciationSvcFacade
}

func newDepreciationHandler(ds portssvc.DepreciationSvcFacade) *depreciationHandler {
	return &depreciationHandler{depreciationService: ds}
}

// registerDepreciationRoutes registers fixed asset routes on a company scope.
func registerDepreciationRoutes(rg *gin.RouterGroup, depreciationService portssvc.DepreciationSvcFacade) {
	h := newDepreciationHandler(depreciationService)

	assets := rg.Group("/fixed-assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:assetID", h.getAsset)
		assets.POST("/:assetID/dispose", h.disposeAsset)
	}

	depreciation := rg.Group("/depreciation")
	{
		depreciation.GET("/:fiscalYear", h.listAssetDepreciation)
		depreciation.POST("/post", h.postDepreciation)
	}
}

func (h *depreciationHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.depreciationService.CreateAsset(c.Request.Context(), c.Param("companyID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to register fixed asset")
		return
	}

	logger.Info("Fixed asset registered", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, dto.ToFixedAssetResponse(asset))
}

func (h *depreciationHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asset, err := h.depreciationService.GetAsset(c.Request.Context(), c.Param("companyID"), c.Param("assetID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve fixed asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToFixedAssetResponse(asset))
}

func (h *depreciationHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.depreciationService.ListAssets(c.Request.Context(), c.Param("companyID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list fixed assets")
		return
	}

	responses := make([]dto.FixedAssetResponse, len(assets))
	for i := range assets {
		responses[i] = dto.ToFixedAssetResponse(&assets[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *depreciationHandler) disposeAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DisposeFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DisposeAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	disposalDate, err := dto.ParseDate(req.DisposalDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disposal date, expected YYYY-MM-DD"})
		return
	}

	if err := h.depreciationService.DisposeAsset(c.Request.Context(), c.Param("companyID"), c.Param("assetID"), disposalDate); err != nil {
		respondError(c, logger, err, "Failed to dispose fixed asset")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *depreciationHandler) listAssetDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fiscalYear := c.Param("fiscalYear")

	items, err := h.depreciationService.ListAssetDepreciation(c.Request.Context(), c.Param("companyID"), fiscalYear)
	if err != nil {
		respondError(c, logger, err, "Failed to list asset depreciation")
		return
	}
	c.JSON(http.StatusOK, dto.ToDepreciationListResponse(fiscalYear, items))
}

func (h *depreciationHandler) postDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostDepreciation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entryIDs, err := h.depreciationService.PostDepreciation(c.Request.Context(), c.Param("companyID"), req.FiscalYear)
	if err != nil {
		respondError(c, logger, err, "Failed to post depreciation")
		return
	}

	logger.Info("Depreciation posted", slog.String("fiscal_year", req.FiscalYear), slog.Int("entries", len(entryIDs)))
	c.JSON(http.StatusCreated, gin.H{"fiscalYear": req.FiscalYear, "entryIDs": entryIDs})
}
