package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RogerFilm/accounting/internal/core/domain"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/dto"
	"github.com/RogerFilm/accounting/internal/middleware"
)

// taxHandler handles HTTP requests for consumption tax calculations.
type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

func newTaxHandler(ts portssvc.TaxSvcFacade) *taxHandler {
	return &taxHandler{taxService: ts}
}

// registerTaxRoutes registers consumption tax routes on a company scope.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := newTaxHandler(taxService)
	rg.GET("/tax/consumption", h.calculateConsumptionTax)
}

func (h *taxHandler) calculateConsumptionTax(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	// Empty means "use the company's configured taxMethod".
	method := domain.TaxMethod(c.Query("method"))
	if method != "" && method != domain.StandardMethod && method != domain.SimplifiedMethod {
		c.JSON(http.StatusBadRequest, gin.H{"error": "method must be 'standard' or 'simplified'"})
		return
	}

	businessType := 0
	if raw := c.Query("businessType"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "businessType must be an integer"})
			return
		}
		businessType = parsed
	}

	result, err := h.taxService.CalculateConsumptionTax(c.Request.Context(), c.Param("companyID"), from, to, method, businessType)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate consumption tax")
		return
	}
	c.JSON(http.StatusOK, dto.ConsumptionTaxResponse{Period: period(from, to), Result: *result})
}
