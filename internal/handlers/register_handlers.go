package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group. Company setup lives at the
// top level; everything else is scoped under a company.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerCompanyRoutes(v1, services.Company)

	company := v1.Group("/companies/:companyID")
	registerAccountRoutes(company, services.Account)
	registerJournalRoutes(company, services.Journal)
	registerReportingRoutes(company, services.Reporting, services.Aggregation)
	registerTaxRoutes(company, services.Tax)
	registerDepreciationRoutes(company, services.Depreciation)
	registerSettlementRoutes(company, services.Settlement)
}
