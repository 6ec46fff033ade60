package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerHomeRoutes(r)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerCompanyRoutes(v1, services.Company, services.Plan, services.Labour)
	registerPlanRoutes(v1, services.Plan)
	registerCooperationRoutes(v1, services.Cooperation, services.Coordination)
	registerCoordinationRoutes(v1, services.Coordination)
	registerAccountRoutes(v1, services.Ledger)
	registerLabourRoutes(v1, services.Labour)
	registerConsumptionRoutes(v1, services.Consumption)
}
