package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

// consumptionHandler handles HTTP requests for consuming planned
// products.
type consumptionHandler struct {
	consumptionService portssvc.ConsumptionSvcFacade
}

func newConsumptionHandler(cs portssvc.ConsumptionSvcFacade) *consumptionHandler {
	return &consumptionHandler{consumptionService: cs}
}

// registerConsumptionRoutes registers routes for private and productive
// consumption.
func registerConsumptionRoutes(rg *gin.RouterGroup, cs portssvc.ConsumptionSvcFacade) {
	h := newConsumptionHandler(cs)

	consumptions := rg.Group("/consumptions")
	{
		consumptions.POST("/private", h.registerPrivateConsumption)
		consumptions.POST("/productive", h.registerProductiveConsumption)
	}
}

func (h *consumptionHandler) registerPrivateConsumption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterPrivateConsumptionRequest
	if !bindJSON(c, &req) {
		return
	}

	transfer, err := h.consumptionService.RegisterPrivateConsumption(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Private consumption registered",
		slog.String("member_id", req.MemberID),
		slog.String("plan_id", req.PlanID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

func (h *consumptionHandler) registerProductiveConsumption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterProductiveConsumptionRequest
	if !bindJSON(c, &req) {
		return
	}

	transfer, err := h.consumptionService.RegisterProductiveConsumption(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Productive consumption registered",
		slog.String("company_id", req.CompanyID),
		slog.String("plan_id", req.PlanID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}
