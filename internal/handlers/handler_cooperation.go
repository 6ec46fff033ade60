package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

// cooperationHandler handles HTTP requests for cooperations and their
// membership.
type cooperationHandler struct {
	cooperationService  portssvc.CooperationSvcFacade
	coordinationService portssvc.CoordinationSvcFacade
}

func newCooperationHandler(cs portssvc.CooperationSvcFacade, cds portssvc.CoordinationSvcFacade) *cooperationHandler {
	return &cooperationHandler{
		cooperationService:  cs,
		coordinationService: cds,
	}
}

// registerCooperationRoutes registers routes for cooperations and
// membership requests.
func registerCooperationRoutes(rg *gin.RouterGroup, cs portssvc.CooperationSvcFacade, cds portssvc.CoordinationSvcFacade) {
	h := newCooperationHandler(cs, cds)

	coops := rg.Group("/cooperations")
	{
		coops.POST("", h.createCooperation)
		coops.GET("", h.listCooperations)
		coops.GET("/:id", h.getCooperation)
		coops.GET("/:id/plans", h.listMemberPlans)
		coops.GET("/:id/tenures", h.listTenures)
		coops.POST("/join-requests", h.requestCooperation)
		coops.POST("/join-requests/accept", h.acceptCooperation)
		coops.POST("/join-requests/deny", h.denyCooperation)
		coops.POST("/join-requests/cancel", h.cancelCooperationRequest)
		coops.POST("/leave", h.endCooperation)
	}
}

func (h *cooperationHandler) createCooperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCooperationRequest
	if !bindJSON(c, &req) {
		return
	}

	coop, err := h.coordinationService.CreateCooperation(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Cooperation created", slog.String("cooperation_id", coop.CooperationID))
	c.JSON(http.StatusCreated, dto.ToCooperationResponse(coop))
}

func (h *cooperationHandler) listCooperations(c *gin.Context) {
	coops, err := h.cooperationService.ListCooperations(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCooperationResponses(coops))
}

func (h *cooperationHandler) getCooperation(c *gin.Context) {
	coop, err := h.cooperationService.GetCooperation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCooperationResponse(coop))
}

func (h *cooperationHandler) listMemberPlans(c *gin.Context) {
	plans, err := h.cooperationService.ListMemberPlans(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponses(plans, time.Now().UTC()))
}

func (h *cooperationHandler) listTenures(c *gin.Context) {
	tenures, err := h.coordinationService.ListTenures(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTenureResponses(tenures))
}

func (h *cooperationHandler) requestCooperation(c *gin.Context) {
	var req dto.RequestCooperationRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cooperationService.RequestCooperation(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *cooperationHandler) acceptCooperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AcceptCooperationRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cooperationService.AcceptCooperation(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Cooperation request accepted",
		slog.String("cooperation_id", req.CooperationID),
		slog.String("plan_id", req.PlanID))
	c.Status(http.StatusNoContent)
}

func (h *cooperationHandler) denyCooperation(c *gin.Context) {
	var req dto.DenyCooperationRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cooperationService.DenyCooperation(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *cooperationHandler) cancelCooperationRequest(c *gin.Context) {
	var req dto.EndCooperationRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cooperationService.CancelCooperationRequest(c.Request.Context(), req.PlanID, req.RequesterID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *cooperationHandler) endCooperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EndCooperationRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cooperationService.EndCooperation(c.Request.Context(), req.PlanID, req.RequesterID); err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Cooperation membership ended", slog.String("plan_id", req.PlanID))
	c.Status(http.StatusNoContent)
}
