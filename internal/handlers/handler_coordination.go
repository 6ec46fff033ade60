package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

// coordinationHandler handles HTTP requests for coordination transfer
// requests.
type coordinationHandler struct {
	coordinationService portssvc.CoordinationSvcFacade
}

func newCoordinationHandler(cds portssvc.CoordinationSvcFacade) *coordinationHandler {
	return &coordinationHandler{coordinationService: cds}
}

// registerCoordinationRoutes registers routes for handing over
// coordination of a cooperation.
func registerCoordinationRoutes(rg *gin.RouterGroup, cds portssvc.CoordinationSvcFacade) {
	h := newCoordinationHandler(cds)

	transfers := rg.Group("/coordination-transfers")
	{
		transfers.POST("", h.requestTransfer)
		transfers.POST("/accept", h.acceptTransfer)
		transfers.POST("/:id/deny", h.denyTransfer)
		transfers.POST("/:id/cancel", h.cancelTransfer)
	}
}

func (h *coordinationHandler) requestTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RequestCoordinationTransferRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.coordinationService.RequestTransfer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Coordination transfer requested",
		slog.String("request_id", request.RequestID),
		slog.String("candidate_id", request.CandidateID))
	c.JSON(http.StatusCreated, dto.ToTransferRequestResponse(request))
}

func (h *coordinationHandler) acceptTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AcceptCoordinationTransferRequest
	if !bindJSON(c, &req) {
		return
	}

	tenure, err := h.coordinationService.AcceptTransfer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Coordination transfer accepted",
		slog.String("tenure_id", tenure.TenureID),
		slog.String("coordinator_id", tenure.CoordinatorID))
	c.JSON(http.StatusOK, dto.ToTenureResponse(tenure))
}

func (h *coordinationHandler) denyTransfer(c *gin.Context) {
	var req dto.CloseTransferActionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.coordinationService.DenyTransfer(c.Request.Context(), c.Param("id"), req.ActorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *coordinationHandler) cancelTransfer(c *gin.Context) {
	var req dto.CloseTransferActionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.coordinationService.CancelTransfer(c.Request.Context(), c.Param("id"), req.ActorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
