package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

// labourHandler handles HTTP requests for worked hours.
type labourHandler struct {
	labourService portssvc.LabourSvcFacade
}

func newLabourHandler(ls portssvc.LabourSvcFacade) *labourHandler {
	return &labourHandler{labourService: ls}
}

// registerLabourRoutes registers routes for registering worked hours.
func registerLabourRoutes(rg *gin.RouterGroup, ls portssvc.LabourSvcFacade) {
	h := newLabourHandler(ls)

	rg.POST("/worked-hours", h.registerHoursWorked)
}

func (h *labourHandler) registerHoursWorked(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterHoursWorkedRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.labourService.RegisterHoursWorked(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Hours worked registered",
		slog.String("company_id", req.CompanyID),
		slog.String("member_id", req.MemberID))
	c.JSON(http.StatusCreated, resp)
}
