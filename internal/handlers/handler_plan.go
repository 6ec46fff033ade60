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

// planHandler handles HTTP requests for drafts and plans.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{planService: ps}
}

// registerPlanRoutes registers routes for drafts and the plan lifecycle.
func registerPlanRoutes(rg *gin.RouterGroup, ps portssvc.PlanSvcFacade) {
	h := newPlanHandler(ps)

	drafts := rg.Group("/drafts")
	{
		drafts.POST("", h.createDraft)
		drafts.DELETE("/:id", h.deleteDraft)
		drafts.POST("/:id/file", h.filePlan)
	}

	plans := rg.Group("/plans")
	{
		plans.GET("/active", h.listActivePlans)
		plans.GET("/:id", h.getPlan)
		plans.POST("/:id/approve", h.approvePlan)
		plans.POST("/:id/reject", h.rejectPlan)
		plans.POST("/:id/renew", h.renewPlan)
		plans.POST("/:id/hide", h.hidePlan)
		plans.POST("/synchronize", h.synchronize)
	}
}

func (h *planHandler) createDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDraftRequest
	if !bindJSON(c, &req) {
		return
	}

	draft, err := h.planService.CreateDraft(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Draft created", slog.String("draft_id", draft.DraftID))
	c.JSON(http.StatusCreated, dto.ToDraftResponse(draft))
}

func (h *planHandler) deleteDraft(c *gin.Context) {
	requesterID := c.Query("companyID")
	if requesterID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID query parameter is required"})
		return
	}

	if err := h.planService.DeleteDraft(c.Request.Context(), c.Param("id"), requesterID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *planHandler) filePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PlanActionRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.planService.FilePlan(c.Request.Context(), c.Param("id"), req.RequesterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Plan filed", slog.String("plan_id", plan.PlanID))
	c.JSON(http.StatusCreated, dto.ToPlanResponse(plan, time.Now().UTC()))
}

func (h *planHandler) getPlan(c *gin.Context) {
	plan, err := h.planService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan, time.Now().UTC()))
}

func (h *planHandler) listActivePlans(c *gin.Context) {
	plans, err := h.planService.ListActivePlans(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponses(plans, time.Now().UTC()))
}

func (h *planHandler) approvePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReviewPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.planService.ApprovePlan(c.Request.Context(), c.Param("id"), req.ReviewerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Plan approved", slog.String("plan_id", plan.PlanID))
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan, time.Now().UTC()))
}

func (h *planHandler) rejectPlan(c *gin.Context) {
	var req dto.ReviewPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.planService.RejectPlan(c.Request.Context(), c.Param("id"), req.ReviewerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *planHandler) renewPlan(c *gin.Context) {
	var req dto.PlanActionRequest
	if !bindJSON(c, &req) {
		return
	}

	draft, err := h.planService.RenewPlan(c.Request.Context(), c.Param("id"), req.RequesterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDraftResponse(draft))
}

func (h *planHandler) hidePlan(c *gin.Context) {
	var req dto.PlanActionRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.planService.HidePlan(c.Request.Context(), c.Param("id"), req.RequesterID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// synchronize triggers the activation pass on demand. The scheduled job
// runs the same operation daily; the route exists for operators.
func (h *planHandler) synchronize(c *gin.Context) {
	resp, err := h.planService.SynchronizedActivation(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
