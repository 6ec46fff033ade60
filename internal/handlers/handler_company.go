package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

// companyHandler handles HTTP requests for companies and members.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
	planService    portssvc.PlanSvcFacade
	labourService  portssvc.LabourSvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade, ps portssvc.PlanSvcFacade, ls portssvc.LabourSvcFacade) *companyHandler {
	return &companyHandler{
		companyService: cs,
		planService:    ps,
		labourService:  ls,
	}
}

// registerCompanyRoutes registers routes for companies and members.
func registerCompanyRoutes(rg *gin.RouterGroup, cs portssvc.CompanySvcFacade, ps portssvc.PlanSvcFacade, ls portssvc.LabourSvcFacade) {
	h := newCompanyHandler(cs, ps, ls)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.registerCompany)
		companies.GET("/:id", h.getCompany)
		companies.POST("/:id/workers", h.addWorker)
		companies.GET("/:id/plans", h.listPlans)
		companies.GET("/:id/drafts", h.listDrafts)
		companies.GET("/:id/worked-hours", h.listWorkedHours)
	}

	members := rg.Group("/members")
	{
		members.POST("", h.registerMember)
		members.GET("/:id", h.getMember)
	}
}

func (h *companyHandler) registerCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.companyService.RegisterCompany(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Company registered", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

func (h *companyHandler) getCompany(c *gin.Context) {
	company, err := h.companyService.ResolveCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

func (h *companyHandler) registerMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.companyService.RegisterMember(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Member registered", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *companyHandler) getMember(c *gin.Context) {
	member, err := h.companyService.ResolveMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *companyHandler) addWorker(c *gin.Context) {
	var req dto.AddWorkerRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.companyService.AddWorker(c.Request.Context(), c.Param("id"), req.MemberID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *companyHandler) listPlans(c *gin.Context) {
	includeHidden, _ := strconv.ParseBool(c.DefaultQuery("includeHidden", "false"))

	plans, err := h.planService.ListPlansByCompany(c.Request.Context(), c.Param("id"), includeHidden)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponses(plans, time.Now().UTC()))
}

func (h *companyHandler) listDrafts(c *gin.Context) {
	drafts, err := h.planService.ListDrafts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponses(drafts))
}

func (h *companyHandler) listWorkedHours(c *gin.Context) {
	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	transfers, err := h.labourService.ListWorkedHours(c.Request.Context(), c.Param("id"), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferResponses(transfers))
}
