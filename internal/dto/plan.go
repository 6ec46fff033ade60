package dto

import (
	"time"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PlanResponse defines the data returned for a plan. Status is derived
// from the date fields at response time.
type PlanResponse struct {
	PlanID          string            `json:"planID"`
	PlannerID       string            `json:"plannerID"`
	ProductName     string            `json:"productName"`
	Description     string            `json:"description"`
	CostsMeans      decimal.Decimal   `json:"costsMeans"`
	CostsRaw        decimal.Decimal   `json:"costsRaw"`
	CostsLabour     decimal.Decimal   `json:"costsLabour"`
	ProductUnit     string            `json:"productUnit"`
	Amount          int64             `json:"amount"`
	TimeframeDays   int               `json:"timeframeDays"`
	IsPublicService bool              `json:"isPublicService"`
	Status          domain.PlanStatus `json:"status"`
	FilingDate      time.Time         `json:"filingDate"`
	ApprovalDate    *time.Time        `json:"approvalDate,omitempty"`
	RejectionDate   *time.Time        `json:"rejectionDate,omitempty"`
	ActivationDate  *time.Time        `json:"activationDate,omitempty"`
	ExpirationDate  *time.Time        `json:"expirationDate,omitempty"`
	CooperationID   *string           `json:"cooperationID,omitempty"`
	PricePerUnit    decimal.Decimal   `json:"pricePerUnit"`
	HiddenByUser    bool              `json:"hiddenByUser"`
}

// RejectPlanResponse reports the outcome of a rejection attempt.
// Rejecting an already-rejected plan is not an error; it just reports
// IsPlanRejected=false.
type RejectPlanResponse struct {
	PlanID         string `json:"planID"`
	IsPlanRejected bool   `json:"isPlanRejected"`
}

// SynchronizedActivationResponse summarises one activation pass.
type SynchronizedActivationResponse struct {
	ActivatedPlans int `json:"activatedPlans"`
	ExpiredPlans   int `json:"expiredPlans"`
}

// ReviewPlanRequest identifies the accounting reviewer approving or
// rejecting a plan.
type ReviewPlanRequest struct {
	ReviewerID string `json:"reviewerID" binding:"required,uuid"`
}

// PlanActionRequest identifies the company acting on its own draft or
// plan (file, renew, hide).
type PlanActionRequest struct {
	RequesterID string `json:"requesterID" binding:"required,uuid"`
}

// ListPlansParams defines query parameters for listing a company's plans.
type ListPlansParams struct {
	IncludeHidden bool `form:"includeHidden,default=false"`
}

// ToPlanResponse converts a domain.Plan to PlanResponse, deriving the
// status at the given instant.
func ToPlanResponse(p *domain.Plan, now time.Time) PlanResponse {
	return PlanResponse{
		PlanID:          p.PlanID,
		PlannerID:       p.PlannerID,
		ProductName:     p.ProductName,
		Description:     p.Description,
		CostsMeans:      p.Costs.Means,
		CostsRaw:        p.Costs.Resources,
		CostsLabour:     p.Costs.Labour,
		ProductUnit:     p.ProductUnit,
		Amount:          p.Amount,
		TimeframeDays:   p.TimeframeDays,
		IsPublicService: p.IsPublicService,
		Status:          p.StatusAsOf(now),
		FilingDate:      p.FilingDate,
		ApprovalDate:    p.ApprovalDate,
		RejectionDate:   p.RejectionDate,
		ActivationDate:  p.ActivationDate,
		ExpirationDate:  p.ExpirationDate,
		CooperationID:   p.CooperationID,
		PricePerUnit:    p.PricePerUnit,
		HiddenByUser:    p.HiddenByUser,
	}
}

// ToPlanResponses converts a slice of domain.Plan to []PlanResponse.
func ToPlanResponses(plans []domain.Plan, now time.Time) []PlanResponse {
	res := make([]PlanResponse, len(plans))
	for i, p := range plans {
		res[i] = ToPlanResponse(&p, now)
	}
	return res
}
