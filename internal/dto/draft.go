package dto

import (
	"time"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDraftRequest defines the data needed to create a plan draft.
// Costs are labour hours, never negative.
type CreateDraftRequest struct {
	PlannerID     string          `json:"plannerID" binding:"required,uuid"`
	ProductName   string          `json:"productName" binding:"required,min=1,max=200"`
	Description   string          `json:"description"`
	CostsMeans    decimal.Decimal `json:"costsMeans" binding:"required"`
	CostsRaw      decimal.Decimal `json:"costsRaw" binding:"required"`
	CostsLabour   decimal.Decimal `json:"costsLabour" binding:"required"`
	ProductUnit   string          `json:"productUnit" binding:"required"`
	Amount        int64           `json:"amount" binding:"required,gt=0"`
	TimeframeDays int             `json:"timeframeDays" binding:"required,gt=0"`
	IsPublic      bool            `json:"isPublicService"`
}

// DraftResponse defines the data returned for a plan draft.
type DraftResponse struct {
	DraftID       string          `json:"draftID"`
	PlannerID     string          `json:"plannerID"`
	ProductName   string          `json:"productName"`
	Description   string          `json:"description"`
	CostsMeans    decimal.Decimal `json:"costsMeans"`
	CostsRaw      decimal.Decimal `json:"costsRaw"`
	CostsLabour   decimal.Decimal `json:"costsLabour"`
	ProductUnit   string          `json:"productUnit"`
	Amount        int64           `json:"amount"`
	TimeframeDays int             `json:"timeframeDays"`
	IsPublic      bool            `json:"isPublicService"`
	CreationDate  time.Time       `json:"creationDate"`
}

// ToDraftResponse converts a domain.PlanDraft to DraftResponse.
func ToDraftResponse(d *domain.PlanDraft) DraftResponse {
	return DraftResponse{
		DraftID:       d.DraftID,
		PlannerID:     d.PlannerID,
		ProductName:   d.ProductName,
		Description:   d.Description,
		CostsMeans:    d.Costs.Means,
		CostsRaw:      d.Costs.Resources,
		CostsLabour:   d.Costs.Labour,
		ProductUnit:   d.ProductUnit,
		Amount:        d.Amount,
		TimeframeDays: d.TimeframeDays,
		IsPublic:      d.IsPublicService,
		CreationDate:  d.CreationDate,
	}
}

// ToDraftResponses converts a slice of domain.PlanDraft to []DraftResponse.
func ToDraftResponses(drafts []domain.PlanDraft) []DraftResponse {
	res := make([]DraftResponse, len(drafts))
	for i, d := range drafts {
		res[i] = ToDraftResponse(&d)
	}
	return res
}
