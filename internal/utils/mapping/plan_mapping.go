package mapping

import (
	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/models"
)

// ToModelPlanDraft converts a domain PlanDraft to a model PlanDraft
func ToModelPlanDraft(d domain.PlanDraft) models.PlanDraft {
	return models.PlanDraft{
		DraftID:         d.DraftID,
		PlannerID:       d.PlannerID,
		CostsMeans:      d.Costs.Means,
		CostsRaw:        d.Costs.Resources,
		CostsLabour:     d.Costs.Labour,
		ProductName:     d.ProductName,
		Description:     d.Description,
		ProductUnit:     d.ProductUnit,
		Amount:          d.Amount,
		TimeframeDays:   d.TimeframeDays,
		IsPublicService: d.IsPublicService,
		CreationDate:    d.CreationDate,
	}
}

// ToDomainPlanDraft converts a model PlanDraft to a domain PlanDraft
func ToDomainPlanDraft(m models.PlanDraft) domain.PlanDraft {
	return domain.PlanDraft{
		DraftID:   m.DraftID,
		PlannerID: m.PlannerID,
		Costs: domain.ProductionCosts{
			Means:     m.CostsMeans,
			Resources: m.CostsRaw,
			Labour:    m.CostsLabour,
		},
		ProductName:     m.ProductName,
		Description:     m.Description,
		ProductUnit:     m.ProductUnit,
		Amount:          m.Amount,
		TimeframeDays:   m.TimeframeDays,
		IsPublicService: m.IsPublicService,
		CreationDate:    m.CreationDate,
	}
}

// ToDomainPlanDraftSlice converts a slice of model PlanDrafts to a slice of domain PlanDrafts
func ToDomainPlanDraftSlice(ms []models.PlanDraft) []domain.PlanDraft {
	ds := make([]domain.PlanDraft, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPlanDraft(m)
	}
	return ds
}

// ToModelPlan converts a domain Plan to a model Plan
func ToModelPlan(d domain.Plan) models.Plan {
	return models.Plan{
		PlanID:                 d.PlanID,
		PlannerID:              d.PlannerID,
		CostsMeans:             d.Costs.Means,
		CostsRaw:               d.Costs.Resources,
		CostsLabour:            d.Costs.Labour,
		ProductName:            d.ProductName,
		Description:            d.Description,
		ProductUnit:            d.ProductUnit,
		Amount:                 d.Amount,
		TimeframeDays:          d.TimeframeDays,
		IsPublicService:        d.IsPublicService,
		CreationDate:           d.CreationDate,
		FilingDate:             d.FilingDate,
		ApprovalDate:           d.ApprovalDate,
		RejectionDate:          d.RejectionDate,
		ActivationDate:         d.ActivationDate,
		ExpirationDate:         d.ExpirationDate,
		CooperationID:          d.CooperationID,
		RequestedCooperationID: d.RequestedCooperationID,
		PricePerUnit:           d.PricePerUnit,
		HiddenByUser:           d.HiddenByUser,
	}
}

// ToDomainPlan converts a model Plan to a domain Plan
func ToDomainPlan(m models.Plan) domain.Plan {
	return domain.Plan{
		PlanID:    m.PlanID,
		PlannerID: m.PlannerID,
		Costs: domain.ProductionCosts{
			Means:     m.CostsMeans,
			Resources: m.CostsRaw,
			Labour:    m.CostsLabour,
		},
		ProductName:            m.ProductName,
		Description:            m.Description,
		ProductUnit:            m.ProductUnit,
		Amount:                 m.Amount,
		TimeframeDays:          m.TimeframeDays,
		IsPublicService:        m.IsPublicService,
		CreationDate:           m.CreationDate,
		FilingDate:             m.FilingDate,
		ApprovalDate:           m.ApprovalDate,
		RejectionDate:          m.RejectionDate,
		ActivationDate:         m.ActivationDate,
		ExpirationDate:         m.ExpirationDate,
		CooperationID:          m.CooperationID,
		RequestedCooperationID: m.RequestedCooperationID,
		PricePerUnit:           m.PricePerUnit,
		HiddenByUser:           m.HiddenByUser,
	}
}

// ToDomainPlanSlice converts a slice of model Plans to a slice of domain Plans
func ToDomainPlanSlice(ms []models.Plan) []domain.Plan {
	ds := make([]domain.Plan, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPlan(m)
	}
	return ds
}
