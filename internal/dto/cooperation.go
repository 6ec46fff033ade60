package dto

import (
	"time"

	"github.com/planwerk/planwerk_app/internal/core/domain"
)

// CreateCooperationRequest defines the data needed to found a
// cooperation. The founding company becomes the first coordinator.
type CreateCooperationRequest struct {
	CoordinatorID string `json:"coordinatorID" binding:"required,uuid"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Definition    string `json:"definition"`
}

// RequestCooperationRequest asks for a plan to join a cooperation.
type RequestCooperationRequest struct {
	RequesterID   string `json:"requesterID" binding:"required,uuid"`
	PlanID        string `json:"planID" binding:"required,uuid"`
	CooperationID string `json:"cooperationID" binding:"required,uuid"`
}

// AcceptCooperationRequest admits a requesting plan; only the current
// coordinator may send it.
type AcceptCooperationRequest struct {
	CoordinatorID string `json:"coordinatorID" binding:"required,uuid"`
	PlanID        string `json:"planID" binding:"required,uuid"`
	CooperationID string `json:"cooperationID" binding:"required,uuid"`
}

// DenyCooperationRequest refuses a requesting plan.
type DenyCooperationRequest struct {
	CoordinatorID string `json:"coordinatorID" binding:"required,uuid"`
	PlanID        string `json:"planID" binding:"required,uuid"`
	CooperationID string `json:"cooperationID" binding:"required,uuid"`
}

// EndCooperationRequest removes a plan from its cooperation.
type EndCooperationRequest struct {
	RequesterID string `json:"requesterID" binding:"required,uuid"`
	PlanID      string `json:"planID" binding:"required,uuid"`
}

// CooperationResponse defines the data returned for a cooperation.
type CooperationResponse struct {
	CooperationID string    `json:"cooperationID"`
	Name          string    `json:"name"`
	Definition    string    `json:"definition"`
	AccountID     string    `json:"accountID"`
	CreationDate  time.Time `json:"creationDate"`
	MemberPlanIDs []string  `json:"memberPlanIDs"`
}

// ToCooperationResponse converts a domain.Cooperation to
// CooperationResponse.
func ToCooperationResponse(c *domain.Cooperation) CooperationResponse {
	return CooperationResponse{
		CooperationID: c.CooperationID,
		Name:          c.Name,
		Definition:    c.Definition,
		AccountID:     c.AccountID,
		CreationDate:  c.CreationDate,
		MemberPlanIDs: c.MemberPlanIDs,
	}
}

// ToCooperationResponses converts a slice of domain.Cooperation to
// []CooperationResponse.
func ToCooperationResponses(coops []domain.Cooperation) []CooperationResponse {
	res := make([]CooperationResponse, len(coops))
	for i, c := range coops {
		res[i] = ToCooperationResponse(&c)
	}
	return res
}
