package dto

import (
	"time"

	"github.com/planwerk/planwerk_app/internal/core/domain"
)

// RequestCoordinationTransferRequest asks a candidate company to take
// over coordination of a cooperation.
type RequestCoordinationTransferRequest struct {
	RequesterID   string `json:"requesterID" binding:"required,uuid"`
	CooperationID string `json:"cooperationID" binding:"required,uuid"`
	CandidateID   string `json:"candidateID" binding:"required,uuid"`
}

// AcceptCoordinationTransferRequest lets the candidate accept a pending
// transfer request.
type AcceptCoordinationTransferRequest struct {
	RequestID  string `json:"requestID" binding:"required,uuid"`
	AccepterID string `json:"accepterID" binding:"required,uuid"`
}

// CloseTransferActionRequest identifies the company denying or
// cancelling a transfer request.
type CloseTransferActionRequest struct {
	ActorID string `json:"actorID" binding:"required,uuid"`
}

// CloseTransferResponse reports the outcome of denying or cancelling a
// transfer request. Closing an already-closed request reports
// IsClosed=false instead of an error.
type CloseTransferResponse struct {
	RequestID string `json:"requestID"`
	IsClosed  bool   `json:"isClosed"`
}

// TenureResponse defines the data returned for a coordination tenure.
type TenureResponse struct {
	TenureID      string     `json:"tenureID"`
	CooperationID string     `json:"cooperationID"`
	CoordinatorID string     `json:"coordinatorID"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
}

// TransferRequestResponse defines the data returned for a coordination
// transfer request.
type TransferRequestResponse struct {
	RequestID    string                       `json:"requestID"`
	TenureID     string                       `json:"tenureID"`
	CandidateID  string                       `json:"candidateID"`
	CreationDate time.Time                    `json:"creationDate"`
	Status       domain.TransferRequestStatus `json:"status"`
}

// ToTenureResponse converts a domain.CoordinationTenure to
// TenureResponse.
func ToTenureResponse(t *domain.CoordinationTenure) TenureResponse {
	return TenureResponse{
		TenureID:      t.TenureID,
		CooperationID: t.CooperationID,
		CoordinatorID: t.CoordinatorID,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
	}
}

// ToTenureResponses converts a slice of domain.CoordinationTenure to
// []TenureResponse.
func ToTenureResponses(tenures []domain.CoordinationTenure) []TenureResponse {
	res := make([]TenureResponse, len(tenures))
	for i, t := range tenures {
		res[i] = ToTenureResponse(&t)
	}
	return res
}

// ToTransferRequestResponse converts a
// domain.CoordinationTransferRequest to TransferRequestResponse.
func ToTransferRequestResponse(r *domain.CoordinationTransferRequest) TransferRequestResponse {
	return TransferRequestResponse{
		RequestID:    r.RequestID,
		TenureID:     r.TenureID,
		CandidateID:  r.CandidateID,
		CreationDate: r.CreationDate,
		Status:       r.Status,
	}
}
