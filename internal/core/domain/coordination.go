package domain

import "time"

// CoordinationTenure records a company's authority over a cooperation for a
// bounded period. Exactly one tenure per cooperation has EndDate == nil at
// any time: the current coordinator.
type CoordinationTenure struct {
	TenureID      string     `json:"tenureID"`
	CooperationID string     `json:"cooperationID"`
	CoordinatorID string     `json:"coordinatorID"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
}

// IsOpen reports whether this tenure is the current one.
func (t *CoordinationTenure) IsOpen() bool {
	return t.EndDate == nil
}

// TransferRequestStatus is the state of a coordination transfer request.
type TransferRequestStatus string

const (
	TransferRequestPending   TransferRequestStatus = "PENDING"
	TransferRequestAccepted  TransferRequestStatus = "ACCEPTED"
	TransferRequestDenied    TransferRequestStatus = "DENIED"
	TransferRequestCancelled TransferRequestStatus = "CANCELLED"
)

// CoordinationTransferRequest asks a candidate company to take over the
// coordination of a cooperation. At most one pending request exists per
// tenure at any time.
type CoordinationTransferRequest struct {
	RequestID    string                `json:"requestID"`
	TenureID     string                `json:"tenureID"`
	CandidateID  string                `json:"candidateID"`
	CreationDate time.Time             `json:"creationDate"`
	Status       TransferRequestStatus `json:"status"`
}

// IsPending reports whether the request is still open.
func (r *CoordinationTransferRequest) IsPending() bool {
	return r.Status == TransferRequestPending
}
