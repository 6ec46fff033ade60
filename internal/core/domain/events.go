package domain

import "time"

// Notification events are fire-and-forget payloads handed to the
// notification sink. Formatting and delivery belong to the collaborator.

// PlanRejectedEvent is emitted when the accounting authority rejects a plan.
type PlanRejectedEvent struct {
	PlanID        string
	PlannerID     string
	ProductName   string
	RejectionDate time.Time
}

// CooperationRequestedEvent is emitted when a plan asks to join a
// cooperation; the current coordinator is the addressee.
type CooperationRequestedEvent struct {
	PlanID        string
	PlannerID     string
	CooperationID string
	CoordinatorID string
}

// CoordinationTransferRequestedEvent is emitted when a coordinator asks a
// candidate company to take over.
type CoordinationTransferRequestedEvent struct {
	RequestID     string
	CooperationID string
	CandidateID   string
}
