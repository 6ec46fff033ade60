package models

import "time"

// CoordinationTenure represents one tenure row. A partial unique index on
// (cooperation_id) WHERE end_date IS NULL enforces the single open tenure.
type CoordinationTenure struct {
	TenureID      string     `db:"tenure_id"`
	CooperationID string     `db:"cooperation_id"`
	CoordinatorID string     `db:"coordinator_id"`
	StartDate     time.Time  `db:"start_date"`
	EndDate       *time.Time `db:"end_date"`
}

// CoordinationTransferRequest represents one transfer request row. A
// partial unique index on (tenure_id) WHERE status = 'PENDING' enforces
// at most one pending request per tenure.
type CoordinationTransferRequest struct {
	RequestID    string    `db:"request_id"`
	TenureID     string    `db:"tenure_id"`
	CandidateID  string    `db:"candidate_id"`
	CreationDate time.Time `db:"creation_date"`
	Status       string    `db:"status"`
}
