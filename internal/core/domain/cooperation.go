package domain

import "time"

// Cooperation is a set of plans producing interchangeable goods at one
// shared unit price. Its account is debited and credited by the
// compensation transfers posted on membership changes.
type Cooperation struct {
	CooperationID string    `json:"cooperationID"`
	Name          string    `json:"name"`
	Definition    string    `json:"definition"`
	AccountID     string    `json:"accountID"`
	CreationDate  time.Time `json:"creationDate"`

	// MemberPlanIDs is the owned membership collection. It is mutated only
	// through AcceptCooperation / EndCooperation (and plan expiration).
	MemberPlanIDs []string `json:"memberPlanIDs"`
}
