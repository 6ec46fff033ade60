package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanStatus is the lifecycle state of a filed plan. It is always derived
// from the date fields and never stored, so state and history cannot drift
// apart.
type PlanStatus string

const (
	PlanFiled    PlanStatus = "FILED"
	PlanApproved PlanStatus = "APPROVED" // approved, activation still pending
	PlanActive   PlanStatus = "ACTIVE"
	PlanExpired  PlanStatus = "EXPIRED"
	PlanRejected PlanStatus = "REJECTED"
)

// PlanDraft is an editable production plan that has not been filed yet.
// Filing converts it into an immutable Plan.
type PlanDraft struct {
	DraftID         string          `json:"draftID"`
	PlannerID       string          `json:"plannerID"`
	Costs           ProductionCosts `json:"costs"`
	ProductName     string          `json:"productName"`
	Description     string          `json:"description"`
	ProductUnit     string          `json:"productUnit"`
	Amount          int64           `json:"amount"`
	TimeframeDays   int             `json:"timeframeDays"`
	IsPublicService bool            `json:"isPublicService"`
	CreationDate    time.Time       `json:"creationDate"`
}

// Plan is a company's filed production commitment.
type Plan struct {
	PlanID          string          `json:"planID"`
	PlannerID       string          `json:"plannerID"`
	Costs           ProductionCosts `json:"costs"`
	ProductName     string          `json:"productName"`
	Description     string          `json:"description"`
	ProductUnit     string          `json:"productUnit"`
	Amount          int64           `json:"amount"`
	TimeframeDays   int             `json:"timeframeDays"`
	IsPublicService bool            `json:"isPublicService"`
	CreationDate    time.Time       `json:"creationDate"`
	FilingDate      time.Time       `json:"filingDate"`
	ApprovalDate    *time.Time      `json:"approvalDate,omitempty"`
	RejectionDate   *time.Time      `json:"rejectionDate,omitempty"`
	ActivationDate  *time.Time      `json:"activationDate,omitempty"`
	ExpirationDate  *time.Time      `json:"expirationDate,omitempty"`

	// At most one of CooperationID / RequestedCooperationID is set.
	CooperationID          *string `json:"cooperationID,omitempty"`
	RequestedCooperationID *string `json:"requestedCooperationID,omitempty"`

	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	HiddenByUser bool            `json:"hiddenByUser"`
}

// IsApproved reports whether the plan has been approved.
func (p *Plan) IsApproved() bool {
	return p.ApprovalDate != nil && p.RejectionDate == nil
}

// IsRejected reports whether the plan has been rejected.
func (p *Plan) IsRejected() bool {
	return p.RejectionDate != nil && p.ApprovalDate == nil
}

// IsActiveAsOf reports whether the plan is active at the given instant.
func (p *Plan) IsActiveAsOf(now time.Time) bool {
	return p.ActivationDate != nil &&
		!p.ActivationDate.After(now) &&
		!p.IsExpiredAsOf(now)
}

// IsExpiredAsOf reports whether the plan's timeframe has elapsed at the
// given instant.
func (p *Plan) IsExpiredAsOf(now time.Time) bool {
	return p.ExpirationDate != nil && !now.Before(*p.ExpirationDate)
}

// StatusAsOf derives the lifecycle state at the given instant.
func (p *Plan) StatusAsOf(now time.Time) PlanStatus {
	switch {
	case p.IsRejected():
		return PlanRejected
	case p.IsExpiredAsOf(now):
		return PlanExpired
	case p.IsActiveAsOf(now):
		return PlanActive
	case p.IsApproved():
		return PlanApproved
	default:
		return PlanFiled
	}
}

// ExpirationFromActivation computes the expiration instant for an
// activation date, applying the plan's timeframe in days.
func (p *Plan) ExpirationFromActivation(activation time.Time) time.Time {
	return activation.AddDate(0, 0, p.TimeframeDays)
}

// CostPerUnit returns the plan's solo cost per produced unit.
// The amount is guaranteed positive by the filing validation.
func (p *Plan) CostPerUnit() decimal.Decimal {
	return p.Costs.Total().Div(decimal.NewFromInt(p.Amount))
}

// IsCooperating reports whether the plan is a member of a cooperation.
func (p *Plan) IsCooperating() bool {
	return p.CooperationID != nil
}
