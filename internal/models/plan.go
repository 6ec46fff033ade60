package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanDraft represents an editable draft row. Drafts are the only plan
// records that get deleted.
type PlanDraft struct {
	DraftID         string          `db:"draft_id"`
	PlannerID       string          `db:"planner_id"`
	CostsMeans      decimal.Decimal `db:"costs_means"`
	CostsRaw        decimal.Decimal `db:"costs_raw"`
	CostsLabour     decimal.Decimal `db:"costs_labour"`
	ProductName     string          `db:"product_name"`
	Description     string          `db:"description"`
	ProductUnit     string          `db:"product_unit"`
	Amount          int64           `db:"amount"`
	TimeframeDays   int             `db:"timeframe_days"`
	IsPublicService bool            `db:"is_public_service"`
	CreationDate    time.Time       `db:"creation_date"`
}

// Plan represents a filed plan row. Lifecycle state is derived from the
// nullable date columns, not stored.
type Plan struct {
	PlanID                 string          `db:"plan_id"`
	PlannerID              string          `db:"planner_id"`
	CostsMeans             decimal.Decimal `db:"costs_means"`
	CostsRaw               decimal.Decimal `db:"costs_raw"`
	CostsLabour            decimal.Decimal `db:"costs_labour"`
	ProductName            string          `db:"product_name"`
	Description            string          `db:"description"`
	ProductUnit            string          `db:"product_unit"`
	Amount                 int64           `db:"amount"`
	TimeframeDays          int             `db:"timeframe_days"`
	IsPublicService        bool            `db:"is_public_service"`
	CreationDate           time.Time       `db:"creation_date"`
	FilingDate             time.Time       `db:"filing_date"`
	ApprovalDate           *time.Time      `db:"approval_date"`
	RejectionDate          *time.Time      `db:"rejection_date"`
	ActivationDate         *time.Time      `db:"activation_date"`
	ExpirationDate         *time.Time      `db:"expiration_date"`
	CooperationID          *string         `db:"cooperation_id"`
	RequestedCooperationID *string         `db:"requested_cooperation_id"`
	PricePerUnit           decimal.Decimal `db:"price_per_unit"`
	HiddenByUser           bool            `db:"hidden_by_user"`
}
