package services

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PricingSvcFacade computes unit prices and the compensation transfers
// that keep cooperating companies whole.
type PricingSvcFacade interface {
	// ComputePrice returns the plan's current price per unit: the solo
	// cost per unit for a non-cooperating plan, the shared cooperative
	// price otherwise.
	ComputePrice(ctx context.Context, plan *domain.Plan) (decimal.Decimal, error)

	// RepriceCooperation assigns the shared unit price to every member
	// plan and computes the compensation transfers of this membership
	// change. Returned plans carry the new price; transfers are prepared
	// but not yet persisted.
	RepriceCooperation(ctx context.Context, cooperation *domain.Cooperation, memberPlans []domain.Plan) ([]domain.Plan, []domain.Transfer, error)
}
