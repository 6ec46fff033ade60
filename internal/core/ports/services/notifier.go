package services

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Notifier is the fire-and-forget notification sink. Implementations own
// formatting and delivery; the core only hands over data.
type Notifier interface {
	PlanRejected(ctx context.Context, event domain.PlanRejectedEvent)
	CooperationRequested(ctx context.Context, event domain.CooperationRequestedEvent)
	CoordinationTransferRequested(ctx context.Context, event domain.CoordinationTransferRequestedEvent)
}

// PayoutFactorProvider supplies the external multiplier applied when
// distributing labour certificates. The factor is not computed here.
type PayoutFactorProvider interface {
	PayoutFactor(ctx context.Context) decimal.Decimal
}
