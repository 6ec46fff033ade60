package services

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/dto"
)

// ConsumptionSvcFacade settles consumption of planned products against
// the ledger.
type ConsumptionSvcFacade interface {
	// RegisterPrivateConsumption debits the consuming member and credits
	// the product account of the plan at price times amount.
	RegisterPrivateConsumption(ctx context.Context, req dto.RegisterPrivateConsumptionRequest) (*domain.Transfer, error)

	// RegisterProductiveConsumption debits the consuming company's means
	// or resources account and credits the product account of the plan. A
	// company cannot consume its own product.
	RegisterProductiveConsumption(ctx context.Context, req dto.RegisterProductiveConsumptionRequest) (*domain.Transfer, error)
}
