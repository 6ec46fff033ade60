package payout

import (
	"context"

	"github.com/shopspring/decimal"
)

// FixedProvider supplies a payout factor fixed at configuration time.
type FixedProvider struct {
	factor decimal.Decimal
}

func NewFixedProvider(factor decimal.Decimal) *FixedProvider {
	return &FixedProvider{factor: factor}
}

func (p *FixedProvider) PayoutFactor(_ context.Context) decimal.Decimal {
	return p.factor
}
