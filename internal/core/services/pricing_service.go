package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
)

var (
	ErrNoMemberPlans = errors.New("cooperation has no member plans to price")
)

// pricingService computes unit prices and the compensation transfers of
// cooperation membership changes.
type pricingService struct {
	companyRepo portsrepo.CompanyReader
	ledgerSvc   portssvc.LedgerSvcFacade
	clock       portssvc.Clock
}

// NewPricingService creates a new pricing service.
func NewPricingService(companyRepo portsrepo.CompanyReader, ledgerSvc portssvc.LedgerSvcFacade, clock portssvc.Clock) portssvc.PricingSvcFacade {
	return &pricingService{
		companyRepo: companyRepo,
		ledgerSvc:   ledgerSvc,
		clock:       clock,
	}
}

var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// ComputePrice returns the plan's current price per unit. Public service
// plans are free to consumers; their costs are covered by public credit.
func (s *pricingService) ComputePrice(ctx context.Context, plan *domain.Plan) (decimal.Decimal, error) {
	if plan.IsPublicService {
		return decimal.Zero, nil
	}
	if !plan.IsCooperating() {
		return plan.CostPerUnit(), nil
	}
	return plan.PricePerUnit, nil
}

// cooperativePrice is the shared unit price of a cooperation: the sum of
// all member plan costs divided by the sum of all planned amounts.
func cooperativePrice(memberPlans []domain.Plan) (decimal.Decimal, error) {
	totalCosts := decimal.Zero
	totalAmount := decimal.Zero
	for _, p := range memberPlans {
		totalCosts = totalCosts.Add(p.Costs.Total())
		totalAmount = totalAmount.Add(decimal.NewFromInt(p.Amount))
	}
	if totalAmount.IsZero() {
		return decimal.Zero, ErrNoMemberPlans
	}
	return totalCosts.Div(totalAmount), nil
}

// RepriceCooperation assigns the shared unit price to every member plan
// and computes the compensation transfers of this membership change.
//
// For each member plan the difference between its declared costs and its
// revenue at the shared price decides the direction: an under-compensated
// plan receives compensation_for_coop (cooperation account debited, the
// planner's product account credited), an over-compensated plan pays
// compensation_for_company the other way. Differences of zero produce no
// transfer. The differences sum to zero across the cooperation, so the
// cooperation account always nets zero per membership change.
func (s *pricingService) RepriceCooperation(ctx context.Context, cooperation *domain.Cooperation, memberPlans []domain.Plan) ([]domain.Plan, []domain.Transfer, error) {
	if len(memberPlans) == 0 {
		return []domain.Plan{}, []domain.Transfer{}, nil
	}

	price, err := cooperativePrice(memberPlans)
	if err != nil {
		return nil, nil, err
	}

	now := s.clock.Now()
	repriced := make([]domain.Plan, len(memberPlans))
	transfers := make([]domain.Transfer, 0, len(memberPlans))

	for i, plan := range memberPlans {
		plan.PricePerUnit = price
		repriced[i] = plan

		company, err := s.companyRepo.FindCompanyByID(ctx, plan.PlannerID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve planner %s: %w", plan.PlannerID, err)
		}

		// diff > 0: revenue at the shared price falls short of the plan's
		// declared costs and the cooperation makes the planner whole.
		diff := plan.Costs.Total().Sub(price.Mul(decimal.NewFromInt(plan.Amount)))
		switch {
		case diff.IsPositive():
			transfer, err := s.ledgerSvc.PrepareTransfer(ctx, cooperation.AccountID, company.ProductAccountID, diff, domain.TransferCompensationForCoop, now)
			if err != nil {
				return nil, nil, err
			}
			transfers = append(transfers, *transfer)
		case diff.IsNegative():
			transfer, err := s.ledgerSvc.PrepareTransfer(ctx, company.ProductAccountID, cooperation.AccountID, diff.Neg(), domain.TransferCompensationForCompany, now)
			if err != nil {
				return nil, nil, err
			}
			transfers = append(transfers, *transfer)
		}
	}

	return repriced, transfers, nil
}
