package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

var (
	ErrOwnProduct = errors.New("company cannot consume its own product")
)

// Productive consumption purposes.
const (
	PurposeMeansOfProduction = "MEANS_OF_PRODUCTION"
	PurposeRawMaterials      = "RAW_MATERIALS"
)

// consumptionService settles consumption of planned products against the
// ledger at the plan's current price.
type consumptionService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	planRepo    portsrepo.PlanReader
	pricingSvc  portssvc.PricingSvcFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	clock       portssvc.Clock
}

// NewConsumptionService creates a new consumption service.
func NewConsumptionService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	planRepo portsrepo.PlanReader,
	pricingSvc portssvc.PricingSvcFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	clock portssvc.Clock,
) portssvc.ConsumptionSvcFacade {
	return &consumptionService{
		companyRepo: companyRepo,
		planRepo:    planRepo,
		pricingSvc:  pricingSvc,
		ledgerSvc:   ledgerSvc,
		clock:       clock,
	}
}

var _ portssvc.ConsumptionSvcFacade = (*consumptionService)(nil)

// consumablePlan fetches the plan and verifies it is active.
func (s *consumptionService) consumablePlan(ctx context.Context, planID string) (*domain.Plan, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActiveAsOf(s.clock.Now()) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrPlanNotActive.Error())
	}
	return plan, nil
}

// RegisterPrivateConsumption debits the consuming member and credits the
// plan's product account at price times amount. Public service plans are
// free; their consumption is recorded as a zero-value transfer.
func (s *consumptionService) RegisterPrivateConsumption(ctx context.Context, req dto.RegisterPrivateConsumptionRequest) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, err := s.companyRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	plan, err := s.consumablePlan(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	planner, err := s.companyRepo.FindCompanyByID(ctx, plan.PlannerID)
	if err != nil {
		return nil, err
	}

	price, err := s.pricingSvc.ComputePrice(ctx, plan)
	if err != nil {
		return nil, err
	}
	value := price.Mul(decimal.NewFromInt(req.Amount))

	transfer, err := s.ledgerSvc.PostTransfer(ctx, member.AccountID, planner.ProductAccountID, value, domain.TransferPrivateConsumption, s.clock.Now())
	if err != nil {
		return nil, err
	}

	logger.Info("Private consumption registered",
		slog.String("member_id", req.MemberID),
		slog.String("plan_id", req.PlanID),
		slog.String("value", value.String()))
	return transfer, nil
}

// RegisterProductiveConsumption debits the consuming company's means or
// resources account and credits the plan's product account. Consuming
// one's own product is not allowed.
func (s *consumptionService) RegisterProductiveConsumption(ctx context.Context, req dto.RegisterProductiveConsumptionRequest) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	company, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	plan, err := s.consumablePlan(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan.PlannerID == req.CompanyID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrOwnProduct.Error())
	}
	planner, err := s.companyRepo.FindCompanyByID(ctx, plan.PlannerID)
	if err != nil {
		return nil, err
	}

	var debitAccountID string
	var transferType domain.TransferType
	switch req.Purpose {
	case PurposeMeansOfProduction:
		debitAccountID = company.MeansAccountID
		transferType = domain.TransferProductiveConsumptionP
	case PurposeRawMaterials:
		debitAccountID = company.ResourcesAccountID
		transferType = domain.TransferProductiveConsumptionR
	default:
		return nil, fmt.Errorf("%w: unknown consumption purpose %q", apperrors.ErrValidation, req.Purpose)
	}

	price, err := s.pricingSvc.ComputePrice(ctx, plan)
	if err != nil {
		return nil, err
	}
	value := price.Mul(decimal.NewFromInt(req.Amount))

	transfer, err := s.ledgerSvc.PostTransfer(ctx, debitAccountID, planner.ProductAccountID, value, transferType, s.clock.Now())
	if err != nil {
		return nil, err
	}

	logger.Info("Productive consumption registered",
		slog.String("company_id", req.CompanyID),
		slog.String("plan_id", req.PlanID),
		slog.String("purpose", req.Purpose),
		slog.String("value", value.String()))
	return transfer, nil
}
