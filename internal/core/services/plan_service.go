package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

var (
	ErrNegativeCosts     = errors.New("production costs must not be negative")
	ErrPlanNotExpired    = errors.New("plan is not expired")
	ErrPlanNotReviewable = errors.New("plan was already reviewed")
)

// planService owns the plan lifecycle state machine. Lifecycle state is
// derived from date fields; every transition here only stamps dates.
type planService struct {
	planRepo       portsrepo.PlanRepositoryFacade
	companyRepo    portsrepo.CompanyRepositoryFacade
	ledgerSvc      portssvc.LedgerSvcFacade
	pricingSvc     portssvc.PricingSvcFacade
	cooperationSvc portssvc.CooperationSvcFacade
	notifier       portssvc.Notifier
	clock          portssvc.Clock
}

// NewPlanService creates a new plan service.
func NewPlanService(
	planRepo portsrepo.PlanRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	pricingSvc portssvc.PricingSvcFacade,
	cooperationSvc portssvc.CooperationSvcFacade,
	notifier portssvc.Notifier,
	clock portssvc.Clock,
) portssvc.PlanSvcFacade {
	return &planService{
		planRepo:       planRepo,
		companyRepo:    companyRepo,
		ledgerSvc:      ledgerSvc,
		pricingSvc:     pricingSvc,
		cooperationSvc: cooperationSvc,
		notifier:       notifier,
		clock:          clock,
	}
}

var _ portssvc.PlanSvcFacade = (*planService)(nil)

func validateCosts(costs domain.ProductionCosts) error {
	if costs.Means.IsNegative() || costs.Resources.IsNegative() || costs.Labour.IsNegative() {
		return fmt.Errorf("%w: %s/%s/%s", ErrNegativeCosts,
			costs.Means.String(), costs.Resources.String(), costs.Labour.String())
	}
	return nil
}

// CreateDraft stores a new editable draft for the planner.
func (s *planService) CreateDraft(ctx context.Context, req dto.CreateDraftRequest) (*domain.PlanDraft, error) {
	costs := domain.ProductionCosts{
		Means:     req.CostsMeans,
		Resources: req.CostsRaw,
		Labour:    req.CostsLabour,
	}
	if err := validateCosts(costs); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.PlannerID); err != nil {
		return nil, err
	}

	draft := domain.PlanDraft{
		DraftID:         uuid.NewString(),
		PlannerID:       req.PlannerID,
		Costs:           costs,
		ProductName:     req.ProductName,
		Description:     req.Description,
		ProductUnit:     req.ProductUnit,
		Amount:          req.Amount,
		TimeframeDays:   req.TimeframeDays,
		IsPublicService: req.IsPublic,
		CreationDate:    s.clock.Now(),
	}

	if err := s.planRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return &draft, nil
}

// ListDrafts lists the drafts of a company.
func (s *planService) ListDrafts(ctx context.Context, companyID string) ([]domain.PlanDraft, error) {
	drafts, err := s.planRepo.ListDraftsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	if drafts == nil {
		return []domain.PlanDraft{}, nil
	}
	return drafts, nil
}

// DeleteDraft removes a draft of the requesting company. Drafts are the
// only deletable plan records.
func (s *planService) DeleteDraft(ctx context.Context, draftID, requesterID string) error {
	draft, err := s.planRepo.FindDraftByID(ctx, draftID)
	if err != nil {
		return err
	}
	if draft.PlannerID != requesterID {
		return fmt.Errorf("%w: draft %s belongs to another company", apperrors.ErrForbidden, draftID)
	}
	return s.planRepo.DeleteDraft(ctx, draftID)
}

// FilePlan converts a draft into a filed plan. The draft is deleted and
// the plan created in one atomic unit; from here on the plan record is
// immutable except for its lifecycle dates.
func (s *planService) FilePlan(ctx context.Context, draftID, requesterID string) (*domain.Plan, error) {
	draft, err := s.planRepo.FindDraftByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.PlannerID != requesterID {
		return nil, fmt.Errorf("%w: draft %s belongs to another company", apperrors.ErrForbidden, draftID)
	}

	plan := domain.Plan{
		PlanID:          uuid.NewString(),
		PlannerID:       draft.PlannerID,
		Costs:           draft.Costs,
		ProductName:     draft.ProductName,
		Description:     draft.Description,
		ProductUnit:     draft.ProductUnit,
		Amount:          draft.Amount,
		TimeframeDays:   draft.TimeframeDays,
		IsPublicService: draft.IsPublicService,
		CreationDate:    draft.CreationDate,
		FilingDate:      s.clock.Now(),
		PricePerUnit:    decimal.Zero,
	}

	if err := s.planRepo.FilePlanFromDraft(ctx, plan, draftID); err != nil {
		return nil, fmt.Errorf("failed to file plan from draft %s: %w", draftID, err)
	}
	return &plan, nil
}

// creditTransfers prepares the transfers that credit the planning company
// for its declared costs. Public service plans draw on public credit
// types; zero cost components produce no transfer.
func (s *planService) creditTransfers(ctx context.Context, plan *domain.Plan, company *domain.Company, sa *domain.SocialAccounting) ([]domain.Transfer, error) {
	type leg struct {
		value     decimal.Decimal
		creditAcc string
		kind      domain.TransferType
		pubKind   domain.TransferType
	}
	legs := []leg{
		{plan.Costs.Means, company.MeansAccountID, domain.TransferCreditP, domain.TransferCreditPublicP},
		{plan.Costs.Resources, company.ResourcesAccountID, domain.TransferCreditR, domain.TransferCreditPublicR},
		{plan.Costs.Labour, company.LabourAccountID, domain.TransferCreditA, domain.TransferCreditPublicA},
	}

	now := s.clock.Now()
	transfers := make([]domain.Transfer, 0, len(legs))
	for _, l := range legs {
		if l.value.IsZero() {
			continue
		}
		transferType := l.kind
		if plan.IsPublicService {
			transferType = l.pubKind
		}
		transfer, err := s.ledgerSvc.PrepareTransfer(ctx, sa.AccountID, l.creditAcc, l.value, transferType, now)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, *transfer)
	}
	return transfers, nil
}

// ApprovePlan approves a filed plan: it stamps approval and activation,
// sets the initial price and credits the planning company, all atomically.
// A plan that was already reviewed cannot be approved again.
func (s *planService) ApprovePlan(ctx context.Context, planID, reviewerID string) (*domain.Plan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.IsApproved() || plan.IsRejected() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrPlanNotReviewable.Error())
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, plan.PlannerID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	sa, err := s.companyRepo.EnsureSocialAccounting(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure social accounting: %w", err)
	}

	plan.ApprovalDate = &now
	plan.ActivationDate = &now
	expiration := plan.ExpirationFromActivation(now)
	plan.ExpirationDate = &expiration

	price, err := s.pricingSvc.ComputePrice(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.PricePerUnit = price

	credits, err := s.creditTransfers(ctx, plan, company, sa)
	if err != nil {
		return nil, err
	}

	// The repository guards the update on the plan being unreviewed, so a
	// concurrent approval or rejection loses cleanly.
	if err := s.planRepo.ApprovePlan(ctx, *plan, credits); err != nil {
		return nil, err
	}

	logger.Info("Plan approved",
		slog.String("plan_id", plan.PlanID),
		slog.String("reviewer_id", reviewerID),
		slog.String("price_per_unit", price.String()))
	return plan, nil
}

// RejectPlan rejects a filed plan. Rejection is terminal: rejecting an
// already-rejected plan is reported as IsPlanRejected=false, not an error.
func (s *planService) RejectPlan(ctx context.Context, planID, reviewerID string) (*dto.RejectPlanResponse, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.IsRejected() {
		return &dto.RejectPlanResponse{PlanID: planID, IsPlanRejected: false}, nil
	}
	if plan.IsApproved() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrPlanNotReviewable.Error())
	}

	now := s.clock.Now()
	plan.RejectionDate = &now

	if err := s.planRepo.RejectPlan(ctx, *plan); err != nil {
		if errors.Is(err, apperrors.ErrInvalidStateTransition) {
			// A concurrent reviewer got there first.
			current, findErr := s.planRepo.FindPlanByID(ctx, planID)
			if findErr == nil && current.IsRejected() {
				return &dto.RejectPlanResponse{PlanID: planID, IsPlanRejected: false}, nil
			}
		}
		return nil, err
	}

	s.notifier.PlanRejected(ctx, domain.PlanRejectedEvent{
		PlanID:        plan.PlanID,
		PlannerID:     plan.PlannerID,
		ProductName:   plan.ProductName,
		RejectionDate: now,
	})

	return &dto.RejectPlanResponse{PlanID: planID, IsPlanRejected: true}, nil
}

// RenewPlan produces a fresh draft pre-filled from an expired plan.
func (s *planService) RenewPlan(ctx context.Context, planID, requesterID string) (*domain.PlanDraft, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.PlannerID != requesterID {
		return nil, fmt.Errorf("%w: plan %s belongs to another company", apperrors.ErrForbidden, planID)
	}
	if !plan.IsExpiredAsOf(s.clock.Now()) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrPlanNotExpired.Error())
	}

	draft := domain.PlanDraft{
		DraftID:         uuid.NewString(),
		PlannerID:       plan.PlannerID,
		Costs:           plan.Costs,
		ProductName:     plan.ProductName,
		Description:     plan.Description,
		ProductUnit:     plan.ProductUnit,
		Amount:          plan.Amount,
		TimeframeDays:   plan.TimeframeDays,
		IsPublicService: plan.IsPublicService,
		CreationDate:    s.clock.Now(),
	}
	if err := s.planRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save renewal draft: %w", err)
	}
	return &draft, nil
}

// HidePlan hides an expired plan from default listings. The record stays;
// only the listing default changes.
func (s *planService) HidePlan(ctx context.Context, planID, requesterID string) error {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan.PlannerID != requesterID {
		return fmt.Errorf("%w: plan %s belongs to another company", apperrors.ErrForbidden, planID)
	}
	if !plan.IsExpiredAsOf(s.clock.Now()) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrPlanNotExpired.Error())
	}

	plan.HiddenByUser = true
	return s.planRepo.UpdatePlan(ctx, *plan)
}

// GetPlan retrieves a single plan.
func (s *planService) GetPlan(ctx context.Context, planID string) (*domain.Plan, error) {
	return s.planRepo.FindPlanByID(ctx, planID)
}

// ListPlansByCompany lists a company's plans.
func (s *planService) ListPlansByCompany(ctx context.Context, companyID string, includeHidden bool) ([]domain.Plan, error) {
	plans, err := s.planRepo.ListPlansByCompany(ctx, companyID, includeHidden)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	if plans == nil {
		return []domain.Plan{}, nil
	}
	return plans, nil
}

// ListActivePlans lists all currently active plans.
func (s *planService) ListActivePlans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.planRepo.ListActivePlans(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list active plans: %w", err)
	}
	if plans == nil {
		return []domain.Plan{}, nil
	}
	return plans, nil
}

// SynchronizedActivation is the periodic batch pass. It activates plans
// whose activation was deferred and settles expired plans that still hold
// a cooperation membership or a pending request. Both halves only touch
// records that need work, so running the pass twice without a time change
// is a no-op.
func (s *planService) SynchronizedActivation(ctx context.Context) (*dto.SynchronizedActivationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := s.clock.Now()

	awaiting, err := s.planRepo.ListPlansAwaitingActivation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans awaiting activation: %w", err)
	}
	activated := 0
	for _, plan := range awaiting {
		plan.ActivationDate = &now
		expiration := plan.ExpirationFromActivation(now)
		plan.ExpirationDate = &expiration
		if err := s.planRepo.UpdatePlanSchedule(ctx, plan); err != nil {
			logger.Error("Failed to activate plan",
				slog.String("plan_id", plan.PlanID),
				slog.String("error", err.Error()))
			return nil, err
		}
		activated++
	}

	toSettle, err := s.planRepo.ListExpiredPlansToSettle(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired plans: %w", err)
	}
	expired := 0
	for _, plan := range toSettle {
		if err := s.cooperationSvc.SettleExpiredPlan(ctx, &plan); err != nil {
			logger.Error("Failed to settle expired plan",
				slog.String("plan_id", plan.PlanID),
				slog.String("error", err.Error()))
			return nil, err
		}
		expired++
	}

	logger.Info("Synchronized activation pass finished",
		slog.Int("activated", activated),
		slog.Int("expired", expired))
	return &dto.SynchronizedActivationResponse{
		ActivatedPlans: activated,
		ExpiredPlans:   expired,
	}, nil
}
