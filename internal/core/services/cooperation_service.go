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
	ErrPlanNotActive      = errors.New("plan is not active")
	ErrAlreadyCooperating = errors.New("plan already belongs to a cooperation")
	ErrPendingRequest     = errors.New("plan already has a pending cooperation request")
	ErrNoSuchRequest      = errors.New("plan has no matching cooperation request")
	ErrNotCooperating     = errors.New("plan does not belong to a cooperation")
)

// cooperationService owns cooperation membership. Every membership change
// goes through one repriced, compensated, atomic commit.
type cooperationService struct {
	cooperationRepo  portsrepo.CooperationRepositoryFacade
	coordinationRepo portsrepo.CoordinationReader
	planRepo         portsrepo.PlanRepositoryFacade
	pricingSvc       portssvc.PricingSvcFacade
	notifier         portssvc.Notifier
	clock            portssvc.Clock
}

// NewCooperationService creates a new cooperation service.
func NewCooperationService(
	cooperationRepo portsrepo.CooperationRepositoryFacade,
	coordinationRepo portsrepo.CoordinationReader,
	planRepo portsrepo.PlanRepositoryFacade,
	pricingSvc portssvc.PricingSvcFacade,
	notifier portssvc.Notifier,
	clock portssvc.Clock,
) portssvc.CooperationSvcFacade {
	return &cooperationService{
		cooperationRepo:  cooperationRepo,
		coordinationRepo: coordinationRepo,
		planRepo:         planRepo,
		pricingSvc:       pricingSvc,
		notifier:         notifier,
		clock:            clock,
	}
}

var _ portssvc.CooperationSvcFacade = (*cooperationService)(nil)

// GetCooperation retrieves a cooperation with its member plan ids.
func (s *cooperationService) GetCooperation(ctx context.Context, cooperationID string) (*domain.Cooperation, error) {
	return s.cooperationRepo.FindCooperationByID(ctx, cooperationID)
}

// ListCooperations lists all cooperations.
func (s *cooperationService) ListCooperations(ctx context.Context) ([]domain.Cooperation, error) {
	coops, err := s.cooperationRepo.ListCooperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cooperations: %w", err)
	}
	if coops == nil {
		return []domain.Cooperation{}, nil
	}
	return coops, nil
}

// ListMemberPlans lists the plans currently cooperating under the
// cooperation.
func (s *cooperationService) ListMemberPlans(ctx context.Context, cooperationID string) ([]domain.Plan, error) {
	if _, err := s.cooperationRepo.FindCooperationByID(ctx, cooperationID); err != nil {
		return nil, err
	}
	plans, err := s.planRepo.ListPlansOfCooperation(ctx, cooperationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member plans: %w", err)
	}
	return plans, nil
}

// RequestCooperation records a plan's wish to join a cooperation and
// notifies the current coordinator. A plan carries at most one membership
// or pending request at a time.
func (s *cooperationService) RequestCooperation(ctx context.Context, req dto.RequestCooperationRequest) error {
	plan, err := s.planRepo.FindPlanByID(ctx, req.PlanID)
	if err != nil {
		return err
	}
	if plan.PlannerID != req.RequesterID {
		return fmt.Errorf("%w: plan %s belongs to another company", apperrors.ErrForbidden, req.PlanID)
	}
	if !plan.IsActiveAsOf(s.clock.Now()) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrPlanNotActive.Error())
	}
	if plan.IsCooperating() {
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrAlreadyCooperating.Error())
	}
	if plan.RequestedCooperationID != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrPendingRequest.Error())
	}

	cooperation, err := s.cooperationRepo.FindCooperationByID(ctx, req.CooperationID)
	if err != nil {
		return err
	}

	plan.RequestedCooperationID = &cooperation.CooperationID
	if err := s.planRepo.UpdatePlan(ctx, *plan); err != nil {
		return fmt.Errorf("failed to record cooperation request: %w", err)
	}

	tenure, err := s.coordinationRepo.FindOpenTenure(ctx, cooperation.CooperationID)
	switch {
	case err == nil:
		s.notifier.CooperationRequested(ctx, domain.CooperationRequestedEvent{
			PlanID:        plan.PlanID,
			PlannerID:     plan.PlannerID,
			CooperationID: cooperation.CooperationID,
			CoordinatorID: tenure.CoordinatorID,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		// No open tenure, nobody to notify.
	default:
		// The request itself is recorded; only the notification is lost.
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to resolve coordinator for cooperation request",
			slog.String("cooperation_id", cooperation.CooperationID),
			slog.String("error", err.Error()))
	}
	return nil
}

// CancelCooperationRequest withdraws a pending cooperation request.
func (s *cooperationService) CancelCooperationRequest(ctx context.Context, planID, requesterID string) error {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan.PlannerID != requesterID {
		return fmt.Errorf("%w: plan %s belongs to another company", apperrors.ErrForbidden, planID)
	}
	if plan.RequestedCooperationID == nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrNoSuchRequest.Error())
	}

	plan.RequestedCooperationID = nil
	return s.planRepo.UpdatePlan(ctx, *plan)
}

// authorizeCoordinator verifies that the company holds the cooperation's
// open tenure.
func (s *cooperationService) authorizeCoordinator(ctx context.Context, companyID, cooperationID string) error {
	tenure, err := s.coordinationRepo.FindOpenTenure(ctx, cooperationID)
	if err != nil {
		return err
	}
	if tenure.CoordinatorID != companyID {
		return fmt.Errorf("%w: company %s does not coordinate cooperation %s", apperrors.ErrForbidden, companyID, cooperationID)
	}
	return nil
}

// AcceptCooperation admits a requesting plan. The new membership, the
// repricing of every member plan and the compensation transfers are
// committed as one atomic unit. The current members are read under the
// cooperation lock inside the commit, so concurrent membership changes
// cannot price against a stale snapshot.
func (s *cooperationService) AcceptCooperation(ctx context.Context, req dto.AcceptCooperationRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizeCoordinator(ctx, req.CoordinatorID, req.CooperationID); err != nil {
		return err
	}

	cooperation, err := s.cooperationRepo.FindCooperationByID(ctx, req.CooperationID)
	if err != nil {
		return err
	}
	plan, err := s.planRepo.FindPlanByID(ctx, req.PlanID)
	if err != nil {
		return err
	}
	if plan.RequestedCooperationID == nil || *plan.RequestedCooperationID != req.CooperationID {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrNoSuchRequest.Error())
	}
	if !plan.IsActiveAsOf(s.clock.Now()) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrPlanNotActive.Error())
	}

	var memberCount int
	commit := func(ctx context.Context, members []domain.Plan) ([]domain.Plan, []domain.Transfer, error) {
		joined := *plan
		joined.CooperationID = &cooperation.CooperationID
		joined.RequestedCooperationID = nil

		// The locked snapshot already contains the plan if a racing
		// accept admitted it first.
		all := make([]domain.Plan, 0, len(members)+1)
		for _, m := range members {
			if m.PlanID != joined.PlanID {
				all = append(all, m)
			}
		}
		all = append(all, joined)

		repriced, transfers, err := s.pricingSvc.RepriceCooperation(ctx, cooperation, all)
		if err != nil {
			return nil, nil, err
		}
		memberCount = len(repriced)
		return repriced, transfers, nil
	}

	if err := s.cooperationRepo.CommitMembershipChange(ctx, req.CooperationID, commit); err != nil {
		return fmt.Errorf("failed to commit membership change: %w", err)
	}

	logger.Info("Plan joined cooperation",
		slog.String("plan_id", plan.PlanID),
		slog.String("cooperation_id", cooperation.CooperationID),
		slog.Int("member_count", memberCount))
	return nil
}

// DenyCooperation refuses a requesting plan.
func (s *cooperationService) DenyCooperation(ctx context.Context, req dto.DenyCooperationRequest) error {
	if err := s.authorizeCoordinator(ctx, req.CoordinatorID, req.CooperationID); err != nil {
		return err
	}

	plan, err := s.planRepo.FindPlanByID(ctx, req.PlanID)
	if err != nil {
		return err
	}
	if plan.RequestedCooperationID == nil || *plan.RequestedCooperationID != req.CooperationID {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrNoSuchRequest.Error())
	}

	plan.RequestedCooperationID = nil
	return s.planRepo.UpdatePlan(ctx, *plan)
}

// removeFromCooperation takes the plan out of its cooperation, reprices
// the remaining members and commits everything atomically. The members
// are read under the cooperation lock inside the commit. The leaving
// plan reverts to its solo price, so its own compensation difference is
// zero by construction.
func (s *cooperationService) removeFromCooperation(ctx context.Context, plan *domain.Plan) error {
	cooperation, err := s.cooperationRepo.FindCooperationByID(ctx, *plan.CooperationID)
	if err != nil {
		return err
	}

	commit := func(ctx context.Context, members []domain.Plan) ([]domain.Plan, []domain.Transfer, error) {
		remaining := make([]domain.Plan, 0, len(members))
		for _, m := range members {
			if m.PlanID != plan.PlanID {
				remaining = append(remaining, m)
			}
		}

		repriced, transfers, err := s.pricingSvc.RepriceCooperation(ctx, cooperation, remaining)
		if err != nil {
			return nil, nil, err
		}

		leaving := *plan
		leaving.CooperationID = nil
		if leaving.IsPublicService {
			leaving.PricePerUnit = decimal.Zero
		} else {
			leaving.PricePerUnit = leaving.CostPerUnit()
		}
		return append(repriced, leaving), transfers, nil
	}

	if err := s.cooperationRepo.CommitMembershipChange(ctx, cooperation.CooperationID, commit); err != nil {
		return fmt.Errorf("failed to commit membership change: %w", err)
	}
	return nil
}

// EndCooperation removes a plan from its cooperation. The planner or the
// current coordinator may request it.
func (s *cooperationService) EndCooperation(ctx context.Context, planID, requesterID string) error {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return err
	}
	if !plan.IsCooperating() {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrNotCooperating.Error())
	}

	if plan.PlannerID != requesterID {
		if err := s.authorizeCoordinator(ctx, requesterID, *plan.CooperationID); err != nil {
			return err
		}
	}

	return s.removeFromCooperation(ctx, plan)
}

// SettleExpiredPlan drops an expired plan's membership and pending
// request. Called by the synchronized activation pass; settled plans do
// not reappear in the next pass.
func (s *cooperationService) SettleExpiredPlan(ctx context.Context, plan *domain.Plan) error {
	if !plan.IsExpiredAsOf(s.clock.Now()) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrPlanNotExpired.Error())
	}

	if plan.RequestedCooperationID != nil {
		plan.RequestedCooperationID = nil
		if err := s.planRepo.UpdatePlan(ctx, *plan); err != nil {
			return fmt.Errorf("failed to clear pending request: %w", err)
		}
	}

	if plan.IsCooperating() {
		return s.removeFromCooperation(ctx, plan)
	}
	return nil
}
