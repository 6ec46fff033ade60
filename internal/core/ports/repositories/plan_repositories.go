package repositories

import (
	"context"
	"time"

	"github.com/planwerk/planwerk_app/internal/core/domain"
)

// DraftReader defines read operations for plan drafts.
type DraftReader interface {
	// FindDraftByID retrieves a specific draft by its id.
	FindDraftByID(ctx context.Context, draftID string) (*domain.PlanDraft, error)

	// ListDraftsByCompany retrieves all drafts of a planning company.
	ListDraftsByCompany(ctx context.Context, companyID string) ([]domain.PlanDraft, error)
}

// DraftWriter defines write operations for plan drafts.
type DraftWriter interface {
	// SaveDraft persists a new draft.
	SaveDraft(ctx context.Context, draft domain.PlanDraft) error

	// DeleteDraft removes a draft. Drafts are the only deletable plan
	// records; a filed plan is never deleted.
	DeleteDraft(ctx context.Context, draftID string) error
}

// PlanReader defines read operations for filed plans.
type PlanReader interface {
	// FindPlanByID retrieves a specific plan by its id.
	FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error)

	// ListPlansByCompany retrieves all plans of a planning company.
	// Hidden plans are included only when includeHidden is set.
	ListPlansByCompany(ctx context.Context, companyID string, includeHidden bool) ([]domain.Plan, error)

	// ListActivePlans retrieves all plans active at the given instant.
	ListActivePlans(ctx context.Context, now time.Time) ([]domain.Plan, error)

	// ListPlansOfCooperation retrieves the member plans of a cooperation.
	ListPlansOfCooperation(ctx context.Context, cooperationID string) ([]domain.Plan, error)

	// ListPlansAwaitingActivation retrieves approved plans whose
	// activation was deferred (approval date set, activation date unset).
	ListPlansAwaitingActivation(ctx context.Context) ([]domain.Plan, error)

	// ListExpiredPlansToSettle retrieves plans whose expiration date has
	// passed but which still hold a cooperation membership or a pending
	// cooperation request. Plans already settled do not reappear, which
	// keeps the synchronized activation pass idempotent.
	ListExpiredPlansToSettle(ctx context.Context, now time.Time) ([]domain.Plan, error)
}

// PlanWriter defines write operations for filed plans. The multi-write
// methods are atomic: they run inside one database transaction.
type PlanWriter interface {
	// FilePlanFromDraft persists the filed plan and deletes its source
	// draft atomically.
	FilePlanFromDraft(ctx context.Context, plan domain.Plan, draftID string) error

	// ApprovePlan persists the approval fields of the plan and appends the
	// crediting transfers atomically. The update is guarded: it applies
	// only while the plan is neither approved nor rejected, and reports
	// apperrors.ErrInvalidStateTransition otherwise.
	ApprovePlan(ctx context.Context, plan domain.Plan, credits []domain.Transfer) error

	// RejectPlan persists the rejection date. The update is guarded like
	// ApprovePlan.
	RejectPlan(ctx context.Context, plan domain.Plan) error

	// UpdatePlanSchedule persists activation and expiration dates.
	UpdatePlanSchedule(ctx context.Context, plan domain.Plan) error

	// UpdatePlan persists mutable plan fields (cooperation linkage, price,
	// hidden flag).
	UpdatePlan(ctx context.Context, plan domain.Plan) error
}

// PlanRepositoryFacade combines all plan-related repository interfaces.
type PlanRepositoryFacade interface {
	DraftReader
	DraftWriter
	PlanReader
	PlanWriter
}
