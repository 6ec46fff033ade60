package services

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/dto"
)

// PlanSvcFacade owns the plan lifecycle state machine.
type PlanSvcFacade interface {
	// CreateDraft stores a new editable draft for the planner.
	CreateDraft(ctx context.Context, req dto.CreateDraftRequest) (*domain.PlanDraft, error)

	// ListDrafts lists the drafts of a company.
	ListDrafts(ctx context.Context, companyID string) ([]domain.PlanDraft, error)

	// DeleteDraft removes a draft of the requesting company.
	DeleteDraft(ctx context.Context, draftID, requesterID string) error

	// FilePlan converts a draft into a filed plan, stamping the filing
	// date.
	FilePlan(ctx context.Context, draftID, requesterID string) (*domain.Plan, error)

	// ApprovePlan approves a filed plan: computes its price, posts the
	// crediting transfers and activates it, all as one atomic unit.
	ApprovePlan(ctx context.Context, planID, reviewerID string) (*domain.Plan, error)

	// RejectPlan rejects a filed plan. Rejection is terminal; rejecting an
	// already-rejected plan reports IsPlanRejected=false instead of an
	// error.
	RejectPlan(ctx context.Context, planID, reviewerID string) (*dto.RejectPlanResponse, error)

	// RenewPlan produces a fresh draft pre-filled from an expired plan.
	RenewPlan(ctx context.Context, planID, requesterID string) (*domain.PlanDraft, error)

	// HidePlan hides an expired plan from default listings.
	HidePlan(ctx context.Context, planID, requesterID string) error

	// GetPlan retrieves a single plan.
	GetPlan(ctx context.Context, planID string) (*domain.Plan, error)

	// ListPlansByCompany lists a company's plans.
	ListPlansByCompany(ctx context.Context, companyID string, includeHidden bool) ([]domain.Plan, error)

	// ListActivePlans lists all currently active plans.
	ListActivePlans(ctx context.Context) ([]domain.Plan, error)

	// SynchronizedActivation is the periodic batch pass: it activates
	// deferred-approved plans, refreshes expiration dates and settles
	// expired plans. Running it twice without a time change is a no-op.
	SynchronizedActivation(ctx context.Context) (*dto.SynchronizedActivationResponse, error)
}
