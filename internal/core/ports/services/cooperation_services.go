package services

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/dto"
)

// CooperationSvcFacade owns cooperation membership. Every membership
// change re-prices all member plans and posts compensation transfers.
type CooperationSvcFacade interface {
	// GetCooperation retrieves a cooperation with its member plan ids.
	GetCooperation(ctx context.Context, cooperationID string) (*domain.Cooperation, error)

	// ListCooperations lists all cooperations.
	ListCooperations(ctx context.Context) ([]domain.Cooperation, error)

	// ListMemberPlans lists the plans currently cooperating under the
	// cooperation.
	ListMemberPlans(ctx context.Context, cooperationID string) ([]domain.Plan, error)

	// RequestCooperation records a plan's wish to join a cooperation and
	// notifies the current coordinator.
	RequestCooperation(ctx context.Context, req dto.RequestCooperationRequest) error

	// CancelCooperationRequest withdraws a pending cooperation request.
	CancelCooperationRequest(ctx context.Context, planID, requesterID string) error

	// AcceptCooperation lets the current coordinator admit a requesting
	// plan. Membership, re-pricing and compensation apply atomically.
	AcceptCooperation(ctx context.Context, req dto.AcceptCooperationRequest) error

	// DenyCooperation lets the current coordinator refuse a requesting
	// plan.
	DenyCooperation(ctx context.Context, req dto.DenyCooperationRequest) error

	// EndCooperation removes a plan from its cooperation; the planner or
	// the coordinator may request it.
	EndCooperation(ctx context.Context, planID, requesterID string) error

	// SettleExpiredPlan drops an expired plan's membership and pending
	// request and re-prices the remaining members. Called by the
	// synchronized activation pass.
	SettleExpiredPlan(ctx context.Context, plan *domain.Plan) error
}
