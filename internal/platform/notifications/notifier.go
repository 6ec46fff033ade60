package notifications

import (
	"context"
	"log/slog"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

// LogNotifier writes notification events to the structured log. It
// stands in for a real delivery channel; the core never depends on
// delivery succeeding.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) PlanRejected(ctx context.Context, event domain.PlanRejectedEvent) {
	middleware.GetLoggerFromCtx(ctx).Info("Notification: plan rejected",
		slog.String("plan_id", event.PlanID),
		slog.String("planner_id", event.PlannerID),
		slog.String("product_name", event.ProductName),
		slog.Time("rejection_date", event.RejectionDate))
}

func (n *LogNotifier) CooperationRequested(ctx context.Context, event domain.CooperationRequestedEvent) {
	middleware.GetLoggerFromCtx(ctx).Info("Notification: cooperation requested",
		slog.String("plan_id", event.PlanID),
		slog.String("planner_id", event.PlannerID),
		slog.String("cooperation_id", event.CooperationID),
		slog.String("coordinator_id", event.CoordinatorID))
}

func (n *LogNotifier) CoordinationTransferRequested(ctx context.Context, event domain.CoordinationTransferRequestedEvent) {
	middleware.GetLoggerFromCtx(ctx).Info("Notification: coordination transfer requested",
		slog.String("request_id", event.RequestID),
		slog.String("cooperation_id", event.CooperationID),
		slog.String("candidate_id", event.CandidateID))
}
