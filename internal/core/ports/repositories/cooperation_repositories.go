package repositories

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
)

// CooperationReader defines read operations for cooperations.
type CooperationReader interface {
	// FindCooperationByID retrieves a cooperation including its member
	// plan ids.
	FindCooperationByID(ctx context.Context, cooperationID string) (*domain.Cooperation, error)

	// ListCooperations retrieves all cooperations.
	ListCooperations(ctx context.Context) ([]domain.Cooperation, error)
}

// RepriceFunc recomputes a cooperation's membership from the member
// plans as they stand at commit time. It returns every plan to persist
// and the compensation transfers of the change.
type RepriceFunc func(ctx context.Context, members []domain.Plan) ([]domain.Plan, []domain.Transfer, error)

// CooperationWriter defines write operations for cooperations.
type CooperationWriter interface {
	// SaveCooperation persists a new cooperation, its ledger account and
	// the founding coordination tenure atomically.
	SaveCooperation(ctx context.Context, cooperation domain.Cooperation, account domain.Account, tenure domain.CoordinationTenure) error

	// CommitMembershipChange applies a membership change as one atomic
	// unit: the cooperation row is locked, the member plans are re-read
	// under that lock and handed to reprice, and the plans and transfers
	// it returns are persisted in the same transaction. Concurrent
	// changes to the same cooperation serialize on the row lock, so
	// every change prices against the membership it commits with.
	CommitMembershipChange(ctx context.Context, cooperationID string, reprice RepriceFunc) error
}

// CooperationRepositoryFacade combines all cooperation-related repository interfaces.
type CooperationRepositoryFacade interface {
	CooperationReader
	CooperationWriter
}
