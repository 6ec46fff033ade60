package repositories

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
)

// CoordinationReader defines read operations for tenures and transfer
// requests.
type CoordinationReader interface {
	// FindOpenTenure retrieves the single tenure of the cooperation with
	// no end date.
	FindOpenTenure(ctx context.Context, cooperationID string) (*domain.CoordinationTenure, error)

	// FindTenureByID retrieves a specific tenure by its id.
	FindTenureByID(ctx context.Context, tenureID string) (*domain.CoordinationTenure, error)

	// ListTenures retrieves all tenures of a cooperation, newest first.
	ListTenures(ctx context.Context, cooperationID string) ([]domain.CoordinationTenure, error)

	// FindRequestByID retrieves a specific transfer request by its id.
	FindRequestByID(ctx context.Context, requestID string) (*domain.CoordinationTransferRequest, error)

	// FindPendingRequestByTenure retrieves the pending request of a
	// tenure, or apperrors.ErrNotFound when none exists.
	FindPendingRequestByTenure(ctx context.Context, tenureID string) (*domain.CoordinationTransferRequest, error)
}

// CoordinationWriter defines write operations for tenures and transfer
// requests.
type CoordinationWriter interface {
	// SaveTransferRequest persists a new pending request. The
	// at-most-one-pending-request-per-tenure invariant is enforced inside
	// the store (partial unique index); a violation surfaces as
	// apperrors.ErrConflict.
	SaveTransferRequest(ctx context.Context, request domain.CoordinationTransferRequest) error

	// CloseTransferRequest moves a pending request to the given closed
	// status. The update is guarded on the pending status and reports
	// apperrors.ErrInvalidStateTransition when the request was already
	// closed.
	CloseTransferRequest(ctx context.Context, requestID string, status domain.TransferRequestStatus) error

	// RotateTenure atomically ends the current tenure, opens the new one
	// and marks the request accepted. Exactly one open tenure exists per
	// cooperation after the call.
	RotateTenure(ctx context.Context, closing domain.CoordinationTenure, opening domain.CoordinationTenure, request domain.CoordinationTransferRequest) error
}

// CoordinationRepositoryFacade combines all coordination-related repository interfaces.
type CoordinationRepositoryFacade interface {
	CoordinationReader
	CoordinationWriter
}
