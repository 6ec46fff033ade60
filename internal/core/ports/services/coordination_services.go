package services

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/dto"
)

// CoordinationSvcFacade owns coordinator assignment: it guarantees at most
// one open tenure per cooperation and at most one pending transfer request
// per tenure.
type CoordinationSvcFacade interface {
	// CreateCooperation creates a cooperation, its ledger account and the
	// founding coordination tenure.
	CreateCooperation(ctx context.Context, req dto.CreateCooperationRequest) (*domain.Cooperation, error)

	// AuthorizeCoordinator verifies that the company holds the open tenure
	// of the cooperation and returns it.
	AuthorizeCoordinator(ctx context.Context, companyID, cooperationID string) (*domain.CoordinationTenure, error)

	// RequestTransfer creates a pending coordination transfer request for
	// the candidate company and notifies it.
	RequestTransfer(ctx context.Context, req dto.RequestCoordinationTransferRequest) (*domain.CoordinationTransferRequest, error)

	// AcceptTransfer lets the candidate take over: the current tenure is
	// closed and a new one opened as one atomic unit.
	AcceptTransfer(ctx context.Context, req dto.AcceptCoordinationTransferRequest) (*domain.CoordinationTenure, error)

	// DenyTransfer closes a pending request without touching the tenure.
	// Denying an already-closed request reports IsClosed=false.
	DenyTransfer(ctx context.Context, requestID, denierID string) (*dto.CloseTransferResponse, error)

	// CancelTransfer lets the requesting coordinator withdraw a pending
	// request. Idempotent like DenyTransfer.
	CancelTransfer(ctx context.Context, requestID, requesterID string) (*dto.CloseTransferResponse, error)

	// ListTenures lists a cooperation's tenures, newest first.
	ListTenures(ctx context.Context, cooperationID string) ([]domain.CoordinationTenure, error)
}
