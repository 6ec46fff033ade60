package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

var (
	ErrSelfTransfer      = errors.New("candidate already coordinates this cooperation")
	ErrRequestNotPending = errors.New("transfer request is not pending")
)

// coordinationService owns coordinator assignment. It keeps exactly one
// open tenure per cooperation and at most one pending transfer request
// per tenure.
type coordinationService struct {
	cooperationRepo  portsrepo.CooperationWriter
	coordinationRepo portsrepo.CoordinationRepositoryFacade
	companyRepo      portsrepo.CompanyReader
	notifier         portssvc.Notifier
	clock            portssvc.Clock
}

// NewCoordinationService creates a new coordination service.
func NewCoordinationService(
	cooperationRepo portsrepo.CooperationWriter,
	coordinationRepo portsrepo.CoordinationRepositoryFacade,
	companyRepo portsrepo.CompanyReader,
	notifier portssvc.Notifier,
	clock portssvc.Clock,
) portssvc.CoordinationSvcFacade {
	return &coordinationService{
		cooperationRepo:  cooperationRepo,
		coordinationRepo: coordinationRepo,
		companyRepo:      companyRepo,
		notifier:         notifier,
		clock:            clock,
	}
}

var _ portssvc.CoordinationSvcFacade = (*coordinationService)(nil)

// CreateCooperation creates a cooperation, its ledger account and the
// founding tenure in one atomic write. The founding company becomes the
// first coordinator.
func (s *coordinationService) CreateCooperation(ctx context.Context, req dto.CreateCooperationRequest) (*domain.Cooperation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CoordinatorID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	cooperationID := uuid.NewString()

	cooperation := domain.Cooperation{
		CooperationID: cooperationID,
		Name:          req.Name,
		Definition:    req.Definition,
		AccountID:     uuid.NewString(),
		CreationDate:  now,
		MemberPlanIDs: []string{},
	}
	account := domain.Account{
		AccountID: cooperation.AccountID,
		Kind:      domain.KindCooperation,
		OwnerID:   cooperationID,
		CreatedAt: now,
	}
	tenure := domain.CoordinationTenure{
		TenureID:      uuid.NewString(),
		CooperationID: cooperationID,
		CoordinatorID: req.CoordinatorID,
		StartDate:     now,
	}

	if err := s.cooperationRepo.SaveCooperation(ctx, cooperation, account, tenure); err != nil {
		logger.Error("Failed to create cooperation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create cooperation: %w", err)
	}

	return &cooperation, nil
}

// AuthorizeCoordinator verifies that the company holds the open tenure of
// the cooperation and returns it.
func (s *coordinationService) AuthorizeCoordinator(ctx context.Context, companyID, cooperationID string) (*domain.CoordinationTenure, error) {
	tenure, err := s.coordinationRepo.FindOpenTenure(ctx, cooperationID)
	if err != nil {
		return nil, err
	}
	if tenure.CoordinatorID != companyID {
		return nil, fmt.Errorf("%w: company %s does not coordinate cooperation %s", apperrors.ErrForbidden, companyID, cooperationID)
	}
	return tenure, nil
}

// RequestTransfer creates a pending transfer request for the candidate.
// The store enforces at most one pending request per tenure and reports a
// second attempt as a conflict.
func (s *coordinationService) RequestTransfer(ctx context.Context, req dto.RequestCoordinationTransferRequest) (*domain.CoordinationTransferRequest, error) {
	tenure, err := s.AuthorizeCoordinator(ctx, req.RequesterID, req.CooperationID)
	if err != nil {
		return nil, err
	}
	if req.CandidateID == tenure.CoordinatorID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSelfTransfer.Error())
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CandidateID); err != nil {
		return nil, err
	}

	request := domain.CoordinationTransferRequest{
		RequestID:    uuid.NewString(),
		TenureID:     tenure.TenureID,
		CandidateID:  req.CandidateID,
		CreationDate: s.clock.Now(),
		Status:       domain.TransferRequestPending,
	}

	if err := s.coordinationRepo.SaveTransferRequest(ctx, request); err != nil {
		return nil, err
	}

	s.notifier.CoordinationTransferRequested(ctx, domain.CoordinationTransferRequestedEvent{
		RequestID:     request.RequestID,
		CooperationID: req.CooperationID,
		CandidateID:   req.CandidateID,
	})
	return &request, nil
}

// AcceptTransfer lets the candidate take over. Ending the old tenure,
// opening the new one and accepting the request happen as one atomic
// unit, so the one-open-tenure invariant holds through the rotation.
func (s *coordinationService) AcceptTransfer(ctx context.Context, req dto.AcceptCoordinationTransferRequest) (*domain.CoordinationTenure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.coordinationRepo.FindRequestByID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	if request.CandidateID != req.AccepterID {
		return nil, fmt.Errorf("%w: request %s addresses another company", apperrors.ErrForbidden, req.RequestID)
	}
	if !request.IsPending() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidStateTransition, ErrRequestNotPending.Error())
	}

	tenure, err := s.coordinationRepo.FindTenureByID(ctx, request.TenureID)
	if err != nil {
		return nil, err
	}
	if !tenure.IsOpen() {
		return nil, fmt.Errorf("%w: tenure %s already ended", apperrors.ErrInvalidStateTransition, tenure.TenureID)
	}

	now := s.clock.Now()
	closing := *tenure
	closing.EndDate = &now
	opening := domain.CoordinationTenure{
		TenureID:      uuid.NewString(),
		CooperationID: tenure.CooperationID,
		CoordinatorID: request.CandidateID,
		StartDate:     now,
	}
	accepted := *request
	accepted.Status = domain.TransferRequestAccepted

	if err := s.coordinationRepo.RotateTenure(ctx, closing, opening, accepted); err != nil {
		return nil, err
	}

	logger.Info("Coordination transferred",
		slog.String("cooperation_id", tenure.CooperationID),
		slog.String("from", tenure.CoordinatorID),
		slog.String("to", request.CandidateID))
	return &opening, nil
}

// closeRequest moves a pending request to the given closed status.
// Requests already closed report IsClosed=false instead of an error, so
// racing closers both get a definite answer.
func (s *coordinationService) closeRequest(ctx context.Context, request *domain.CoordinationTransferRequest, status domain.TransferRequestStatus) (*dto.CloseTransferResponse, error) {
	if !request.IsPending() {
		return &dto.CloseTransferResponse{RequestID: request.RequestID, IsClosed: false}, nil
	}
	if err := s.coordinationRepo.CloseTransferRequest(ctx, request.RequestID, status); err != nil {
		if errors.Is(err, apperrors.ErrInvalidStateTransition) {
			return &dto.CloseTransferResponse{RequestID: request.RequestID, IsClosed: false}, nil
		}
		return nil, err
	}
	return &dto.CloseTransferResponse{RequestID: request.RequestID, IsClosed: true}, nil
}

// DenyTransfer lets the candidate refuse a pending request.
func (s *coordinationService) DenyTransfer(ctx context.Context, requestID, denierID string) (*dto.CloseTransferResponse, error) {
	request, err := s.coordinationRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.CandidateID != denierID {
		return nil, fmt.Errorf("%w: request %s addresses another company", apperrors.ErrForbidden, requestID)
	}
	return s.closeRequest(ctx, request, domain.TransferRequestDenied)
}

// CancelTransfer lets the requesting coordinator withdraw a pending
// request.
func (s *coordinationService) CancelTransfer(ctx context.Context, requestID, requesterID string) (*dto.CloseTransferResponse, error) {
	request, err := s.coordinationRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	tenure, err := s.coordinationRepo.FindTenureByID(ctx, request.TenureID)
	if err != nil {
		return nil, err
	}
	if tenure.CoordinatorID != requesterID {
		return nil, fmt.Errorf("%w: request %s was raised by another coordinator", apperrors.ErrForbidden, requestID)
	}
	return s.closeRequest(ctx, request, domain.TransferRequestCancelled)
}

// ListTenures lists a cooperation's tenures, newest first.
func (s *coordinationService) ListTenures(ctx context.Context, cooperationID string) ([]domain.CoordinationTenure, error) {
	tenures, err := s.coordinationRepo.ListTenures(ctx, cooperationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenures: %w", err)
	}
	if tenures == nil {
		return []domain.CoordinationTenure{}, nil
	}
	return tenures, nil
}
