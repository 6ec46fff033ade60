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
	ErrNonPositiveHours = errors.New("worked hours must be positive")
	ErrNotAWorker       = errors.New("member does not work at this company")
)

// labourService records worked hours as certificate and tax transfers.
type labourService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	payout      portssvc.PayoutFactorProvider
	clock       portssvc.Clock
}

// NewLabourService creates a new labour service.
func NewLabourService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	payout portssvc.PayoutFactorProvider,
	clock portssvc.Clock,
) portssvc.LabourSvcFacade {
	return &labourService{
		companyRepo: companyRepo,
		ledgerSvc:   ledgerSvc,
		payout:      payout,
		clock:       clock,
	}
}

var _ portssvc.LabourSvcFacade = (*labourService)(nil)

// RegisterHoursWorked posts the full hours from the company's labour
// account to the member, then deducts hours times (1 - payout factor) as
// tax from the member to the public sector fund. A payout factor of one
// means no tax transfer is posted.
func (s *labourService) RegisterHoursWorked(ctx context.Context, req dto.RegisterHoursWorkedRequest) (*dto.RegisterHoursWorkedResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Hours.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNonPositiveHours.Error())
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	member, err := s.companyRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	works, err := s.companyRepo.IsWorkerAt(ctx, req.MemberID, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employment: %w", err)
	}
	if !works {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrNotAWorker.Error())
	}

	now := s.clock.Now()
	sa, err := s.companyRepo.EnsureSocialAccounting(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure social accounting: %w", err)
	}

	certificate, err := s.ledgerSvc.PostTransfer(ctx, company.LabourAccountID, member.AccountID, req.Hours, domain.TransferWorkCertificates, now)
	if err != nil {
		return nil, err
	}

	resp := &dto.RegisterHoursWorkedResponse{
		CertificateTransfer: dto.ToTransferResponse(certificate),
	}

	factor := s.payout.PayoutFactor(ctx)
	tax := req.Hours.Mul(decimal.NewFromInt(1).Sub(factor))
	if tax.IsPositive() {
		taxTransfer, err := s.ledgerSvc.PostTransfer(ctx, member.AccountID, sa.PSFAccountID, tax, domain.TransferTaxes, now)
		if err != nil {
			return nil, err
		}
		resp.TaxTransfer = dto.ToTransferResponse(taxTransfer)
	}

	logger.Info("Hours worked registered",
		slog.String("company_id", req.CompanyID),
		slog.String("member_id", req.MemberID),
		slog.String("hours", req.Hours.String()),
		slog.String("tax", tax.String()))
	return resp, nil
}

// ListWorkedHours lists the certificate transfers of a company's labour
// account, newest first.
func (s *labourService) ListWorkedHours(ctx context.Context, companyID string, limit, offset int) ([]domain.Transfer, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return s.ledgerSvc.AccountStatement(ctx, company.LabourAccountID, limit, offset)
}
