package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

// companyService registers companies and members together with their
// ledger accounts.
type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	clock       portssvc.Clock
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, clock portssvc.Clock) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
		clock:       clock,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// RegisterCompany creates a company with its four production accounts in
// one atomic write.
func (s *companyService) RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := s.clock.Now()
	companyID := uuid.NewString()

	company := domain.Company{
		CompanyID:          companyID,
		Name:               req.Name,
		MeansAccountID:     uuid.NewString(),
		ResourcesAccountID: uuid.NewString(),
		LabourAccountID:    uuid.NewString(),
		ProductAccountID:   uuid.NewString(),
		RegisteredOn:       now,
	}

	accounts := []domain.Account{
		{AccountID: company.MeansAccountID, Kind: domain.KindMeans, OwnerID: companyID, CreatedAt: now},
		{AccountID: company.ResourcesAccountID, Kind: domain.KindResources, OwnerID: companyID, CreatedAt: now},
		{AccountID: company.LabourAccountID, Kind: domain.KindLabour, OwnerID: companyID, CreatedAt: now},
		{AccountID: company.ProductAccountID, Kind: domain.KindProduct, OwnerID: companyID, CreatedAt: now},
	}

	if err := s.companyRepo.SaveCompany(ctx, company, accounts); err != nil {
		logger.Error("Failed to register company", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register company: %w", err)
	}

	return &company, nil
}

// RegisterMember creates a member with its certificate account.
func (s *companyService) RegisterMember(ctx context.Context, req dto.RegisterMemberRequest) (*domain.Member, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := s.clock.Now()
	memberID := uuid.NewString()

	member := domain.Member{
		MemberID:     memberID,
		Name:         req.Name,
		AccountID:    uuid.NewString(),
		RegisteredOn: now,
	}
	account := domain.Account{
		AccountID: member.AccountID,
		Kind:      domain.KindMember,
		OwnerID:   memberID,
		CreatedAt: now,
	}

	if err := s.companyRepo.SaveMember(ctx, member, account); err != nil {
		logger.Error("Failed to register member", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register member: %w", err)
	}

	return &member, nil
}

// AddWorker records the member as worker at the company.
func (s *companyService) AddWorker(ctx context.Context, companyID, memberID string) error {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.companyRepo.FindMemberByID(ctx, memberID); err != nil {
		return err
	}
	if err := s.companyRepo.AddWorker(ctx, companyID, memberID); err != nil {
		return fmt.Errorf("failed to add worker %s to company %s: %w", memberID, companyID, err)
	}
	return nil
}

// ResolveCompany retrieves a company by id.
func (s *companyService) ResolveCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// ResolveMember retrieves a member by id.
func (s *companyService) ResolveMember(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.companyRepo.FindMemberByID(ctx, memberID)
}

// SocialAccounting returns the singleton accounting authority, creating
// it and its accounts on first use.
func (s *companyService) SocialAccounting(ctx context.Context) (*domain.SocialAccounting, error) {
	sa, err := s.companyRepo.EnsureSocialAccounting(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to ensure social accounting: %w", err)
	}
	return sa, nil
}
