package services

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/dto"
)

// CompanySvcFacade registers the economic actors and their ledger
// accounts.
type CompanySvcFacade interface {
	// RegisterCompany creates a company together with its four accounts
	// (means, resources, labour, product) in one atomic write.
	RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*domain.Company, error)

	// RegisterMember creates a member together with its account.
	RegisterMember(ctx context.Context, req dto.RegisterMemberRequest) (*domain.Member, error)

	// AddWorker records a member as worker at a company.
	AddWorker(ctx context.Context, companyID, memberID string) error

	// ResolveCompany retrieves a company by id.
	ResolveCompany(ctx context.Context, companyID string) (*domain.Company, error)

	// ResolveMember retrieves a member by id.
	ResolveMember(ctx context.Context, memberID string) (*domain.Member, error)

	// SocialAccounting returns the singleton social accounting record,
	// creating it on first use.
	SocialAccounting(ctx context.Context) (*domain.SocialAccounting, error)
}
