package repositories

import (
	"context"
	"time"

	"github.com/planwerk/planwerk_app/internal/core/domain"
)

// CompanyReader defines read operations for companies and members.
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its id.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompaniesByIDs retrieves multiple companies keyed by id.
	FindCompaniesByIDs(ctx context.Context, companyIDs []string) (map[string]domain.Company, error)

	// FindMemberByID retrieves a specific member by its id.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// IsWorkerAt reports whether the member works at the company.
	IsWorkerAt(ctx context.Context, memberID, companyID string) (bool, error)
}

// CompanyWriter defines write operations for companies and members.
type CompanyWriter interface {
	// SaveCompany persists a new company together with its four accounts
	// atomically.
	SaveCompany(ctx context.Context, company domain.Company, accounts []domain.Account) error

	// SaveMember persists a new member together with its account
	// atomically.
	SaveMember(ctx context.Context, member domain.Member, account domain.Account) error

	// AddWorker records that the member works at the company.
	AddWorker(ctx context.Context, companyID, memberID string) error
}

// SocialAccountingReader provides access to the accounting authority
// singleton.
type SocialAccountingReader interface {
	// SocialAccounting retrieves the singleton record.
	SocialAccounting(ctx context.Context) (*domain.SocialAccounting, error)
}

// SocialAccountingWriter seeds the accounting authority.
type SocialAccountingWriter interface {
	// EnsureSocialAccounting creates the singleton and its accounts as of
	// now when absent, and returns it.
	EnsureSocialAccounting(ctx context.Context, now time.Time) (*domain.SocialAccounting, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
	SocialAccountingReader
	SocialAccountingWriter
}
