package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/core/services"
	"github.com/planwerk/planwerk_app/internal/dto"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo *MockCompanyRepository
	service         portssvc.CompanySvcFacade

	now time.Time
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.now = time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewCompanyService(suite.mockCompanyRepo, fixedClock{now: suite.now})
}

func (suite *CompanyServiceTestSuite) TestRegisterCompany_CreatesFourAccounts() {
	ctx := context.Background()

	suite.mockCompanyRepo.On("SaveCompany", ctx,
		mock.MatchedBy(func(c domain.Company) bool {
			return c.Name == "bakery" && c.RegisteredOn.Equal(suite.now)
		}),
		mock.MatchedBy(func(accounts []domain.Account) bool {
			if len(accounts) != 4 {
				return false
			}
			kinds := map[domain.AccountKind]bool{}
			for _, a := range accounts {
				kinds[a.Kind] = true
			}
			return kinds[domain.KindMeans] && kinds[domain.KindResources] &&
				kinds[domain.KindLabour] && kinds[domain.KindProduct]
		}),
	).Return(nil).Once()

	company, err := suite.service.RegisterCompany(ctx, dto.RegisterCompanyRequest{Name: "bakery"})

	suite.Require().NoError(err)
	suite.Require().NotNil(company)
	suite.NotEmpty(company.CompanyID)
	suite.Len(company.AccountIDs(), 4)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestRegisterMember_CreatesCertificateAccount() {
	ctx := context.Background()

	suite.mockCompanyRepo.On("SaveMember", ctx,
		mock.MatchedBy(func(m domain.Member) bool {
			return m.Name == "worker" && m.AccountID != ""
		}),
		mock.MatchedBy(func(a domain.Account) bool {
			return a.Kind == domain.KindMember
		}),
	).Return(nil).Once()

	member, err := suite.service.RegisterMember(ctx, dto.RegisterMemberRequest{Name: "worker"})

	suite.Require().NoError(err)
	suite.Require().NotNil(member)
	suite.Equal(suite.now, member.RegisteredOn)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestAddWorker_Success() {
	ctx := context.Background()
	company := domain.Company{CompanyID: uuid.NewString()}
	member := domain.Member{MemberID: uuid.NewString()}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, company.CompanyID).Return(&company, nil).Once()
	suite.mockCompanyRepo.On("FindMemberByID", ctx, member.MemberID).Return(&member, nil).Once()
	suite.mockCompanyRepo.On("AddWorker", ctx, company.CompanyID, member.MemberID).Return(nil).Once()

	suite.Require().NoError(suite.service.AddWorker(ctx, company.CompanyID, member.MemberID))
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestAddWorker_UnknownMember() {
	ctx := context.Background()
	company := domain.Company{CompanyID: uuid.NewString()}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, company.CompanyID).Return(&company, nil).Once()
	suite.mockCompanyRepo.On("FindMemberByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AddWorker(ctx, company.CompanyID, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "AddWorker", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestSocialAccounting_Delegates() {
	ctx := context.Background()
	sa := domain.SocialAccounting{ID: uuid.NewString(), AccountID: uuid.NewString(), PSFAccountID: uuid.NewString()}

	// Seeding timestamps come from the injected clock, not the wall clock.
	suite.mockCompanyRepo.On("EnsureSocialAccounting", ctx, suite.now).Return(&sa, nil).Once()

	got, err := suite.service.SocialAccounting(ctx)

	suite.Require().NoError(err)
	suite.Equal(sa.PSFAccountID, got.PSFAccountID)
}

func TestCompanyService(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
