package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/core/services"
	"github.com/planwerk/planwerk_app/internal/dto"
)

type LabourServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockTransferRepo *MockTransferRepository
	mockCompanyRepo  *MockCompanyRepository
	payout           *fixedPayout
	service          portssvc.LabourSvcFacade

	now     time.Time
	company domain.Company
	member  domain.Member
	sa      domain.SocialAccounting
}

func (suite *LabourServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.payout = &fixedPayout{factor: decimal.NewFromFloat(0.95)}
	suite.now = time.Date(2026, 4, 20, 16, 0, 0, 0, time.UTC)

	// Certificate and tax postings run through a real ledger service so
	// the account pairing rules are exercised too.
	ledgerSvc := services.NewLedgerService(suite.mockAccountRepo, suite.mockTransferRepo)
	suite.service = services.NewLabourService(suite.mockCompanyRepo, ledgerSvc, suite.payout, fixedClock{now: suite.now})

	suite.company = domain.Company{
		CompanyID:       uuid.NewString(),
		Name:            "bakery",
		LabourAccountID: uuid.NewString(),
	}
	suite.member = domain.Member{MemberID: uuid.NewString(), Name: "worker", AccountID: uuid.NewString()}
	suite.sa = domain.SocialAccounting{ID: uuid.NewString(), AccountID: uuid.NewString(), PSFAccountID: uuid.NewString()}

	accounts := map[string]domain.Account{
		suite.company.LabourAccountID: {AccountID: suite.company.LabourAccountID, Kind: domain.KindLabour},
		suite.member.AccountID:        {AccountID: suite.member.AccountID, Kind: domain.KindMember},
		suite.sa.PSFAccountID:         {AccountID: suite.sa.PSFAccountID, Kind: domain.KindSocial},
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(accounts, nil).Maybe()
	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, suite.company.CompanyID).Return(&suite.company, nil).Maybe()
	suite.mockCompanyRepo.On("FindMemberByID", mock.Anything, suite.member.MemberID).Return(&suite.member, nil).Maybe()
	suite.mockCompanyRepo.On("EnsureSocialAccounting", mock.Anything, suite.now).Return(&suite.sa, nil).Maybe()
}

func (suite *LabourServiceTestSuite) TestRegisterHoursWorked_PostsCertificateAndTax() {
	// 10 hours at a payout factor of 0.95: the member receives the full
	// 10 and pays 0.5 into the public sector fund.
	ctx := context.Background()

	suite.mockCompanyRepo.On("IsWorkerAt", ctx, suite.member.MemberID, suite.company.CompanyID).Return(true, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Type == domain.TransferWorkCertificates &&
			t.DebitAccountID == suite.company.LabourAccountID &&
			t.CreditAccountID == suite.member.AccountID &&
			t.Value.Equal(decimal.NewFromInt(10))
	})).Return(nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Type == domain.TransferTaxes &&
			t.DebitAccountID == suite.member.AccountID &&
			t.CreditAccountID == suite.sa.PSFAccountID &&
			t.Value.Equal(decimal.NewFromFloat(0.5))
	})).Return(nil).Once()

	resp, err := suite.service.RegisterHoursWorked(ctx, dto.RegisterHoursWorkedRequest{
		CompanyID: suite.company.CompanyID,
		MemberID:  suite.member.MemberID,
		Hours:     decimal.NewFromInt(10),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.CertificateTransfer.Value.Equal(decimal.NewFromInt(10)))
	suite.True(resp.TaxTransfer.Value.Equal(decimal.NewFromFloat(0.5)))
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *LabourServiceTestSuite) TestRegisterHoursWorked_FullPayoutSkipsTax() {
	ctx := context.Background()
	suite.payout.factor = decimal.NewFromInt(1)

	suite.mockCompanyRepo.On("IsWorkerAt", ctx, suite.member.MemberID, suite.company.CompanyID).Return(true, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Type == domain.TransferWorkCertificates
	})).Return(nil).Once()

	resp, err := suite.service.RegisterHoursWorked(ctx, dto.RegisterHoursWorkedRequest{
		CompanyID: suite.company.CompanyID,
		MemberID:  suite.member.MemberID,
		Hours:     decimal.NewFromInt(8),
	})

	suite.Require().NoError(err)
	suite.Empty(resp.TaxTransfer.TransferID)
	suite.mockTransferRepo.AssertNumberOfCalls(suite.T(), "SaveTransfer", 1)
}

func (suite *LabourServiceTestSuite) TestRegisterHoursWorked_NonPositiveHours() {
	ctx := context.Background()

	resp, err := suite.service.RegisterHoursWorked(ctx, dto.RegisterHoursWorkedRequest{
		CompanyID: suite.company.CompanyID,
		MemberID:  suite.member.MemberID,
		Hours:     decimal.Zero,
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

func (suite *LabourServiceTestSuite) TestRegisterHoursWorked_NotAWorker() {
	ctx := context.Background()

	suite.mockCompanyRepo.On("IsWorkerAt", ctx, suite.member.MemberID, suite.company.CompanyID).Return(false, nil).Once()

	resp, err := suite.service.RegisterHoursWorked(ctx, dto.RegisterHoursWorkedRequest{
		CompanyID: suite.company.CompanyID,
		MemberID:  suite.member.MemberID,
		Hours:     decimal.NewFromInt(4),
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

func (suite *LabourServiceTestSuite) TestListWorkedHours_ReadsLabourStatement() {
	ctx := context.Background()
	certificates := []domain.Transfer{{TransferID: uuid.NewString(), Type: domain.TransferWorkCertificates}}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.company.LabourAccountID).
		Return(&domain.Account{AccountID: suite.company.LabourAccountID, Kind: domain.KindLabour}, nil).Once()
	suite.mockTransferRepo.On("ListTransfersByAccountID", ctx, suite.company.LabourAccountID, 20, 0).Return(certificates, nil).Once()

	transfers, err := suite.service.ListWorkedHours(ctx, suite.company.CompanyID, 20, 0)

	suite.Require().NoError(err)
	suite.Len(transfers, 1)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func TestLabourService(t *testing.T) {
	suite.Run(t, new(LabourServiceTestSuite))
}
