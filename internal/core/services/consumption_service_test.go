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

type ConsumptionServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockTransferRepo *MockTransferRepository
	mockCompanyRepo  *MockCompanyRepository
	mockPlanRepo     *MockPlanRepository
	service          portssvc.ConsumptionSvcFacade

	now      time.Time
	planner  domain.Company
	consumer domain.Company
	member   domain.Member
}

func (suite *ConsumptionServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockPlanRepo = new(MockPlanRepository)
	suite.now = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	clk := fixedClock{now: suite.now}
	ledgerSvc := services.NewLedgerService(suite.mockAccountRepo, suite.mockTransferRepo)
	pricingSvc := services.NewPricingService(suite.mockCompanyRepo, ledgerSvc, clk)
	suite.service = services.NewConsumptionService(suite.mockCompanyRepo, suite.mockPlanRepo, pricingSvc, ledgerSvc, clk)

	suite.planner = domain.Company{
		CompanyID:        uuid.NewString(),
		Name:             "mill",
		ProductAccountID: uuid.NewString(),
	}
	suite.consumer = domain.Company{
		CompanyID:          uuid.NewString(),
		Name:               "bakery",
		MeansAccountID:     uuid.NewString(),
		ResourcesAccountID: uuid.NewString(),
	}
	suite.member = domain.Member{MemberID: uuid.NewString(), Name: "consumer", AccountID: uuid.NewString()}

	accounts := map[string]domain.Account{
		suite.planner.ProductAccountID:    {AccountID: suite.planner.ProductAccountID, Kind: domain.KindProduct},
		suite.consumer.MeansAccountID:     {AccountID: suite.consumer.MeansAccountID, Kind: domain.KindMeans},
		suite.consumer.ResourcesAccountID: {AccountID: suite.consumer.ResourcesAccountID, Kind: domain.KindResources},
		suite.member.AccountID:            {AccountID: suite.member.AccountID, Kind: domain.KindMember},
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(accounts, nil).Maybe()
	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, suite.planner.CompanyID).Return(&suite.planner, nil).Maybe()
	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, suite.consumer.CompanyID).Return(&suite.consumer, nil).Maybe()
	suite.mockCompanyRepo.On("FindMemberByID", mock.Anything, suite.member.MemberID).Return(&suite.member, nil).Maybe()
}

// consumablePlan builds an active plan priced at 3 per unit.
func (suite *ConsumptionServiceTestSuite) consumablePlan() *domain.Plan {
	approval := suite.now.AddDate(0, 0, -5)
	expiration := suite.now.AddDate(0, 0, 25)
	return &domain.Plan{
		PlanID:    uuid.NewString(),
		PlannerID: suite.planner.CompanyID,
		Costs: domain.ProductionCosts{
			Means:     decimal.Zero,
			Resources: decimal.Zero,
			Labour:    decimal.NewFromInt(30),
		},
		Amount:         10,
		TimeframeDays:  30,
		ApprovalDate:   &approval,
		ActivationDate: &approval,
		ExpirationDate: &expiration,
	}
}

func (suite *ConsumptionServiceTestSuite) TestRegisterPrivateConsumption_Success() {
	ctx := context.Background()
	plan := suite.consumablePlan()

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Type == domain.TransferPrivateConsumption &&
			t.DebitAccountID == suite.member.AccountID &&
			t.CreditAccountID == suite.planner.ProductAccountID &&
			t.Value.Equal(decimal.NewFromInt(6))
	})).Return(nil).Once()

	transfer, err := suite.service.RegisterPrivateConsumption(ctx, dto.RegisterPrivateConsumptionRequest{
		MemberID: suite.member.MemberID,
		PlanID:   plan.PlanID,
		Amount:   2,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(transfer)
	suite.Equal(suite.now, transfer.Date)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *ConsumptionServiceTestSuite) TestRegisterPrivateConsumption_PublicServiceIsFree() {
	ctx := context.Background()
	plan := suite.consumablePlan()
	plan.IsPublicService = true

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Type == domain.TransferPrivateConsumption && t.Value.IsZero()
	})).Return(nil).Once()

	transfer, err := suite.service.RegisterPrivateConsumption(ctx, dto.RegisterPrivateConsumptionRequest{
		MemberID: suite.member.MemberID,
		PlanID:   plan.PlanID,
		Amount:   3,
	})

	suite.Require().NoError(err)
	suite.True(transfer.Value.IsZero())
}

func (suite *ConsumptionServiceTestSuite) TestRegisterPrivateConsumption_InactivePlan() {
	ctx := context.Background()
	plan := suite.consumablePlan()
	expired := suite.now.AddDate(0, 0, -1)
	plan.ExpirationDate = &expired

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()

	transfer, err := suite.service.RegisterPrivateConsumption(ctx, dto.RegisterPrivateConsumptionRequest{
		MemberID: suite.member.MemberID,
		PlanID:   plan.PlanID,
		Amount:   1,
	})

	suite.Require().Error(err)
	suite.Nil(transfer)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

func (suite *ConsumptionServiceTestSuite) TestRegisterProductiveConsumption_MeansOfProduction() {
	ctx := context.Background()
	plan := suite.consumablePlan()

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Type == domain.TransferProductiveConsumptionP &&
			t.DebitAccountID == suite.consumer.MeansAccountID &&
			t.CreditAccountID == suite.planner.ProductAccountID &&
			t.Value.Equal(decimal.NewFromInt(15))
	})).Return(nil).Once()

	transfer, err := suite.service.RegisterProductiveConsumption(ctx, dto.RegisterProductiveConsumptionRequest{
		CompanyID: suite.consumer.CompanyID,
		PlanID:    plan.PlanID,
		Amount:    5,
		Purpose:   services.PurposeMeansOfProduction,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(transfer)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *ConsumptionServiceTestSuite) TestRegisterProductiveConsumption_RawMaterials() {
	ctx := context.Background()
	plan := suite.consumablePlan()

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Type == domain.TransferProductiveConsumptionR &&
			t.DebitAccountID == suite.consumer.ResourcesAccountID
	})).Return(nil).Once()

	transfer, err := suite.service.RegisterProductiveConsumption(ctx, dto.RegisterProductiveConsumptionRequest{
		CompanyID: suite.consumer.CompanyID,
		PlanID:    plan.PlanID,
		Amount:    1,
		Purpose:   services.PurposeRawMaterials,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(transfer)
}

func (suite *ConsumptionServiceTestSuite) TestRegisterProductiveConsumption_OwnProduct() {
	ctx := context.Background()
	plan := suite.consumablePlan()
	plan.PlannerID = suite.consumer.CompanyID

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()

	transfer, err := suite.service.RegisterProductiveConsumption(ctx, dto.RegisterProductiveConsumptionRequest{
		CompanyID: suite.consumer.CompanyID,
		PlanID:    plan.PlanID,
		Amount:    1,
		Purpose:   services.PurposeMeansOfProduction,
	})

	suite.Require().Error(err)
	suite.Nil(transfer)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

func (suite *ConsumptionServiceTestSuite) TestRegisterProductiveConsumption_UnknownPurpose() {
	ctx := context.Background()
	plan := suite.consumablePlan()

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()

	transfer, err := suite.service.RegisterProductiveConsumption(ctx, dto.RegisterProductiveConsumptionRequest{
		CompanyID: suite.consumer.CompanyID,
		PlanID:    plan.PlanID,
		Amount:    1,
		Purpose:   "SPECULATION",
	})

	suite.Require().Error(err)
	suite.Nil(transfer)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestConsumptionService(t *testing.T) {
	suite.Run(t, new(ConsumptionServiceTestSuite))
}
