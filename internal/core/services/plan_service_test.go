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

type PlanServiceTestSuite struct {
	suite.Suite
	mockPlanRepo     *MockPlanRepository
	mockCompanyRepo  *MockCompanyRepository
	mockAccountRepo  *MockAccountRepository
	mockTransferRepo *MockTransferRepository
	mockCoopRepo     *MockCooperationRepository
	mockCoordRepo    *MockCoordinationRepository
	mockNotifier     *MockNotifier
	service          portssvc.PlanSvcFacade

	now     time.Time
	company domain.Company
	sa      domain.SocialAccounting
}

func (suite *PlanServiceTestSuite) SetupTest() {
	suite.mockPlanRepo = new(MockPlanRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockCoopRepo = new(MockCooperationRepository)
	suite.mockCoordRepo = new(MockCoordinationRepository)
	suite.mockNotifier = new(MockNotifier)

	suite.now = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	clk := fixedClock{now: suite.now}

	ledgerSvc := services.NewLedgerService(suite.mockAccountRepo, suite.mockTransferRepo)
	pricingSvc := services.NewPricingService(suite.mockCompanyRepo, ledgerSvc, clk)
	cooperationSvc := services.NewCooperationService(suite.mockCoopRepo, suite.mockCoordRepo, suite.mockPlanRepo, pricingSvc, suite.mockNotifier, clk)
	suite.service = services.NewPlanService(suite.mockPlanRepo, suite.mockCompanyRepo, ledgerSvc, pricingSvc, cooperationSvc, suite.mockNotifier, clk)

	suite.company = domain.Company{
		CompanyID:          uuid.NewString(),
		Name:               "bread works",
		MeansAccountID:     uuid.NewString(),
		ResourcesAccountID: uuid.NewString(),
		LabourAccountID:    uuid.NewString(),
		ProductAccountID:   uuid.NewString(),
	}
	suite.sa = domain.SocialAccounting{
		ID:           "social-accounting",
		AccountID:    uuid.NewString(),
		PSFAccountID: uuid.NewString(),
	}

	accounts := map[string]domain.Account{
		suite.sa.AccountID:                {AccountID: suite.sa.AccountID, Kind: domain.KindSocial},
		suite.sa.PSFAccountID:             {AccountID: suite.sa.PSFAccountID, Kind: domain.KindSocial},
		suite.company.MeansAccountID:      {AccountID: suite.company.MeansAccountID, Kind: domain.KindMeans},
		suite.company.ResourcesAccountID:  {AccountID: suite.company.ResourcesAccountID, Kind: domain.KindResources},
		suite.company.LabourAccountID:     {AccountID: suite.company.LabourAccountID, Kind: domain.KindLabour},
		suite.company.ProductAccountID:    {AccountID: suite.company.ProductAccountID, Kind: domain.KindProduct},
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(accounts, nil).Maybe()
	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, suite.company.CompanyID).Return(&suite.company, nil).Maybe()
	suite.mockCompanyRepo.On("EnsureSocialAccounting", mock.Anything, suite.now).Return(&suite.sa, nil).Maybe()
}

func (suite *PlanServiceTestSuite) filedPlan() *domain.Plan {
	return &domain.Plan{
		PlanID:    uuid.NewString(),
		PlannerID: suite.company.CompanyID,
		Costs: domain.ProductionCosts{
			Means:     decimal.NewFromInt(10),
			Resources: decimal.Zero,
			Labour:    decimal.NewFromInt(20),
		},
		ProductName:   "bread",
		ProductUnit:   "loaf",
		Amount:        10,
		TimeframeDays: 14,
		CreationDate:  suite.now.Add(-48 * time.Hour),
		FilingDate:    suite.now.Add(-24 * time.Hour),
		PricePerUnit:  decimal.Zero,
	}
}

func (suite *PlanServiceTestSuite) TestCreateDraft_Success() {
	ctx := context.Background()
	req := dto.CreateDraftRequest{
		PlannerID:     suite.company.CompanyID,
		ProductName:   "bread",
		CostsMeans:    decimal.NewFromInt(5),
		CostsRaw:      decimal.NewFromInt(3),
		CostsLabour:   decimal.NewFromInt(12),
		ProductUnit:   "loaf",
		Amount:        100,
		TimeframeDays: 30,
	}

	suite.mockPlanRepo.On("SaveDraft", ctx, mock.AnythingOfType("domain.PlanDraft")).Return(nil).Once()

	draft, err := suite.service.CreateDraft(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.NotEmpty(draft.DraftID)
	suite.Equal(req.PlannerID, draft.PlannerID)
	suite.True(draft.Costs.Total().Equal(decimal.NewFromInt(20)))
	suite.Equal(suite.now, draft.CreationDate)
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestCreateDraft_NegativeCosts() {
	ctx := context.Background()
	req := dto.CreateDraftRequest{
		PlannerID:   suite.company.CompanyID,
		CostsMeans:  decimal.NewFromInt(-1),
		Amount:      10,
		ProductName: "bread",
	}

	draft, err := suite.service.CreateDraft(ctx, req)

	suite.Require().Error(err)
	suite.Nil(draft)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPlanRepo.AssertNotCalled(suite.T(), "SaveDraft", mock.Anything, mock.Anything)
}

func (suite *PlanServiceTestSuite) TestDeleteDraft_Forbidden() {
	ctx := context.Background()
	draft := &domain.PlanDraft{DraftID: uuid.NewString(), PlannerID: suite.company.CompanyID}

	suite.mockPlanRepo.On("FindDraftByID", ctx, draft.DraftID).Return(draft, nil).Once()

	err := suite.service.DeleteDraft(ctx, draft.DraftID, "someone-else")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPlanRepo.AssertNotCalled(suite.T(), "DeleteDraft", mock.Anything, mock.Anything)
}

func (suite *PlanServiceTestSuite) TestFilePlan_Success() {
	ctx := context.Background()
	draft := &domain.PlanDraft{
		DraftID:       uuid.NewString(),
		PlannerID:     suite.company.CompanyID,
		Costs:         domain.ProductionCosts{Labour: decimal.NewFromInt(10)},
		ProductName:   "bread",
		Amount:        10,
		TimeframeDays: 14,
		CreationDate:  suite.now.Add(-time.Hour),
	}

	suite.mockPlanRepo.On("FindDraftByID", ctx, draft.DraftID).Return(draft, nil).Once()
	suite.mockPlanRepo.On("FilePlanFromDraft", ctx, mock.MatchedBy(func(p domain.Plan) bool {
		return p.PlannerID == draft.PlannerID &&
			p.ProductName == draft.ProductName &&
			p.FilingDate.Equal(suite.now) &&
			p.ApprovalDate == nil
	}), draft.DraftID).Return(nil).Once()

	plan, err := suite.service.FilePlan(ctx, draft.DraftID, suite.company.CompanyID)

	suite.Require().NoError(err)
	suite.Require().NotNil(plan)
	suite.NotEmpty(plan.PlanID)
	suite.Equal(draft.CreationDate, plan.CreationDate)
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestApprovePlan_Success() {
	ctx := context.Background()
	plan := suite.filedPlan()
	expectedExpiration := suite.now.AddDate(0, 0, plan.TimeframeDays)

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockPlanRepo.On("ApprovePlan", ctx, mock.MatchedBy(func(p domain.Plan) bool {
		return p.ApprovalDate != nil && p.ApprovalDate.Equal(suite.now) &&
			p.ActivationDate != nil && p.ActivationDate.Equal(suite.now) &&
			p.ExpirationDate != nil && p.ExpirationDate.Equal(expectedExpiration) &&
			p.PricePerUnit.Equal(decimal.NewFromInt(3))
	}), mock.MatchedBy(func(credits []domain.Transfer) bool {
		// Two cost components are non-zero, so exactly two credits.
		if len(credits) != 2 {
			return false
		}
		return credits[0].Type == domain.TransferCreditP &&
			credits[0].Value.Equal(decimal.NewFromInt(10)) &&
			credits[0].DebitAccountID == suite.sa.AccountID &&
			credits[0].CreditAccountID == suite.company.MeansAccountID &&
			credits[1].Type == domain.TransferCreditA &&
			credits[1].Value.Equal(decimal.NewFromInt(20)) &&
			credits[1].CreditAccountID == suite.company.LabourAccountID
	})).Return(nil).Once()

	approved, err := suite.service.ApprovePlan(ctx, plan.PlanID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(approved)
	suite.Equal(domain.PlanActive, approved.StatusAsOf(suite.now))
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestApprovePlan_PublicServiceUsesPublicCredit() {
	ctx := context.Background()
	plan := suite.filedPlan()
	plan.IsPublicService = true

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockPlanRepo.On("ApprovePlan", ctx, mock.MatchedBy(func(p domain.Plan) bool {
		return p.PricePerUnit.IsZero()
	}), mock.MatchedBy(func(credits []domain.Transfer) bool {
		return len(credits) == 2 &&
			credits[0].Type == domain.TransferCreditPublicP &&
			credits[1].Type == domain.TransferCreditPublicA
	})).Return(nil).Once()

	_, err := suite.service.ApprovePlan(ctx, plan.PlanID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestApprovePlan_AlreadyReviewed() {
	ctx := context.Background()
	plan := suite.filedPlan()
	approval := suite.now.Add(-time.Hour)
	plan.ApprovalDate = &approval

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()

	approved, err := suite.service.ApprovePlan(ctx, plan.PlanID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(approved)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	suite.mockPlanRepo.AssertNotCalled(suite.T(), "ApprovePlan", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PlanServiceTestSuite) TestRejectPlan_Success() {
	ctx := context.Background()
	plan := suite.filedPlan()

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockPlanRepo.On("RejectPlan", ctx, mock.MatchedBy(func(p domain.Plan) bool {
		return p.RejectionDate != nil && p.RejectionDate.Equal(suite.now)
	})).Return(nil).Once()
	suite.mockNotifier.On("PlanRejected", ctx, mock.AnythingOfType("domain.PlanRejectedEvent")).Once()

	resp, err := suite.service.RejectPlan(ctx, plan.PlanID, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(resp.IsPlanRejected)
	suite.Equal(plan.PlanID, resp.PlanID)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestRejectPlan_AlreadyRejected() {
	ctx := context.Background()
	plan := suite.filedPlan()
	rejection := suite.now.Add(-time.Hour)
	plan.RejectionDate = &rejection

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()

	resp, err := suite.service.RejectPlan(ctx, plan.PlanID, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(resp.IsPlanRejected)
	suite.mockPlanRepo.AssertNotCalled(suite.T(), "RejectPlan", mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "PlanRejected", mock.Anything, mock.Anything)
}

func (suite *PlanServiceTestSuite) TestRejectPlan_LostRace() {
	// A concurrent reviewer rejected between our read and our guarded
	// write. The caller still gets a definite answer.
	ctx := context.Background()
	plan := suite.filedPlan()
	rejectedCopy := *plan
	rejection := suite.now
	rejectedCopy.RejectionDate = &rejection

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockPlanRepo.On("RejectPlan", ctx, mock.AnythingOfType("domain.Plan")).Return(apperrors.ErrInvalidStateTransition).Once()
	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(&rejectedCopy, nil).Once()

	resp, err := suite.service.RejectPlan(ctx, plan.PlanID, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(resp.IsPlanRejected)
	suite.mockNotifier.AssertNotCalled(suite.T(), "PlanRejected", mock.Anything, mock.Anything)
}

func (suite *PlanServiceTestSuite) TestRejectPlan_ApprovedIsTerminal() {
	ctx := context.Background()
	plan := suite.filedPlan()
	approval := suite.now.Add(-time.Hour)
	plan.ApprovalDate = &approval

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()

	resp, err := suite.service.RejectPlan(ctx, plan.PlanID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

func (suite *PlanServiceTestSuite) expiredPlan() *domain.Plan {
	plan := suite.filedPlan()
	approval := suite.now.AddDate(0, 0, -30)
	expiration := suite.now.AddDate(0, 0, -16)
	plan.ApprovalDate = &approval
	plan.ActivationDate = &approval
	plan.ExpirationDate = &expiration
	return plan
}

func (suite *PlanServiceTestSuite) TestRenewPlan_Success() {
	ctx := context.Background()
	plan := suite.expiredPlan()

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockPlanRepo.On("SaveDraft", ctx, mock.MatchedBy(func(d domain.PlanDraft) bool {
		return d.PlannerID == plan.PlannerID &&
			d.ProductName == plan.ProductName &&
			d.Amount == plan.Amount &&
			d.CreationDate.Equal(suite.now)
	})).Return(nil).Once()

	draft, err := suite.service.RenewPlan(ctx, plan.PlanID, suite.company.CompanyID)

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.NotEqual(plan.PlanID, draft.DraftID)
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestRenewPlan_NotExpired() {
	ctx := context.Background()
	plan := suite.filedPlan()
	approval := suite.now.Add(-time.Hour)
	expiration := suite.now.AddDate(0, 0, 10)
	plan.ApprovalDate = &approval
	plan.ActivationDate = &approval
	plan.ExpirationDate = &expiration

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()

	draft, err := suite.service.RenewPlan(ctx, plan.PlanID, suite.company.CompanyID)

	suite.Require().Error(err)
	suite.Nil(draft)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

func (suite *PlanServiceTestSuite) TestHidePlan_Success() {
	ctx := context.Background()
	plan := suite.expiredPlan()

	suite.mockPlanRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockPlanRepo.On("UpdatePlan", ctx, mock.MatchedBy(func(p domain.Plan) bool {
		return p.HiddenByUser
	})).Return(nil).Once()

	err := suite.service.HidePlan(ctx, plan.PlanID, suite.company.CompanyID)

	suite.Require().NoError(err)
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestSynchronizedActivation_ActivatesAndSettles() {
	ctx := context.Background()

	// One approved plan awaiting activation.
	awaiting := *suite.filedPlan()
	approval := suite.now.Add(-2 * time.Hour)
	awaiting.ApprovalDate = &approval
	expectedExpiration := suite.now.AddDate(0, 0, awaiting.TimeframeDays)

	// One expired plan still holding a pending cooperation request.
	settling := *suite.expiredPlan()
	coopID := uuid.NewString()
	settling.RequestedCooperationID = &coopID

	suite.mockPlanRepo.On("ListPlansAwaitingActivation", ctx).Return([]domain.Plan{awaiting}, nil).Once()
	suite.mockPlanRepo.On("UpdatePlanSchedule", ctx, mock.MatchedBy(func(p domain.Plan) bool {
		return p.PlanID == awaiting.PlanID &&
			p.ActivationDate != nil && p.ActivationDate.Equal(suite.now) &&
			p.ExpirationDate != nil && p.ExpirationDate.Equal(expectedExpiration)
	})).Return(nil).Once()

	suite.mockPlanRepo.On("ListExpiredPlansToSettle", ctx, suite.now).Return([]domain.Plan{settling}, nil).Once()
	suite.mockPlanRepo.On("UpdatePlan", ctx, mock.MatchedBy(func(p domain.Plan) bool {
		return p.PlanID == settling.PlanID && p.RequestedCooperationID == nil
	})).Return(nil).Once()

	resp, err := suite.service.SynchronizedActivation(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, resp.ActivatedPlans)
	suite.Equal(1, resp.ExpiredPlans)
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestSynchronizedActivation_NothingToDo() {
	ctx := context.Background()

	suite.mockPlanRepo.On("ListPlansAwaitingActivation", ctx).Return([]domain.Plan{}, nil).Once()
	suite.mockPlanRepo.On("ListExpiredPlansToSettle", ctx, suite.now).Return([]domain.Plan{}, nil).Once()

	resp, err := suite.service.SynchronizedActivation(ctx)

	suite.Require().NoError(err)
	suite.Zero(resp.ActivatedPlans)
	suite.Zero(resp.ExpiredPlans)
}

func TestPlanService(t *testing.T) {
	suite.Run(t, new(PlanServiceTestSuite))
}
