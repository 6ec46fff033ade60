package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
)

// Shared mocks for the repository and collaborator interfaces the
// services depend on. Each suite instantiates only what it needs.

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

// MockTransferRepository is a mock type for the TransferRepositoryFacade interface
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) ListTransfersByAccountID(ctx context.Context, accountID string, limit, offset int) ([]domain.Transfer, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) BalanceOfAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransferRepository) GlobalTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// MockPlanRepository is a mock type for the PlanRepositoryFacade interface
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindDraftByID(ctx context.Context, draftID string) (*domain.PlanDraft, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanDraft), args.Error(1)
}

func (m *MockPlanRepository) ListDraftsByCompany(ctx context.Context, companyID string) ([]domain.PlanDraft, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlanDraft), args.Error(1)
}

func (m *MockPlanRepository) SaveDraft(ctx context.Context, draft domain.PlanDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockPlanRepository) DeleteDraft(ctx context.Context, draftID string) error {
	args := m.Called(ctx, draftID)
	return args.Error(0)
}

func (m *MockPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListPlansByCompany(ctx context.Context, companyID string, includeHidden bool) ([]domain.Plan, error) {
	args := m.Called(ctx, companyID, includeHidden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListActivePlans(ctx context.Context, now time.Time) ([]domain.Plan, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListPlansOfCooperation(ctx context.Context, cooperationID string) ([]domain.Plan, error) {
	args := m.Called(ctx, cooperationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListPlansAwaitingActivation(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListExpiredPlansToSettle(ctx context.Context, now time.Time) ([]domain.Plan, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) FilePlanFromDraft(ctx context.Context, plan domain.Plan, draftID string) error {
	args := m.Called(ctx, plan, draftID)
	return args.Error(0)
}

func (m *MockPlanRepository) ApprovePlan(ctx context.Context, plan domain.Plan, credits []domain.Transfer) error {
	args := m.Called(ctx, plan, credits)
	return args.Error(0)
}

func (m *MockPlanRepository) RejectPlan(ctx context.Context, plan domain.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdatePlanSchedule(ctx context.Context, plan domain.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdatePlan(ctx context.Context, plan domain.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

// MockCooperationRepository is a mock type for the CooperationRepositoryFacade interface
type MockCooperationRepository struct {
	mock.Mock
}

func (m *MockCooperationRepository) FindCooperationByID(ctx context.Context, cooperationID string) (*domain.Cooperation, error) {
	args := m.Called(ctx, cooperationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cooperation), args.Error(1)
}

func (m *MockCooperationRepository) ListCooperations(ctx context.Context) ([]domain.Cooperation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cooperation), args.Error(1)
}

func (m *MockCooperationRepository) SaveCooperation(ctx context.Context, cooperation domain.Cooperation, account domain.Account, tenure domain.CoordinationTenure) error {
	args := m.Called(ctx, cooperation, account, tenure)
	return args.Error(0)
}

func (m *MockCooperationRepository) CommitMembershipChange(ctx context.Context, cooperationID string, reprice portsrepo.RepriceFunc) error {
	args := m.Called(ctx, cooperationID, reprice)
	return args.Error(0)
}

// MockCoordinationRepository is a mock type for the CoordinationRepositoryFacade interface
type MockCoordinationRepository struct {
	mock.Mock
}

func (m *MockCoordinationRepository) FindOpenTenure(ctx context.Context, cooperationID string) (*domain.CoordinationTenure, error) {
	args := m.Called(ctx, cooperationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoordinationTenure), args.Error(1)
}

func (m *MockCoordinationRepository) FindTenureByID(ctx context.Context, tenureID string) (*domain.CoordinationTenure, error) {
	args := m.Called(ctx, tenureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoordinationTenure), args.Error(1)
}

func (m *MockCoordinationRepository) ListTenures(ctx context.Context, cooperationID string) ([]domain.CoordinationTenure, error) {
	args := m.Called(ctx, cooperationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoordinationTenure), args.Error(1)
}

func (m *MockCoordinationRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.CoordinationTransferRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoordinationTransferRequest), args.Error(1)
}

func (m *MockCoordinationRepository) FindPendingRequestByTenure(ctx context.Context, tenureID string) (*domain.CoordinationTransferRequest, error) {
	args := m.Called(ctx, tenureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoordinationTransferRequest), args.Error(1)
}

func (m *MockCoordinationRepository) SaveTransferRequest(ctx context.Context, request domain.CoordinationTransferRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockCoordinationRepository) CloseTransferRequest(ctx context.Context, requestID string, status domain.TransferRequestStatus) error {
	args := m.Called(ctx, requestID, status)
	return args.Error(0)
}

func (m *MockCoordinationRepository) RotateTenure(ctx context.Context, closing domain.CoordinationTenure, opening domain.CoordinationTenure, request domain.CoordinationTransferRequest) error {
	args := m.Called(ctx, closing, opening, request)
	return args.Error(0)
}

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompaniesByIDs(ctx context.Context, companyIDs []string) (map[string]domain.Company, error) {
	args := m.Called(ctx, companyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockCompanyRepository) IsWorkerAt(ctx context.Context, memberID, companyID string) (bool, error) {
	args := m.Called(ctx, memberID, companyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, accounts []domain.Account) error {
	args := m.Called(ctx, company, accounts)
	return args.Error(0)
}

func (m *MockCompanyRepository) SaveMember(ctx context.Context, member domain.Member, account domain.Account) error {
	args := m.Called(ctx, member, account)
	return args.Error(0)
}

func (m *MockCompanyRepository) AddWorker(ctx context.Context, companyID, memberID string) error {
	args := m.Called(ctx, companyID, memberID)
	return args.Error(0)
}

func (m *MockCompanyRepository) SocialAccounting(ctx context.Context) (*domain.SocialAccounting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocialAccounting), args.Error(1)
}

func (m *MockCompanyRepository) EnsureSocialAccounting(ctx context.Context, now time.Time) (*domain.SocialAccounting, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocialAccounting), args.Error(1)
}

// MockNotifier is a mock type for the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PlanRejected(ctx context.Context, event domain.PlanRejectedEvent) {
	m.Called(ctx, event)
}

func (m *MockNotifier) CooperationRequested(ctx context.Context, event domain.CooperationRequestedEvent) {
	m.Called(ctx, event)
}

func (m *MockNotifier) CoordinationTransferRequested(ctx context.Context, event domain.CoordinationTransferRequestedEvent) {
	m.Called(ctx, event)
}

// fixedClock freezes time for the suites.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fixedPayout supplies a constant payout factor.
type fixedPayout struct {
	factor decimal.Decimal
}

func (p fixedPayout) PayoutFactor(_ context.Context) decimal.Decimal {
	return p.factor
}
