package services_test

import (
	"context"
	"testing"

	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/pviana/retail_banking_app/internal/core/domain"
	portssvc "github.com/pviana/retail_banking_app/internal/core/ports/services"
	"github.com/pviana/retail_banking_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account *domain.CheckingAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, number int64) (*domain.CheckingAccount, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckingAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]*domain.CheckingAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CheckingAccount), args.Error(1)
}

func (m *MockAccountRepository) CountAccounts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockCustomerRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestOpenAccount_Success() {
	ctx := context.Background()
	customer := domain.NewIndividual("cust-1", "Maria Silva", "01-02-1990", "111", "Rua A, 1")

	suite.mockCustomerRepo.On("FindCustomerByIdentifier", ctx, "111").Return(customer, nil).Once()
	// Two accounts already exist in the registry, so the new one gets number 3.
	suite.mockAccountRepo.On("CountAccounts", ctx).Return(int64(2), nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("*domain.CheckingAccount")).Return(nil).Once()

	account, err := suite.service.OpenAccount(ctx, "111")

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(int64(3), account.Number())
	suite.Equal(domain.DefaultBranchCode, account.BranchCode())
	suite.Equal("cust-1", account.CustomerID())
	suite.Equal("0", account.Balance().String())
	suite.Equal("500", account.Ceiling().String())

	// The customer now holds the new account.
	accounts := customer.Accounts()
	suite.Require().Len(accounts, 1)
	suite.Same(account, accounts[0])

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestOpenAccount_BranchCodeOption() {
	ctx := context.Background()
	customer := domain.NewBusiness("cust-2", "Empresa XYZ Ltda", "222", "Av B, 2")
	service := services.NewAccountService(suite.mockAccountRepo, suite.mockCustomerRepo, services.WithBranchCode("0042"))

	suite.mockCustomerRepo.On("FindCustomerByIdentifier", ctx, "222").Return(customer, nil).Once()
	suite.mockAccountRepo.On("CountAccounts", ctx).Return(int64(0), nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("*domain.CheckingAccount")).Return(nil).Once()

	account, err := service.OpenAccount(ctx, "222")

	suite.Require().NoError(err)
	suite.Equal(int64(1), account.Number())
	suite.Equal("0042", account.BranchCode())
}

func (suite *AccountServiceTestSuite) TestOpenAccount_CustomerNotFound() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("FindCustomerByIdentifier", ctx, "999").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.OpenAccount(ctx, "999")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccountSummaries() {
	ctx := context.Background()
	maria := domain.NewIndividual("cust-1", "Maria Silva", "01-02-1990", "111", "Rua A, 1")
	empresa := domain.NewBusiness("cust-2", "Empresa XYZ Ltda", "222", "Av B, 2")
	first := domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")
	second := domain.NewCheckingAccount(2, domain.DefaultBranchCode, "cust-2")

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]*domain.CheckingAccount{first, second}, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(maria, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-2").Return(empresa, nil).Once()

	summaries, err := suite.service.ListAccountSummaries(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.Equal(int64(1), summaries[0].Number)
	suite.Equal("Maria Silva", summaries[0].HolderName)
	suite.Equal(int64(2), summaries[1].Number)
	suite.Equal("Empresa XYZ Ltda", summaries[1].HolderName)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccountSummaries_Empty() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]*domain.CheckingAccount{}, nil).Once()

	summaries, err := suite.service.ListAccountSummaries(ctx)

	suite.Require().NoError(err)
	suite.NotNil(summaries)
	suite.Empty(summaries)
}

func (suite *AccountServiceTestSuite) TestChangeCeiling_Success() {
	ctx := context.Background()
	customer := domain.NewIndividual("cust-1", "Maria Silva", "01-02-1990", "111", "Rua A, 1")
	account := domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")
	customer.AddAccount(account)

	suite.mockCustomerRepo.On("FindCustomerByIdentifier", ctx, "111").Return(customer, nil).Once()

	changed, err := suite.service.ChangeCeiling(ctx, "111", 1, decimal.NewFromInt(2000))

	suite.Require().NoError(err)
	suite.Same(account, changed)
	suite.Equal("2000", changed.Ceiling().String())
	suite.Equal(1, changed.CeilingChanges())
}

func (suite *AccountServiceTestSuite) TestChangeCeiling_RuleViolations() {
	ctx := context.Background()
	customer := domain.NewIndividual("cust-1", "Maria Silva", "01-02-1990", "111", "Rua A, 1")
	account := domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")
	customer.AddAccount(account)

	suite.mockCustomerRepo.On("FindCustomerByIdentifier", ctx, "111").Return(customer, nil)

	_, err := suite.service.ChangeCeiling(ctx, "111", 1, decimal.NewFromInt(10001))
	suite.ErrorIs(err, apperrors.ErrCeilingChangeTooLarge)

	for _, v := range []int64{9000, 8000, 7000} {
		_, err = suite.service.ChangeCeiling(ctx, "111", 1, decimal.NewFromInt(v))
		suite.Require().NoError(err)
	}

	_, err = suite.service.ChangeCeiling(ctx, "111", 1, decimal.NewFromInt(6000))
	suite.ErrorIs(err, apperrors.ErrCeilingChangeQuotaExhausted)
	suite.Equal("7000", account.Ceiling().String())
}

func (suite *AccountServiceTestSuite) TestChangeCeiling_UnownedAccount() {
	ctx := context.Background()
	customer := domain.NewIndividual("cust-1", "Maria Silva", "01-02-1990", "111", "Rua A, 1")
	customer.AddAccount(domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1"))

	suite.mockCustomerRepo.On("FindCustomerByIdentifier", ctx, "111").Return(customer, nil).Once()

	changed, err := suite.service.ChangeCeiling(ctx, "111", 99, decimal.NewFromInt(2000))

	suite.Require().Error(err)
	suite.Nil(changed)
	suite.ErrorIs(err, apperrors.ErrNoAccountSelected)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
