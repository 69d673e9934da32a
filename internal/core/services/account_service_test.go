package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sgcontabil/sgc_backend/internal/apperrors"
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	portsrepo "github.com/sgcontabil/sgc_backend/internal/core/ports/repositories"
	portssvc "github.com/sgcontabil/sgc_backend/internal/core/ports/services"
	"github.com/sgcontabil/sgc_backend/internal/core/services"
	"github.com/sgcontabil/sgc_backend/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

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

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error) {
	args := m.Called(ctx, parentAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) CountLinesByAccountID(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	userID   string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func validCreateRequest() dto.CreateContaRequest {
	return dto.CreateContaRequest{
		Codigo:            "1.1.01",
		Descricao:         "Caixa",
		Tipo:              "ATIVO",
		Natureza:          "DEVEDORA",
		Nivel:             3,
		PermiteLancamento: true,
	}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := validCreateRequest()

	suite.mockRepo.On("FindAccountByCode", ctx, "1.1.01").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal("1.1.01", account.Code)
	suite.True(account.IsActive)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := validCreateRequest()
	existing := &domain.Account{AccountID: uuid.NewString(), Code: "1.1.01"}

	suite.mockRepo.On("FindAccountByCode", ctx, "1.1.01").Return(existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Tipo = "PATRIMONIO"

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	ctx := context.Background()
	req := validCreateRequest()
	parentID := uuid.NewString()
	req.ContaPaiID = &parentID

	suite.mockRepo.On("FindAccountByCode", ctx, "1.1.01").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_CodeCollision() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, Code: "1.1.01", IsActive: true}
	other := &domain.Account{AccountID: uuid.NewString(), Code: "1.1.02"}

	req := dto.UpdateContaRequest{
		Codigo:    "1.1.02",
		Descricao: "Caixa Geral",
		Tipo:      "ATIVO",
		Natureza:  "DEVEDORA",
		Nivel:     3,
	}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("FindAccountByCode", ctx, "1.1.02").Return(other, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, accountID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_KeepOwnCode() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, Code: "1.1.01", Type: domain.AccountTypeAsset, Nature: domain.NatureDebit, Level: 3, IsActive: true}

	req := dto.UpdateContaRequest{
		Codigo:            "1.1.01",
		Descricao:         "Caixa Geral",
		Tipo:              "ATIVO",
		Natureza:          "DEVEDORA",
		Nivel:             3,
		PermiteLancamento: true,
	}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, accountID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Caixa Geral", updated.Description)
	suite.True(updated.AllowsPosting)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByCode", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_DeactivationBlockedByLines() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, Code: "1.1.01", Type: domain.AccountTypeAsset, Nature: domain.NatureDebit, Level: 3, IsActive: true}
	inactive := false

	req := dto.UpdateContaRequest{
		Codigo:    "1.1.01",
		Descricao: "Caixa",
		Tipo:      "ATIVO",
		Natureza:  "DEVEDORA",
		Nivel:     3,
		Ativo:     &inactive,
	}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("CountLinesByAccountID", ctx, accountID).Return(int64(4), nil).Once()

	_, err := suite.service.UpdateAccount(ctx, accountID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_DeactivationAllowedWithoutLines() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, Code: "1.1.01", Type: domain.AccountTypeAsset, Nature: domain.NatureDebit, Level: 3, IsActive: true}
	inactive := false

	req := dto.UpdateContaRequest{
		Codigo:    "1.1.01",
		Descricao: "Caixa",
		Tipo:      "ATIVO",
		Natureza:  "DEVEDORA",
		Nivel:     3,
		Ativo:     &inactive,
	}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("CountLinesByAccountID", ctx, accountID).Return(int64(0), nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, accountID, req, suite.userID)

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountDetail_ResolvesHierarchy() {
	ctx := context.Background()
	parentID := uuid.NewString()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Code: "1.1", ParentAccountID: parentID, IsActive: true}
	parent := &domain.Account{AccountID: parentID, Code: "1", IsActive: true}
	children := []domain.Account{
		{AccountID: uuid.NewString(), Code: "1.1.01", ParentAccountID: accountID},
		{AccountID: uuid.NewString(), Code: "1.1.02", ParentAccountID: accountID},
	}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(parent, nil).Once()
	suite.mockRepo.On("FindChildAccounts", ctx, accountID).Return(children, nil).Once()

	detail, err := suite.service.GetAccountDetail(ctx, accountID)

	suite.Require().NoError(err)
	suite.Require().NotNil(detail.Parent)
	suite.Equal("1", detail.Parent.Code)
	suite.Len(detail.Children, 2)
}

func (suite *AccountServiceTestSuite) TestListAccounts_InvalidType() {
	ctx := context.Background()

	_, err := suite.service.ListAccounts(ctx, dto.ListContasParams{Tipo: "INEXISTENTE"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
