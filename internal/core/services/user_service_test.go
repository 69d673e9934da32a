package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sgcontabil/sgc_backend/internal/apperrors"
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	portsrepo "github.com/sgcontabil/sgc_backend/internal/core/ports/repositories"
	portssvc "github.com/sgcontabil/sgc_backend/internal/core/ports/services"
	"github.com/sgcontabil/sgc_backend/internal/core/services"
	"github.com/sgcontabil/sgc_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastAccess(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	user     *domain.User
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)

	hash, err := utils.HashPassword("senha-correta")
	suite.Require().NoError(err)

	suite.user = &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Maria Contadora",
		Email:        "maria@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAccountant,
		IsActive:     true,
	}
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "maria@example.com").Return(suite.user, nil).Once()
	suite.mockRepo.On("TouchLastAccess", ctx, suite.user.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	user, err := suite.service.Authenticate(ctx, "maria@example.com", "senha-correta")

	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, user.UserID)
	suite.Require().NotNil(user.LastAccessAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "maria@example.com").Return(suite.user, nil).Once()

	_, err := suite.service.Authenticate(ctx, "maria@example.com", "senha-errada")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "TouchLastAccess", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "nobody@example.com", "qualquer")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveUser() {
	ctx := context.Background()
	inactive := *suite.user
	inactive.IsActive = false

	suite.mockRepo.On("FindUserByEmail", ctx, "maria@example.com").Return(&inactive, nil).Once()

	_, err := suite.service.Authenticate(ctx, "maria@example.com", "senha-correta")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_TouchFailureDoesNotBlockLogin() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "maria@example.com").Return(suite.user, nil).Once()
	suite.mockRepo.On("TouchLastAccess", ctx, suite.user.UserID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "maria@example.com", "senha-correta")

	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, user.UserID)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
