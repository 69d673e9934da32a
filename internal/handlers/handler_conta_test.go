package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sgcontabil/sgc_backend/internal/apperrors"
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	portssvc "github.com/sgcontabil/sgc_backend/internal/core/ports/services"
	"github.com/sgcontabil/sgc_backend/internal/dto"
	"github.com/sgcontabil/sgc_backend/internal/handlers"
	"github.com/sgcontabil/sgc_backend/internal/middleware"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateContaRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountDetail(ctx context.Context, accountID string) (*portssvc.AccountDetail, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AccountDetail), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListContasParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateContaRequest, updaterUserID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

// --- Test Suite Setup ---
type ContaHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockAccountService
	jwtSecret string
}

// generateTestToken creates a JWT carrying the given role.
func (suite *ContaHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	claims := middleware.AuthClaims{
		Perfil: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "sgc-test",
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ContaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))
	suite.mockSvc = new(MockAccountService)

	contabil := suite.router.Group("/api/v1/contabil")
	handlers.RegisterContaRoutes(contabil, suite.mockSvc)
}

func (suite *ContaHandlerTestSuite) doRequest(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ContaHandlerTestSuite) TestListContas_RequiresToken() {
	w := suite.doRequest(http.MethodGet, "/api/v1/contabil/plano-contas", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(false, resp["sucesso"])
	suite.NotEmpty(resp["mensagem"])
}

func (suite *ContaHandlerTestSuite) TestListContas_Success() {
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Code: "1", Description: "Ativo", Type: domain.AccountTypeAsset, Nature: domain.NatureDebit, Level: 1, IsActive: true},
	}
	suite.mockSvc.On("ListAccounts", mock.Anything, mock.Anything).Return(accounts, nil).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleViewer)
	w := suite.doRequest(http.MethodGet, "/api/v1/contabil/plano-contas?ativo=true", token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Sucesso bool                `json:"sucesso"`
		Contas  []dto.ContaResponse `json:"contas"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Sucesso)
	suite.Require().Len(resp.Contas, 1)
	suite.Equal("1", resp.Contas[0].Codigo)
}

func (suite *ContaHandlerTestSuite) TestCreateConta_RoleGate() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleViewer)
	body := dto.CreateContaRequest{Codigo: "1.1.01", Descricao: "Caixa", Tipo: "ATIVO", Natureza: "DEVEDORA", Nivel: 3}

	w := suite.doRequest(http.MethodPost, "/api/v1/contabil/plano-contas", token, body)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ContaHandlerTestSuite) TestCreateConta_Success() {
	userID := uuid.NewString()
	created := &domain.Account{AccountID: uuid.NewString(), Code: "1.1.01", Description: "Caixa", Type: domain.AccountTypeAsset, Nature: domain.NatureDebit, Level: 3, AllowsPosting: true, IsActive: true}
	suite.mockSvc.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateContaRequest"), userID).Return(created, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleAccountant)
	body := dto.CreateContaRequest{Codigo: "1.1.01", Descricao: "Caixa", Tipo: "ATIVO", Natureza: "DEVEDORA", Nivel: 3, PermiteLancamento: true}

	w := suite.doRequest(http.MethodPost, "/api/v1/contabil/plano-contas", token, body)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *ContaHandlerTestSuite) TestCreateConta_DuplicateMapsTo400() {
	userID := uuid.NewString()
	suite.mockSvc.On("CreateAccount", mock.Anything, mock.Anything, userID).Return(nil, apperrors.ErrDuplicate).Once()

	token := suite.generateTestToken(userID, domain.RoleAdmin)
	body := dto.CreateContaRequest{Codigo: "1.1.01", Descricao: "Caixa", Tipo: "ATIVO", Natureza: "DEVEDORA", Nivel: 3}

	w := suite.doRequest(http.MethodPost, "/api/v1/contabil/plano-contas", token, body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ContaHandlerTestSuite) TestCreateConta_InvalidCodeRejectedByBinding() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)
	body := dto.CreateContaRequest{Codigo: "abc!", Descricao: "Caixa", Tipo: "ATIVO", Natureza: "DEVEDORA", Nivel: 3}

	w := suite.doRequest(http.MethodPost, "/api/v1/contabil/plano-contas", token, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ContaHandlerTestSuite) TestGetConta_NotFoundMapsTo404() {
	accountID := uuid.NewString()
	suite.mockSvc.On("GetAccountDetail", mock.Anything, accountID).Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleViewer)
	w := suite.doRequest(http.MethodGet, "/api/v1/contabil/plano-contas/"+accountID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ContaHandlerTestSuite) TestGetConta_ResolvesHierarchy() {
	accountID := uuid.NewString()
	parent := domain.Account{AccountID: uuid.NewString(), Code: "1", Description: "Ativo"}
	detail := &portssvc.AccountDetail{
		Account: domain.Account{AccountID: accountID, Code: "1.1", Description: "Circulante", ParentAccountID: parent.AccountID},
		Parent:  &parent,
		Children: []domain.Account{
			{AccountID: uuid.NewString(), Code: "1.1.01", Description: "Caixa"},
		},
	}
	suite.mockSvc.On("GetAccountDetail", mock.Anything, accountID).Return(detail, nil).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleViewer)
	w := suite.doRequest(http.MethodGet, "/api/v1/contabil/plano-contas/"+accountID, token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Sucesso bool              `json:"sucesso"`
		Conta   dto.ContaResponse `json:"conta"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Conta.ContaPai)
	suite.Equal("1", resp.Conta.ContaPai.Codigo)
	suite.Len(resp.Conta.ContasFilhas, 1)
}

func (suite *ContaHandlerTestSuite) TestUpdateConta_RoleGateAllowsContador() {
	userID := uuid.NewString()
	accountID := uuid.NewString()
	updated := &domain.Account{AccountID: accountID, Code: "1.1.01", Description: "Caixa Geral", Type: domain.AccountTypeAsset, Nature: domain.NatureDebit, Level: 3, IsActive: true}
	suite.mockSvc.On("UpdateAccount", mock.Anything, accountID, mock.AnythingOfType("dto.UpdateContaRequest"), userID).Return(updated, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleAccountant)
	body := dto.UpdateContaRequest{Codigo: "1.1.01", Descricao: "Caixa Geral", Tipo: "ATIVO", Natureza: "DEVEDORA", Nivel: 3}

	w := suite.doRequest(http.MethodPut, "/api/v1/contabil/plano-contas/"+accountID, token, body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func TestContaHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContaHandlerTestSuite))
}
