package services

import (
	"context"

	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	"github.com/sgcontabil/sgc_backend/internal/dto"
)

// AccountDetail is an account with its resolved hierarchy neighbors.
type AccountDetail struct {
	Account  domain.Account
	Parent   *domain.Account
	Children []domain.Account
}

// AccountSvcFacade is the chart-of-accounts directory.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateContaRequest, creatorUserID string) (*domain.Account, error)
	GetAccountDetail(ctx context.Context, accountID string) (*AccountDetail, error)
	ListAccounts(ctx context.Context, params dto.ListContasParams) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateContaRequest, updaterUserID string) (*domain.Account, error)
	// GetAccountsByIDs is used by the posting validator to resolve line accounts.
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
}
