package repositories

import (
	"context"

	"github.com/sgcontabil/sgc_backend/internal/core/domain"
)

// AccountFilter narrows ListAccounts results.
type AccountFilter struct {
	Active *bool
	Type   domain.AccountType
}

// AccountRepositoryFacade defines persistence operations for the chart of accounts.
type AccountRepositoryFacade interface {
	// SaveAccount inserts a new account. Returns apperrors.ErrDuplicate when
	// the code collides with an existing row (unique index on code).
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccountsByIDs returns the found subset keyed by ID; missing IDs are
	// simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	// FindAccountByCode returns apperrors.ErrNotFound when the code is unused.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	// FindChildAccounts lists direct children ordered by code.
	FindChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error)
	// ListAccounts applies the filter, ordered by code ascending.
	ListAccounts(ctx context.Context, filter AccountFilter) ([]domain.Account, error)
	// UpdateAccount rewrites the mutable columns. Returns ErrNotFound when the
	// row vanished and ErrDuplicate on a code collision.
	UpdateAccount(ctx context.Context, account domain.Account) error
	// CountLinesByAccountID reports how many journal lines reference the account.
	CountLinesByAccountID(ctx context.Context, accountID string) (int64, error)
}
