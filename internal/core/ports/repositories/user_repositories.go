package repositories

import (
	"context"
	"time"

	"github.com/sgcontabil/sgc_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	// FindUserByEmail returns apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindUserByID returns apperrors.ErrNotFound when absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// TouchLastAccess records a successful login.
	TouchLastAccess(ctx context.Context, userID string, at time.Time) error
}
