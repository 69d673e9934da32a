package services

import (
	"context"

	"github.com/sgcontabil/sgc_backend/internal/core/domain"
)

// UserSvcFacade supports the login flow.
type UserSvcFacade interface {
	// Authenticate verifies credentials against the stored bcrypt hash and
	// touches the user's last access timestamp. Inactive users fail with
	// apperrors.ErrForbidden; bad credentials with apperrors.ErrNotFound.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
