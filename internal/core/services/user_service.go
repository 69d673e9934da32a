package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sgcontabil/sgc_backend/internal/apperrors"
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	portsrepo "github.com/sgcontabil/sgc_backend/internal/core/ports/repositories"
	portssvc "github.com/sgcontabil/sgc_backend/internal/core/ports/services"
	"github.com/sgcontabil/sgc_backend/internal/middleware"
	"github.com/sgcontabil/sgc_backend/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the login-support service.
func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Authenticate verifies the credentials and records the login. Unknown
// emails and wrong passwords both come back as ErrNotFound so the handler
// can answer with a single "invalid credentials" message.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("credenciais inválidas: %w", apperrors.ErrNotFound)
		}
		logger.Error("Failed to find user by email", slog.String("error", err.Error()))
		return nil, err
	}

	if !user.IsActive {
		return nil, fmt.Errorf("usuário inativo: %w", apperrors.ErrForbidden)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("credenciais inválidas: %w", apperrors.ErrNotFound)
	}

	now := time.Now()
	if err := s.userRepo.TouchLastAccess(ctx, user.UserID, now); err != nil {
		// Login still succeeds; the timestamp is informational.
		logger.Warn("Failed to record last access", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
	} else {
		user.LastAccessAt = &now
	}

	logger.Info("User authenticated", slog.String("user_id", user.UserID))
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
