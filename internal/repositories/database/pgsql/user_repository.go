package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgcontabil/sgc_backend/internal/apperrors"
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	portsrepo "github.com/sgcontabil/sgc_backend/internal/core/ports/repositories"
	"github.com/sgcontabil/sgc_backend/internal/models"
	"github.com/sgcontabil/sgc_backend/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: pool, queryTimeout: queryTimeout}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `usuario_id, nome, email, senha, cargo, perfil, ativo, ultimo_acesso, created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.JobTitle,
		&m.Role,
		&m.IsActive,
		&m.LastAccessAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindUserByEmail retrieves a user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM usuarios WHERE email = $1;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

// FindUserByID retrieves a user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM usuarios WHERE usuario_id = $1;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

// TouchLastAccess records a successful login timestamp.
func (r *PgxUserRepository) TouchLastAccess(ctx context.Context, userID string, at time.Time) error {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `UPDATE usuarios SET ultimo_acesso = $2 WHERE usuario_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, userID, at)
	if err != nil {
		return fmt.Errorf("failed to touch last access for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
