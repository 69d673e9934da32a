package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgcontabil/sgc_backend/internal/apperrors"
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	portsrepo "github.com/sgcontabil/sgc_backend/internal/core/ports/repositories"
	"github.com/sgcontabil/sgc_backend/internal/models"
	"github.com/sgcontabil/sgc_backend/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool, queryTimeout: queryTimeout}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `conta_id, codigo, descricao, tipo, natureza, nivel, conta_pai_id, permite_lancamento, ativo, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	var parentID sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.Code,
		&m.Description,
		&m.Type,
		&m.Nature,
		&m.Level,
		&parentID,
		&m.AllowsPosting,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		m.ParentAccountID = parentID.String
	}
	return &m, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO plano_contas (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	var parentID sql.NullString
	if m.ParentAccountID != "" {
		parentID = sql.NullString{String: m.ParentAccountID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Code,
		m.Description,
		m.Type,
		m.Nature,
		m.Level,
		parentID,
		m.AllowsPosting,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: conta com código %s já existe", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + ` FROM plano_contas WHERE conta_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindAccountByCode retrieves an account by its unique code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + ` FROM plano_contas WHERE codigo = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account code %s: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", code, err)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by ID. Missing IDs are
// absent from the returned map, not an error.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + ` FROM plano_contas WHERE conta_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	found := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		found[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return found, nil
}

// FindChildAccounts lists direct children of an account ordered by code.
func (r *PgxAccountRepository) FindChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + ` FROM plano_contas WHERE conta_pai_id = $1 ORDER BY codigo ASC;`

	rows, err := r.Pool.Query(ctx, query, parentAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query child accounts of %s: %w", parentAccountID, err)
	}
	defer rows.Close()

	var children []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		children = append(children, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(children), nil
}

// ListAccounts applies the filter and returns accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + ` FROM plano_contas WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Active != nil {
		query += fmt.Sprintf(" AND ativo = $%d", argIdx)
		args = append(args, *filter.Active)
		argIdx++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND tipo = $%d", argIdx)
		args = append(args, string(filter.Type))
		argIdx++
	}
	query += " ORDER BY codigo ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// UpdateAccount rewrites the mutable columns of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	m := mapping.ToModelAccount(account)

	query := `
		UPDATE plano_contas
		SET codigo = $2, descricao = $3, tipo = $4, natureza = $5, nivel = $6,
		    conta_pai_id = $7, permite_lancamento = $8, ativo = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE conta_id = $1;
	`
	var parentID sql.NullString
	if m.ParentAccountID != "" {
		parentID = sql.NullString{String: m.ParentAccountID, Valid: true}
	}

	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Code,
		m.Description,
		m.Type,
		m.Nature,
		m.Level,
		parentID,
		m.AllowsPosting,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: conta com código %s já existe", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", m.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

// CountLinesByAccountID reports how many journal lines reference the account.
func (r *PgxAccountRepository) CountLinesByAccountID(ctx context.Context, accountID string) (int64, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT COUNT(*) FROM partidas_lancamento WHERE conta_id = $1;`

	var count int64
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lines for account %s: %w", accountID, err)
	}
	return count, nil
}
