package pgsql

import (
	"context"
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

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for journal entry data.
func newPgxEntryRepository(pool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository{Pool: pool, queryTimeout: queryTimeout}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `lancamento_id, numero_lancamento, data_lancamento, data_competencia, tipo_lancamento, historico, valor, origem, origem_id, status, created_at, created_by, last_updated_at, last_updated_by`

const insertEntrySQL = `
	INSERT INTO lancamentos_contabeis (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

const insertLineSQL = `
	INSERT INTO partidas_lancamento (partida_id, lancamento_id, conta_id, centro_custo_id, tipo, valor, historico_complementar, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

const insertAuditSQL = `
	INSERT INTO entry_audit_events (audit_id, lancamento_id, action, reason, actor_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6);
`

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.PostingDate,
		&m.AccrualDate,
		&m.EntryType,
		&m.Narrative,
		&m.Amount,
		&m.Origin,
		&m.OriginID,
		&m.Status,
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

func insertEntryTx(ctx context.Context, tx pgx.Tx, entry models.JournalEntry) error {
	_, err := tx.Exec(ctx, insertEntrySQL,
		entry.EntryID,
		entry.EntryNumber,
		entry.PostingDate,
		entry.AccrualDate,
		entry.EntryType,
		entry.Narrative,
		entry.Amount,
		entry.Origin,
		entry.OriginID,
		entry.Status,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: lançamento número %s já existe", apperrors.ErrDuplicate, entry.EntryNumber)
		}
		return fmt.Errorf("failed to insert entry %s: %w", entry.EntryID, err)
	}
	return nil
}

func queueLines(batch *pgx.Batch, lines []domain.JournalLine) {
	for _, line := range lines {
		m := mapping.ToModelLine(line)
		batch.Queue(insertLineSQL,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.CostCenterID,
			m.Side,
			m.Amount,
			m.Memo,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
}

// SaveEntry persists the entry header and all its lines in one transaction.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertEntryTx(ctx, tx, mapping.ToModelEntry(entry)); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	queueLines(batch, lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert lines for entry %s: %w", entry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry header by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + entryColumns + ` FROM lancamentos_contabeis WHERE lancamento_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// FindEntryByNumber retrieves an entry header by its unique number.
func (r *PgxEntryRepository) FindEntryByNumber(ctx context.Context, entryNumber string) (*domain.JournalEntry, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + entryColumns + ` FROM lancamentos_contabeis WHERE numero_lancamento = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("entry number %s: %w", entryNumber, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find entry by number %s: %w", entryNumber, err)
	}
	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// FindLinesByEntryID lists the entry's lines with the account code and
// description joined in, ordered by line ID for a stable presentation.
func (r *PgxEntryRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.partida_id, p.lancamento_id, p.conta_id, p.centro_custo_id, p.tipo, p.valor, p.historico_complementar,
		       c.codigo, c.descricao,
		       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM partidas_lancamento p
		JOIN plano_contas c ON c.conta_id = p.conta_id
		WHERE p.lancamento_id = $1
		ORDER BY p.partida_id ASC;
	`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var lines []models.JournalLine
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.CostCenterID,
			&m.Side,
			&m.Amount,
			&m.Memo,
			&m.AccountCode,
			&m.AccountDescription,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line row: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows: %w", err)
	}
	return mapping.ToDomainLineSlice(lines), nil
}

func buildEntryFilter(filter portsrepo.EntryFilter) (string, []interface{}) {
	clause := " WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.DateFrom != nil {
		clause += fmt.Sprintf(" AND l.data_lancamento >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		clause += fmt.Sprintf(" AND l.data_lancamento <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}
	if filter.Status != "" {
		clause += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, string(filter.Status))
		argIdx++
	}
	if filter.EntryType != "" {
		clause += fmt.Sprintf(" AND l.tipo_lancamento = $%d", argIdx)
		args = append(args, string(filter.EntryType))
		argIdx++
	}
	if filter.AccountID != "" {
		clause += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM partidas_lancamento p WHERE p.lancamento_id = l.lancamento_id AND p.conta_id = $%d)", argIdx)
		args = append(args, filter.AccountID)
		argIdx++
	}
	return clause, args
}

// ListEntries returns one page of entries plus the unpaginated total count.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.JournalEntry, int64, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	clause, args := buildEntryFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM lancamentos_contabeis l` + clause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count entries: %w", err)
	}

	query := `SELECT ` + entryColumnsPrefixed + ` FROM lancamentos_contabeis l` + clause +
		fmt.Sprintf(" ORDER BY l.data_lancamento DESC, l.numero_lancamento DESC LIMIT $%d OFFSET $%d;", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return mapping.ToDomainEntrySlice(entries), total, nil
}

const entryColumnsPrefixed = `l.lancamento_id, l.numero_lancamento, l.data_lancamento, l.data_competencia, l.tipo_lancamento, l.historico, l.valor, l.origem, l.origem_id, l.status, l.created_at, l.created_by, l.last_updated_at, l.last_updated_by`

// TransitionStatus atomically moves an entry between statuses and records the
// audit event in the same transaction. The UPDATE is conditional on the
// current status so concurrent transitions have at most one winner; when zero
// rows change, a follow-up read decides between not-found and conflict.
func (r *PgxEntryRepository) TransitionStatus(ctx context.Context, entryID string, expected, target domain.EntryStatus, audit domain.EntryAuditEvent) (*domain.JournalEntry, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE lancamentos_contabeis
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE lancamento_id = $1 AND status = $2;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery, entryID, string(expected), string(target), audit.CreatedAt, audit.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to update status of entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		var currentStatus string
		err := tx.QueryRow(ctx, `SELECT status FROM lancamentos_contabeis WHERE lancamento_id = $1;`, entryID).Scan(&currentStatus)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to re-read entry %s: %w", entryID, err)
		}
		return nil, fmt.Errorf("%w: lançamento está %s, esperado %s", apperrors.ErrConflict, currentStatus, expected)
	}

	_, err = tx.Exec(ctx, insertAuditSQL, audit.AuditID, audit.EntryID, string(audit.Action), audit.Reason, audit.ActorID, audit.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert audit event for entry %s: %w", entryID, err)
	}

	m, err := scanEntry(tx.QueryRow(ctx, `SELECT `+entryColumns+` FROM lancamentos_contabeis WHERE lancamento_id = $1;`, entryID))
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %s after transition: %w", entryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// SaveReversal marks the original entry ESTORNADO (conditional on it still
// being APROVADO), inserts the reversing entry with its flipped lines, and
// appends the audit event, all in one transaction.
func (r *PgxEntryRepository) SaveReversal(ctx context.Context, originalID string, reversing domain.JournalEntry, lines []domain.JournalLine, audit domain.EntryAuditEvent) error {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE lancamentos_contabeis
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE lancamento_id = $1 AND status = $5;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery, originalID, string(domain.StatusReversed), audit.CreatedAt, audit.ActorID, string(domain.StatusApproved))
	if err != nil {
		return fmt.Errorf("failed to mark entry %s reversed: %w", originalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		var currentStatus string
		err := tx.QueryRow(ctx, `SELECT status FROM lancamentos_contabeis WHERE lancamento_id = $1;`, originalID).Scan(&currentStatus)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("entry %s: %w", originalID, apperrors.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to re-read entry %s: %w", originalID, err)
		}
		return fmt.Errorf("%w: lançamento está %s, apenas lançamentos APROVADOS podem ser estornados", apperrors.ErrConflict, currentStatus)
	}

	if err := insertEntryTx(ctx, tx, mapping.ToModelEntry(reversing)); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	queueLines(batch, lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert reversal lines for entry %s: %w", reversing.EntryID, err)
	}

	_, err = tx.Exec(ctx, insertAuditSQL, audit.AuditID, audit.EntryID, string(audit.Action), audit.Reason, audit.ActorID, audit.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit event for entry %s: %w", originalID, err)
	}

	return r.Commit(ctx, tx)
}

// ListAuditEvents returns the entry's lifecycle events, oldest first.
func (r *PgxEntryRepository) ListAuditEvents(ctx context.Context, entryID string) ([]domain.EntryAuditEvent, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT audit_id, lancamento_id, action, reason, actor_id, created_at
		FROM entry_audit_events
		WHERE lancamento_id = $1
		ORDER BY created_at ASC, audit_id ASC;
	`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var events []domain.EntryAuditEvent
	for rows.Next() {
		var m models.EntryAuditEvent
		if err := rows.Scan(&m.AuditID, &m.EntryID, &m.Action, &m.Reason, &m.ActorID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit event row: %w", err)
		}
		events = append(events, mapping.ToDomainAuditEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit event rows: %w", err)
	}
	return events, nil
}
