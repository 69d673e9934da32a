package repositories

import (
	"context"
	"time"

	"github.com/sgcontabil/sgc_backend/internal/core/domain"
)

// EntryFilter narrows ListEntries results. Zero values mean "no filter".
type EntryFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	Status    domain.EntryStatus
	EntryType domain.EntryType
	AccountID string // Matches entries that have at least one line on the account
	Limit     int
	Offset    int
}

// EntryRepositoryFacade defines persistence operations for journal entries,
// their lines, and the lifecycle audit log.
type EntryRepositoryFacade interface {
	// SaveEntry persists the header and all lines in a single database
	// transaction; either everything lands or nothing does. Returns
	// apperrors.ErrDuplicate when entry_number collides (unique index).
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
	// FindEntryByID returns apperrors.ErrNotFound when absent. Lines are not
	// attached; use FindLinesByEntryID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// FindEntryByNumber returns apperrors.ErrNotFound when the number is unused.
	FindEntryByNumber(ctx context.Context, entryNumber string) (*domain.JournalEntry, error)
	// FindLinesByEntryID lists the entry's lines with account code/description joined.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
	// ListEntries returns one page plus the unpaginated total count.
	ListEntries(ctx context.Context, filter EntryFilter) ([]domain.JournalEntry, int64, error)
	// TransitionStatus atomically moves the entry from the expected status to
	// the target and appends the audit event, all in one transaction. The
	// update is conditional on the current status (WHERE status = expected) so
	// concurrent transitions have at most one winner. Returns ErrNotFound when
	// the entry does not exist and ErrConflict when the status already moved.
	TransitionStatus(ctx context.Context, entryID string, expected, target domain.EntryStatus, audit domain.EntryAuditEvent) (*domain.JournalEntry, error)
	// SaveReversal marks the original entry ESTORNADO (conditional on it still
	// being APROVADO), inserts the reversing entry with its flipped lines, and
	// appends the audit event, all in one transaction.
	SaveReversal(ctx context.Context, originalID string, reversing domain.JournalEntry, lines []domain.JournalLine, audit domain.EntryAuditEvent) error
	// ListAuditEvents returns the entry's lifecycle events, oldest first.
	ListAuditEvents(ctx context.Context, entryID string) ([]domain.EntryAuditEvent, error)
}
