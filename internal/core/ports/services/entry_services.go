package services

import (
	"context"

	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	"github.com/sgcontabil/sgc_backend/internal/dto"
)

// EntrySvcFacade owns journal entry validation and the lifecycle state machine.
type EntrySvcFacade interface {
	// CreateEntry validates the posting (structure, balance, accounts) and
	// persists it in PENDENTE status. The returned entry has no lines attached.
	CreateEntry(ctx context.Context, req dto.CreateLancamentoRequest, creatorUserID string) (*domain.JournalEntry, error)
	// GetEntryByID returns the entry with its lines populated.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, params dto.ListLancamentosParams) (*dto.ListLancamentosResponse, error)
	// Approve moves PENDENTE -> APROVADO.
	Approve(ctx context.Context, entryID string, actorUserID string) (*domain.JournalEntry, error)
	// Reject moves PENDENTE -> REJEITADO; reason is mandatory.
	Reject(ctx context.Context, entryID string, reason string, actorUserID string) (*domain.JournalEntry, error)
	// Reverse moves APROVADO -> ESTORNADO and returns the new mirrored entry,
	// created directly in APROVADO status.
	Reverse(ctx context.Context, entryID string, reason string, actorUserID string) (*domain.JournalEntry, error)
	ListAuditEvents(ctx context.Context, entryID string) ([]domain.EntryAuditEvent, error)
}
