package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors domain.EntryStatus for the journal_entries table.
type EntryStatus string

// EntryType mirrors domain.EntryType.
type EntryType string

// LineSide mirrors domain.LineSide.
type LineSide string

// JournalEntry is the persistence model for a journal entry header.
type JournalEntry struct {
	EntryID     string
	EntryNumber string
	PostingDate time.Time
	AccrualDate time.Time
	EntryType   EntryType
	Narrative   string
	Amount      decimal.Decimal
	Origin      string
	OriginID    *string
	Status      EntryStatus
	AuditFields
}

// JournalLine is the persistence model for a journal line row.
type JournalLine struct {
	LineID       string
	EntryID      string
	AccountID    string
	CostCenterID *string
	Side         LineSide
	Amount       decimal.Decimal
	Memo         string
	// Joined from accounts on detail reads.
	AccountCode        string
	AccountDescription string
	AuditFields
}

// EntryAuditEvent is the persistence model for an audit log row.
type EntryAuditEvent struct {
	AuditID   string
	EntryID   string
	Action    string
	Reason    string
	ActorID   string
	CreatedAt time.Time
}
