package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusPending  EntryStatus = "PENDENTE"
	StatusApproved EntryStatus = "APROVADO"
	StatusRejected EntryStatus = "REJEITADO"
	StatusReversed EntryStatus = "ESTORNADO"
)

// EntryType classifies a journal entry.
type EntryType string

const (
	EntryTypeNormal           EntryType = "NORMAL"
	EntryTypeOpening          EntryType = "ABERTURA"
	EntryTypeClosing          EntryType = "ENCERRAMENTO"
	EntryTypeAdjustment       EntryType = "AJUSTE"
	EntryTypeReclassification EntryType = "RECLASSIFICACAO"
)

// ValidEntryType reports whether t is one of the accepted entry types.
func ValidEntryType(t EntryType) bool {
	switch t {
	case EntryTypeNormal, EntryTypeOpening, EntryTypeClosing, EntryTypeAdjustment, EntryTypeReclassification:
		return true
	}
	return false
}

// OriginReversal is the Origin value stamped on entries synthesized by a reversal.
const OriginReversal = "ESTORNO"

// JournalEntry is a balanced double-entry posting header (lançamento).
// Entries are created PENDENTE and move exactly once along one path:
// approve, or reject, or (after approval) reverse. A reversal never mutates
// the original's lines; it spawns a mirrored sibling entry.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`     // Primary key (UUID)
	EntryNumber string          `json:"entryNumber"` // Caller-supplied, globally unique, immutable
	PostingDate time.Time       `json:"postingDate"` // data_lancamento
	AccrualDate time.Time       `json:"accrualDate"` // data_competencia
	EntryType   EntryType       `json:"entryType"`
	Narrative   string          `json:"narrative"` // historico
	Amount      decimal.Decimal `json:"amount"`    // Aggregate value, two fractional digits
	Origin      string          `json:"origin"`    // Optional traceability (e.g. ESTORNO)
	OriginID    *string         `json:"originID"`  // ID of the generating record, if any
	Status      EntryStatus     `json:"status"`
	Lines       []JournalLine   `json:"lines,omitempty"` // Populated only on detail fetches
	AuditFields
}

// LineSide indicates whether a journal line debits or credits its account.
type LineSide string

const (
	SideDebit  LineSide = "DEBITO"
	SideCredit LineSide = "CREDITO"
)

// Flip returns the opposite side.
func (s LineSide) Flip() LineSide {
	if s == SideDebit {
		return SideCredit
	}
	return SideDebit
}

// ValidLineSide reports whether s is DEBITO or CREDITO.
func ValidLineSide(s LineSide) bool {
	return s == SideDebit || s == SideCredit
}

// JournalLine is one debit-or-credit row within a journal entry (partida).
// Lines are created atomically with their entry and never updated
// individually; corrections happen via a reversing entry.
type JournalLine struct {
	LineID       string          `json:"lineID"`  // Primary key (UUID)
	EntryID      string          `json:"entryID"` // Owning entry, immutable
	AccountID    string          `json:"accountID"`
	CostCenterID *string         `json:"costCenterID"` // Optional
	Side         LineSide        `json:"side"`
	Amount       decimal.Decimal `json:"amount"` // Always > 0
	Memo         string          `json:"memo"`   // historico_complementar
	// Denormalized account info, populated on detail reads.
	AccountCode        string `json:"accountCode,omitempty"`
	AccountDescription string `json:"accountDescription,omitempty"`
	AuditFields
}

// AuditAction identifies a lifecycle transition recorded in the audit log.
type AuditAction string

const (
	AuditActionApprove AuditAction = "APROVACAO"
	AuditActionReject  AuditAction = "REJEICAO"
	AuditActionReverse AuditAction = "ESTORNO"
)

// EntryAuditEvent is an append-only record of a status transition.
// It replaces the original system's habit of concatenating the reason onto
// the entry narrative, so reasons stay queryable and narratives immutable.
type EntryAuditEvent struct {
	AuditID   string      `json:"auditID"`
	EntryID   string      `json:"entryID"`
	Action    AuditAction `json:"action"`
	Reason    string      `json:"reason"` // Empty for approvals
	ActorID   string      `json:"actorID"`
	CreatedAt time.Time   `json:"createdAt"`
}
