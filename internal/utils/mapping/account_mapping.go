package mapping

import (
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	"github.com/sgcontabil/sgc_backend/internal/models"
)

// ToModelAccount converts a domain.Account for DB storage.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		Code:            d.Code,
		Description:     d.Description,
		Type:            models.AccountType(d.Type),
		Nature:          models.BalanceNature(d.Nature),
		Level:           d.Level,
		ParentAccountID: d.ParentAccountID,
		AllowsPosting:   d.AllowsPosting,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a stored models.Account back to the domain type.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Code:            m.Code,
		Description:     m.Description,
		Type:            domain.AccountType(m.Type),
		Nature:          domain.BalanceNature(m.Nature),
		Level:           m.Level,
		ParentAccountID: m.ParentAccountID,
		AllowsPosting:   m.AllowsPosting,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of models.Account.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	out := make([]domain.Account, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccount(m)
	}
	return out
}
