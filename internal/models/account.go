package models

// AccountType mirrors domain.AccountType for the accounts table.
type AccountType string

// BalanceNature mirrors domain.BalanceNature.
type BalanceNature string

// Account is the persistence model for a chart-of-accounts row.
type Account struct {
	AccountID       string
	Code            string
	Description     string
	Type            AccountType
	Nature          BalanceNature
	Level           int
	ParentAccountID string // Empty string when the column is NULL
	AllowsPosting   bool
	IsActive        bool
	AuditFields
}
