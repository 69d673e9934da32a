package domain

// AccountType is the fundamental classification of a chart-of-accounts node.
// Values are kept in Portuguese because they travel on the wire unchanged.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ATIVO"
	AccountTypeLiability AccountType = "PASSIVO"
	AccountTypeRevenue   AccountType = "RECEITA"
	AccountTypeExpense   AccountType = "DESPESA"
	AccountTypeResult    AccountType = "RESULTADO"
)

// BalanceNature is the side (debit/credit) that increases an account.
type BalanceNature string

const (
	NatureDebit  BalanceNature = "DEVEDORA"
	NatureCredit BalanceNature = "CREDORA"
)

// Account is a node in the chart of accounts (plano de contas).
// Accounts form a tree via ParentAccountID; only accounts with
// AllowsPosting may appear on journal lines.
type Account struct {
	AccountID       string        `json:"accountID"` // Primary key (UUID)
	Code            string        `json:"code"`      // Globally unique account code, e.g. "1.1.01"
	Description     string        `json:"description"`
	Type            AccountType   `json:"type"`
	Nature          BalanceNature `json:"nature"`
	Level           int           `json:"level"`           // Depth in the chart, >= 1
	ParentAccountID string        `json:"parentAccountID"` // Empty when root
	AllowsPosting   bool          `json:"allowsPosting"`   // Only designated accounts receive lines
	IsActive        bool          `json:"isActive"`        // Soft-deactivation flag; never hard-deleted
	AuditFields
}

// ValidTypes lists the accepted account types, handy for validation messages.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeRevenue, AccountTypeExpense, AccountTypeResult:
		return true
	}
	return false
}

// ValidBalanceNature reports whether n is one of the two accepted natures.
func ValidBalanceNature(n BalanceNature) bool {
	return n == NatureDebit || n == NatureCredit
}
