package domain

// AccountType defines the fundamental accounting type of a GL account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Valid reports whether the account type is one of the closed set of types.
// Values are checked once at the DTO boundary so repositories and services can
// assume they only ever see valid types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a GL account within a hospital's chart of accounts.
// Accounts form a tree via ParentAccountID; postings land on leaf accounts.
type Account struct {
	AccountID       string      `json:"accountID"`  // Primary key (UUID)
	HospitalID      string      `json:"hospitalID"` // Tenant scope (NON-NULL)
	Code            string      `json:"code"`       // Account code, unique per hospital
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`     // ASSET, LIABILITY, etc. Never updated after creation.
	ParentAccountID string      `json:"parentAccountID"` // Nullable self-reference
	Description     string      `json:"description"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}
