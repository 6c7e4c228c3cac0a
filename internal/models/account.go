package models

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// Account is the DB row model for the accounts table.
type Account struct {
	AccountID       string      `db:"account_id"`
	HospitalID      string      `db:"hospital_id"`
	Code            string      `db:"code"`
	Name            string      `db:"name"`
	AccountType     AccountType `db:"account_type"`
	ParentAccountID string      `db:"parent_account_id"` // Nullable
	Description     string      `db:"description"`
	IsActive        bool        `db:"is_active"`
	AuditFields
}
