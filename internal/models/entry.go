package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors domain.EntryStatus at the storage layer.
type EntryStatus string

// Entry is the DB row model for the gl_entries table. Rows are insert-only
// except for the status column, which flips POSTED -> REVERSED once.
type Entry struct {
	EntryID         string          `db:"entry_id"`
	HospitalID      string          `db:"hospital_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	AccountID       string          `db:"account_id"`
	DebitAmount     decimal.Decimal `db:"debit_amount"`
	CreditAmount    decimal.Decimal `db:"credit_amount"`
	Description     string          `db:"description"`
	ReferenceType   string          `db:"reference_type"`
	ReferenceID     string          `db:"reference_id"`
	CostCenter      string          `db:"cost_center"`      // Nullable
	FiscalPeriodID  *string         `db:"fiscal_period_id"` // Nullable
	Status          EntryStatus     `db:"status"`
	ReversesID      *string         `db:"reverses_id"` // Nullable, unique when set
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
