package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a GL entry.
// Financial fields of an entry are immutable; status is the only field that
// changes, and it transitions POSTED -> REVERSED exactly once.
type EntryStatus string

const (
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// ReferenceType identifies the business document a journal originates from.
type ReferenceType string

const (
	RefInvoice    ReferenceType = "INVOICE"
	RefPayment    ReferenceType = "PAYMENT"
	RefClaim      ReferenceType = "CLAIM"
	RefAdjustment ReferenceType = "ADJUSTMENT"
	RefReversal   ReferenceType = "REVERSAL"
	RefManual     ReferenceType = "MANUAL"
)

// Valid reports whether the reference type is one of the closed set.
func (r ReferenceType) Valid() bool {
	switch r {
	case RefInvoice, RefPayment, RefClaim, RefAdjustment, RefReversal, RefManual:
		return true
	}
	return false
}

// Entry is a single immutable ledger line. Exactly one of DebitAmount and
// CreditAmount is strictly positive; the other is zero.
type Entry struct {
	EntryID         string          `json:"entryID"`    // Primary key (UUID)
	HospitalID      string          `json:"hospitalID"` // Tenant scope (NON-NULL)
	TransactionDate time.Time       `json:"transactionDate"`
	AccountID       string          `json:"accountID"` // FK -> accounts.account_id
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	Description     string          `json:"description"`
	ReferenceType   ReferenceType   `json:"referenceType"`
	ReferenceID     string          `json:"referenceID"`
	CostCenter      string          `json:"costCenter"`     // Nullable
	FiscalPeriodID  *string         `json:"fiscalPeriodID"` // Nullable FK -> fiscal_periods
	Status          EntryStatus     `json:"status"`
	ReversesID      *string         `json:"reversesID"` // Set on reversal lines; points at the reversed entry
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// IsDebit reports whether the entry carries its amount on the debit side.
func (e Entry) IsDebit() bool {
	return e.DebitAmount.IsPositive()
}

// Amount returns the entry's single positive amount regardless of side.
func (e Entry) Amount() decimal.Decimal {
	if e.IsDebit() {
		return e.DebitAmount
	}
	return e.CreditAmount
}

// JournalKey identifies the logical journal an entry belongs to. A journal is
// not a stored entity; it is the set of entries sharing one key, and the set
// always sums to zero (total debits == total credits).
type JournalKey struct {
	ReferenceType ReferenceType
	ReferenceID   string
}

// Key returns the logical journal key of the entry.
func (e Entry) Key() JournalKey {
	return JournalKey{ReferenceType: e.ReferenceType, ReferenceID: e.ReferenceID}
}
