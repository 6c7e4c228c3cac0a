package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account's aggregate position in a trial
// balance. Balance is debit-normal (total debits minus total credits); callers
// interpret the sign per AccountType.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceReport is a point-in-time trial balance with grand totals.
// GrandTotalDebit always equals GrandTotalCredit because every stored journal
// is individually balanced.
type TrialBalanceReport struct {
	Rows             []TrialBalanceRow `json:"rows"`
	GrandTotalDebit  decimal.Decimal   `json:"grandTotalDebit"`
	GrandTotalCredit decimal.Decimal   `json:"grandTotalCredit"`
}
