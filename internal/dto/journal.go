package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/medforge/hospital_ledger/internal/core/domain"
)

// JournalLineRequest is one ledger line of a journal posting. Exactly one of
// DebitAmount and CreditAmount must be strictly positive; that rule involves
// two fields and is enforced in the journal service, not by struct tags.
type JournalLineRequest struct {
	AccountID    string          `json:"accountID" validate:"required,uuid"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
	CostCenter   string          `json:"costCenter"`
}

// PostJournalRequest defines the input for posting a balanced journal.
type PostJournalRequest struct {
	TransactionDate time.Time            `json:"transactionDate" validate:"required"`
	Description     string               `json:"description" validate:"required"`
	ReferenceType   string               `json:"referenceType" validate:"required,referencetype"`
	ReferenceID     string               `json:"referenceID" validate:"required"`
	FiscalPeriodID  *string              `json:"fiscalPeriodID" validate:"omitempty,uuid"`
	Lines           []JournalLineRequest `json:"lines" validate:"required,min=2,dive"`
}

// EntryResponse defines the data returned for a single GL entry.
type EntryResponse struct {
	EntryID         string          `json:"entryID"`
	TransactionDate time.Time       `json:"transactionDate"`
	AccountID       string          `json:"accountID"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	Description     string          `json:"description"`
	ReferenceType   string          `json:"referenceType"`
	ReferenceID     string          `json:"referenceID"`
	CostCenter      string          `json:"costCenter,omitempty"`
	FiscalPeriodID  *string         `json:"fiscalPeriodID,omitempty"`
	Status          string          `json:"status"`
	ReversesID      *string         `json:"reversesID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ListEntriesParams holds filters and pagination for the reporting surface.
type ListEntriesParams struct {
	FromDate       *time.Time
	ToDate         *time.Time
	AccountID      *string
	ReferenceType  *string
	CostCenter     *string
	FiscalPeriodID *string
	Limit          int
	NextToken      *string
}

// ListEntriesResponse is a page of entries plus a cursor for the next page.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain Entry to its response DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		TransactionDate: e.TransactionDate,
		AccountID:       e.AccountID,
		DebitAmount:     e.DebitAmount,
		CreditAmount:    e.CreditAmount,
		Description:     e.Description,
		ReferenceType:   string(e.ReferenceType),
		ReferenceID:     e.ReferenceID,
		CostCenter:      e.CostCenter,
		FiscalPeriodID:  e.FiscalPeriodID,
		Status:          string(e.Status),
		ReversesID:      e.ReversesID,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

// ToEntryResponses converts a slice of domain Entries to response DTOs.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
