package dto

import (
	"time"

	"github.com/medforge/hospital_ledger/internal/core/domain"
)

// CreateAccountRequest defines the input for creating a GL account.
type CreateAccountRequest struct {
	Code            string `json:"code" validate:"required,max=32"`
	Name            string `json:"name" validate:"required,max=255"`
	AccountType     string `json:"accountType" validate:"required,accounttype"`
	ParentAccountID string `json:"parentAccountID" validate:"omitempty,uuid"`
	Description     string `json:"description"`
}

// UpdateAccountRequest defines the mutable fields of a GL account. The account
// type is deliberately absent: changing it would rewrite the meaning of every
// historical posting against the account.
type UpdateAccountRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=255"`
	Description     *string `json:"description"`
	IsActive        *bool   `json:"isActive"`
	ParentAccountID *string `json:"parentAccountID" validate:"omitempty,uuid"`
}

// AccountResponse defines the data returned for a GL account.
type AccountResponse struct {
	AccountID       string    `json:"accountID"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	AccountType     string    `json:"accountType"`
	ParentAccountID string    `json:"parentAccountID,omitempty"`
	Description     string    `json:"description,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		AccountType:     string(a.AccountType),
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}
