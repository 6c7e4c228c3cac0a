package services

import (
	"context"

	"github.com/medforge/hospital_ledger/internal/core/domain"
	"github.com/medforge/hospital_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for chart-of-accounts data.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account within a hospital.
	GetAccountByID(ctx context.Context, hospitalID string, accountID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts, keyed by account ID.
	GetAccountsByIDs(ctx context.Context, hospitalID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of a hospital's accounts.
	ListAccounts(ctx context.Context, hospitalID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for chart-of-accounts data.
type AccountWriterSvc interface {
	// CreateAccount creates a new GL account. The account code must be unique
	// within the hospital.
	CreateAccount(ctx context.Context, hospitalID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount updates an account's name, description, active flag or
	// parent. The account type is immutable.
	UpdateAccount(ctx context.Context, hospitalID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account inactive so it rejects new postings.
	DeactivateAccount(ctx context.Context, hospitalID string, accountID string, userID string) error

	// SeedDefaultChart bulk-creates the hospital starter chart of accounts.
	// It fails with a conflict error if the hospital already has any account.
	SeedDefaultChart(ctx context.Context, hospitalID string, creatorUserID string) ([]domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
