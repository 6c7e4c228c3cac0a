package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medforge/hospital_ledger/internal/apperrors"
	"github.com/medforge/hospital_ledger/internal/core/domain"
	portsrepo "github.com/medforge/hospital_ledger/internal/core/ports/repositories"
	portssvc "github.com/medforge/hospital_ledger/internal/core/ports/services"
	"github.com/medforge/hospital_ledger/internal/dto"
	"github.com/medforge/hospital_ledger/internal/platform/logging"
)

// defaultChart is the hospital starter chart. Codes follow the usual
// 1xxx assets / 2xxx liabilities / 3xxx equity / 4xxx revenue / 5xxx expenses
// numbering.
var defaultChart = []struct {
	Code string
	Name string
	Type domain.AccountType
}{
	{"1000", "Cash and Cash Equivalents", domain.Asset},
	{"1100", "Patient Accounts Receivable", domain.Asset},
	{"1110", "Insurance Claims Receivable", domain.Asset},
	{"1200", "Pharmacy Inventory", domain.Asset},
	{"1210", "Medical Supplies Inventory", domain.Asset},
	{"2000", "Accounts Payable", domain.Liability},
	{"2100", "Accrued Payroll", domain.Liability},
	{"2200", "Deferred Patient Revenue", domain.Liability},
	{"2300", "Refunds Payable", domain.Liability},
	{"3000", "Retained Earnings", domain.Equity},
	{"4000", "Patient Service Revenue", domain.Revenue},
	{"4100", "Insurance Reimbursement Revenue", domain.Revenue},
	{"4200", "Pharmacy Sales Revenue", domain.Revenue},
	{"4900", "Contractual Adjustments", domain.Revenue},
	{"5000", "Salaries and Wages Expense", domain.Expense},
	{"5100", "Medical Supplies Expense", domain.Expense},
	{"5200", "Pharmacy Cost of Goods Sold", domain.Expense},
	{"5300", "Bad Debt Expense", domain.Expense},
	{"5900", "General and Administrative Expense", domain.Expense},
}

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the chart-of-accounts service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, hospitalID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := logging.FromContext(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	if req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, req.ParentAccountID)
			}
			return nil, err
		}
		if parent.HospitalID != hospitalID {
			return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, req.ParentAccountID)
		}
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		HospitalID:      hospitalID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     domain.AccountType(req.AccountType),
		ParentAccountID: req.ParentAccountID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		}
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, hospitalID string, accountID string) (*domain.Account, error) {
	logger := logging.FromContext(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	if account.HospitalID != hospitalID {
		// Accounts of other hospitals are indistinguishable from missing ones.
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, hospitalID string, accountIDs []string) (map[string]domain.Account, error) {
	logger := logging.FromContext(ctx)

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to find accounts by IDs", slog.String("error", err.Error()))
		return nil, err
	}

	for id, account := range accounts {
		if account.HospitalID != hospitalID {
			delete(accounts, id)
		}
	}
	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context, hospitalID string, limit int, offset int) ([]domain.Account, error) {
	logger := logging.FromContext(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx, hospitalID, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()), slog.String("hospital_id", hospitalID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, hospitalID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	logger := logging.FromContext(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	account, err := s.GetAccountByID(ctx, hospitalID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if req.ParentAccountID != nil {
		if *req.ParentAccountID == accountID {
			return nil, fmt.Errorf("%w: account cannot be its own parent", apperrors.ErrValidation)
		}
		if *req.ParentAccountID != "" {
			if _, err := s.GetAccountByID(ctx, hospitalID, *req.ParentAccountID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, *req.ParentAccountID)
				}
				return nil, err
			}
		}
		account.ParentAccountID = *req.ParentAccountID
	}

	now := time.Now()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, hospitalID string, accountID string, userID string) error {
	logger := logging.FromContext(ctx)

	if _, err := s.GetAccountByID(ctx, hospitalID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}

// SeedDefaultChart bulk-creates the starter chart of accounts for a hospital
// that has none yet.
func (s *accountService) SeedDefaultChart(ctx context.Context, hospitalID string, creatorUserID string) ([]domain.Account, error) {
	logger := logging.FromContext(ctx)

	count, err := s.accountRepo.CountAccounts(ctx, hospitalID)
	if err != nil {
		logger.Error("Failed to count accounts before seeding", slog.String("error", err.Error()), slog.String("hospital_id", hospitalID))
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: hospital %s already has a chart of accounts", apperrors.ErrConflict, hospitalID)
	}

	now := time.Now()
	accounts := make([]domain.Account, 0, len(defaultChart))
	for _, def := range defaultChart {
		accounts = append(accounts, domain.Account{
			AccountID:   uuid.NewString(),
			HospitalID:  hospitalID,
			Code:        def.Code,
			Name:        def.Name,
			AccountType: def.Type,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		})
	}

	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		logger.Error("Failed to seed default chart", slog.String("error", err.Error()), slog.String("hospital_id", hospitalID))
		return nil, err
	}

	logger.Info("Default chart of accounts seeded", slog.String("hospital_id", hospitalID), slog.Int("count", len(accounts)))
	return accounts, nil
}
