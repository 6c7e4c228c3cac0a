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
	"github.com/medforge/hospital_ledger/internal/utils/accounting"
)

type journalService struct {
	entryRepo   portsrepo.EntryRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
}

// NewJournalService creates the journal posting and reversal service.
func NewJournalService(entryRepo portsrepo.EntryRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, periodRepo portsrepo.PeriodRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
		periodRepo:  periodRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) GetEntryByID(ctx context.Context, hospitalID string, entryID string) (*domain.Entry, error) {
	logger := logging.FromContext(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if entry.HospitalID != hospitalID {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

func (s *journalService) GetJournal(ctx context.Context, hospitalID string, refType domain.ReferenceType, refID string) ([]domain.Entry, error) {
	logger := logging.FromContext(ctx)

	entries, err := s.entryRepo.FindEntriesByReference(ctx, hospitalID, refType, refID)
	if err != nil {
		logger.Error("Failed to load journal", slog.String("error", err.Error()), slog.String("reference_id", refID))
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return entries, nil
}

// PostJournal validates and atomically writes a balanced set of entries. All
// validation runs before the first write; a rejected posting leaves zero rows.
func (s *journalService) PostJournal(ctx context.Context, hospitalID string, req dto.PostJournalRequest, creatorUserID string) ([]domain.Entry, error) {
	logger := logging.FromContext(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	refType := domain.ReferenceType(req.ReferenceType)
	if refType == domain.RefReversal {
		// Reversal journals are only produced by ReverseEntry.
		return nil, fmt.Errorf("%w: reference type %s is reserved for the reversal engine", apperrors.ErrValidation, domain.RefReversal)
	}

	for i, line := range req.Lines {
		if err := accounting.ValidateLine(line.DebitAmount, line.CreditAmount); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", apperrors.ErrValidation, i, err)
		}
	}

	periodID, err := s.resolveFiscalPeriod(ctx, hospitalID, req.FiscalPeriodID, req.TransactionDate)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccountsPostable(ctx, hospitalID, req.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	entries := make([]domain.Entry, 0, len(req.Lines))
	for _, line := range req.Lines {
		description := line.Description
		if description == "" {
			description = req.Description
		}
		entries = append(entries, domain.Entry{
			EntryID:         uuid.NewString(),
			HospitalID:      hospitalID,
			TransactionDate: req.TransactionDate,
			AccountID:       line.AccountID,
			DebitAmount:     line.DebitAmount,
			CreditAmount:    line.CreditAmount,
			Description:     description,
			ReferenceType:   refType,
			ReferenceID:     req.ReferenceID,
			CostCenter:      line.CostCenter,
			FiscalPeriodID:  periodID,
			Status:          domain.Posted,
			CreatedAt:       now,
			CreatedBy:       creatorUserID,
		})
	}

	debits, credits := accounting.SumSides(entries)
	if err := accounting.CheckBalanced(debits, credits); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		logger.Error("Failed to save journal entries", slog.String("error", err.Error()), slog.String("reference_id", req.ReferenceID))
		return nil, err
	}

	logger.Info("Journal posted",
		slog.String("hospital_id", hospitalID),
		slog.String("reference_type", string(refType)),
		slog.String("reference_id", req.ReferenceID),
		slog.Int("lines", len(entries)),
		slog.String("total", debits.String()),
	)
	return entries, nil
}

// resolveFiscalPeriod applies the posting period rules: an explicit period must
// exist, belong to the hospital, be open and contain the transaction date. With
// no explicit period, the open period containing the date is assigned when one
// exists; otherwise the posting proceeds unassigned.
func (s *journalService) resolveFiscalPeriod(ctx context.Context, hospitalID string, explicitID *string, txDate time.Time) (*string, error) {
	if explicitID != nil {
		period, err := s.periodRepo.FindPeriodByID(ctx, *explicitID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: fiscal period %s not found", apperrors.ErrValidation, *explicitID)
			}
			return nil, err
		}
		if period.HospitalID != hospitalID {
			return nil, fmt.Errorf("%w: fiscal period %s not found", apperrors.ErrValidation, *explicitID)
		}
		if period.IsClosed {
			return nil, fmt.Errorf("%w: fiscal period %s is closed", apperrors.ErrValidation, period.PeriodID)
		}
		if !period.Contains(txDate) {
			return nil, fmt.Errorf("%w: transaction date is outside fiscal period %s", apperrors.ErrValidation, period.PeriodID)
		}
		return &period.PeriodID, nil
	}

	period, err := s.periodRepo.FindOpenPeriodByDate(ctx, hospitalID, txDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period.PeriodID, nil
}

func (s *journalService) checkAccountsPostable(ctx context.Context, hospitalID string, lines []dto.JournalLineRequest) error {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, id := range ids {
		account, ok := accounts[id]
		if !ok || account.HospitalID != hospitalID {
			return fmt.Errorf("%w: account %s not found", apperrors.ErrNotFound, id)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}

// ReverseEntry reverses the whole journal the entry belongs to. The repository
// flips every original POSTED -> REVERSED with a conditional update in the same
// transaction that inserts the compensating entries, so of several concurrent
// attempts exactly one commits.
func (s *journalService) ReverseEntry(ctx context.Context, hospitalID string, entryID string, reason string, userID string) ([]domain.Entry, error) {
	logger := logging.FromContext(ctx)

	entry, err := s.GetEntryByID(ctx, hospitalID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.ReferenceType == domain.RefReversal {
		return nil, fmt.Errorf("%w: reversal entries cannot be reversed", apperrors.ErrValidation)
	}
	key := entry.Key()
	if entry.Status == domain.Reversed {
		return nil, fmt.Errorf("%w: journal %s/%s is already reversed", apperrors.ErrConflict, key.ReferenceType, key.ReferenceID)
	}

	originals, err := s.entryRepo.FindEntriesByReference(ctx, hospitalID, key.ReferenceType, key.ReferenceID)
	if err != nil {
		return nil, err
	}

	description := "REVERSAL: " + entry.ReferenceID
	if reason != "" {
		description += " (" + reason + ")"
	}

	now := time.Now()
	reversalRefID := uuid.NewString()
	originalIDs := make([]string, 0, len(originals))
	reversals := make([]domain.Entry, 0, len(originals))
	for i := range originals {
		original := originals[i]
		originalIDs = append(originalIDs, original.EntryID)
		reversals = append(reversals, domain.Entry{
			EntryID:         uuid.NewString(),
			HospitalID:      original.HospitalID,
			TransactionDate: original.TransactionDate,
			AccountID:       original.AccountID,
			DebitAmount:     original.CreditAmount,
			CreditAmount:    original.DebitAmount,
			Description:     description,
			ReferenceType:   domain.RefReversal,
			ReferenceID:     reversalRefID,
			CostCenter:      original.CostCenter,
			FiscalPeriodID:  original.FiscalPeriodID,
			Status:          domain.Posted,
			ReversesID:      &original.EntryID,
			CreatedAt:       now,
			CreatedBy:       userID,
		})
	}

	if err := s.entryRepo.SaveReversal(ctx, originalIDs, reversals); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to save reversal", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	logger.Info("Journal reversed",
		slog.String("hospital_id", hospitalID),
		slog.String("reference_type", string(entry.ReferenceType)),
		slog.String("reference_id", entry.ReferenceID),
		slog.String("reversal_reference_id", reversalRefID),
		slog.Int("lines", len(reversals)),
	)
	return reversals, nil
}
