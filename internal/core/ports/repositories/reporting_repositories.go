package repositories

import (
	"context"
	"time"

	"github.com/medforge/hospital_ledger/internal/core/domain"
)

// ReportingRepository defines aggregate queries over the ledger.
type ReportingRepository interface {
	// GetTrialBalanceAsOf aggregates per-account debit/credit totals over all
	// entries with transaction_date up to and including the asOf day. The
	// cutoff is day-granular, like fiscal period bounds.
	GetTrialBalanceAsOf(ctx context.Context, hospitalID string, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetTrialBalanceForPeriod aggregates per-account debit/credit totals over
	// all entries assigned to the given fiscal period.
	GetTrialBalanceForPeriod(ctx context.Context, hospitalID string, periodID string) ([]domain.TrialBalanceRow, error)
}
