package services

import (
	"context"
	"time"

	"github.com/medforge/hospital_ledger/internal/core/domain"
	"github.com/medforge/hospital_ledger/internal/dto"
)

// ReportingSvcFacade defines the read-only reporting surface over the ledger.
type ReportingSvcFacade interface {
	// TrialBalanceAsOf computes per-account balances over all entries dated up
	// to and including the asOf day, plus grand totals. Any time of day on the
	// asOf day is included.
	TrialBalanceAsOf(ctx context.Context, hospitalID string, asOf time.Time) (*domain.TrialBalanceReport, error)

	// TrialBalanceForPeriod computes per-account balances over the entries of
	// one fiscal period.
	TrialBalanceForPeriod(ctx context.Context, hospitalID string, periodID string) (*domain.TrialBalanceReport, error)

	// ListEntries retrieves a filtered, paginated list of GL entries.
	ListEntries(ctx context.Context, hospitalID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}
