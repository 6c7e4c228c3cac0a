package repositories

import (
	"context"
	"time"

	"github.com/medforge/hospital_ledger/internal/core/domain"
)

// EntryFilter narrows entry listing queries. Nil fields are not applied.
// Date bounds are day-granular and inclusive on both ends.
type EntryFilter struct {
	FromDate       *time.Time
	ToDate         *time.Time
	AccountID      *string
	ReferenceType  *domain.ReferenceType
	CostCenter     *string
	FiscalPeriodID *string
}

// EntryReader defines read operations for GL entry data.
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// FindEntriesByReference retrieves every entry of one logical journal,
	// i.e. all entries sharing (referenceType, referenceID) within a hospital.
	FindEntriesByReference(ctx context.Context, hospitalID string, refType domain.ReferenceType, refID string) ([]domain.Entry, error)

	// ListEntries retrieves a filtered, token-paginated list of entries.
	ListEntries(ctx context.Context, hospitalID string, filter EntryFilter, limit int, nextToken *string) ([]domain.Entry, *string, error)
}

// EntryWriter defines write operations for GL entry data.
type EntryWriter interface {
	// SaveEntries persists all lines of one journal in a single transaction:
	// either every row is committed or none are.
	SaveEntries(ctx context.Context, entries []domain.Entry) error

	// SaveReversal atomically flips the original entries POSTED -> REVERSED
	// and inserts the compensating entries. The status flip is a conditional
	// update: if any original is no longer POSTED the whole transaction rolls
	// back with a conflict error, which makes concurrent reversal attempts
	// race-free.
	SaveReversal(ctx context.Context, originalIDs []string, reversals []domain.Entry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
