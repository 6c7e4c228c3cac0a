package repositories

import (
	"context"
	"time"

	"github.com/medforge/hospital_ledger/internal/core/domain"
)

// PeriodReader defines read operations for fiscal period data.
type PeriodReader interface {
	// FindPeriodByID retrieves a specific fiscal period by its identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error)

	// FindOpenPeriodByDate returns the open period whose closed interval
	// [start_date, end_date] contains the date, for the given hospital.
	FindOpenPeriodByDate(ctx context.Context, hospitalID string, date time.Time) (*domain.FiscalPeriod, error)

	// FindOverlappingPeriods returns all periods of the hospital whose closed
	// interval intersects [start, end].
	FindOverlappingPeriods(ctx context.Context, hospitalID string, start, end time.Time) ([]domain.FiscalPeriod, error)

	// ListPeriods retrieves all fiscal periods for a hospital ordered by start date.
	ListPeriods(ctx context.Context, hospitalID string) ([]domain.FiscalPeriod, error)
}

// PeriodWriter defines write operations for fiscal period data.
type PeriodWriter interface {
	// SavePeriod persists a new fiscal period.
	SavePeriod(ctx context.Context, period domain.FiscalPeriod) error

	// ClosePeriod marks an open period closed. Closing is conditional on the
	// period still being open; an already-closed period yields a conflict.
	ClosePeriod(ctx context.Context, periodID string, userID string, now time.Time) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
