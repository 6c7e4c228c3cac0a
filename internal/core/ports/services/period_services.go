package services

import (
	"context"

	"github.com/medforge/hospital_ledger/internal/core/domain"
	"github.com/medforge/hospital_ledger/internal/dto"
)

// PeriodSvcFacade defines operations on fiscal periods.
type PeriodSvcFacade interface {
	// CreatePeriod creates a new fiscal period. The range must be valid and
	// must not overlap any existing period of the hospital.
	CreatePeriod(ctx context.Context, hospitalID string, req dto.CreatePeriodRequest, creatorUserID string) (*domain.FiscalPeriod, error)

	// ClosePeriod irreversibly closes an open period. Closed periods reject
	// all new journal postings.
	ClosePeriod(ctx context.Context, hospitalID string, periodID string, userID string) (*domain.FiscalPeriod, error)

	// GetPeriodByID retrieves a specific fiscal period within a hospital.
	GetPeriodByID(ctx context.Context, hospitalID string, periodID string) (*domain.FiscalPeriod, error)

	// ListPeriods retrieves all fiscal periods of a hospital.
	ListPeriods(ctx context.Context, hospitalID string) ([]domain.FiscalPeriod, error)
}
