package services

import (
	"context"

	"github.com/medforge/hospital_ledger/internal/core/domain"
	"github.com/medforge/hospital_ledger/internal/dto"
)

// BenefitSvcFacade defines coordination-of-benefits operations.
type BenefitSvcFacade interface {
	// Split divides a billed amount across the supplied policies in priority
	// order and computes the patient's remainder. No insurance at all is a
	// valid outcome (full patient responsibility), not an error.
	Split(ctx context.Context, req dto.SplitRequest) (*domain.BenefitSplit, error)
}
