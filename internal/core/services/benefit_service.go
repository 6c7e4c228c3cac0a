package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/medforge/hospital_ledger/internal/apperrors"
	"github.com/medforge/hospital_ledger/internal/core/domain"
	portssvc "github.com/medforge/hospital_ledger/internal/core/ports/services"
	"github.com/medforge/hospital_ledger/internal/dto"
	"github.com/medforge/hospital_ledger/internal/platform/logging"
	"github.com/medforge/hospital_ledger/internal/utils/benefits"
)

type benefitService struct {
	now func() time.Time
}

// NewBenefitService creates the coordination-of-benefits service.
func NewBenefitService() portssvc.BenefitSvcFacade {
	return &benefitService{now: time.Now}
}

var _ portssvc.BenefitSvcFacade = (*benefitService)(nil)

// Split coordinates a billed amount across the patient's policies. Inactive
// and expired policies are excluded before the calculation; an empty result
// set means the whole amount is patient responsibility.
func (s *benefitService) Split(ctx context.Context, req dto.SplitRequest) (*domain.BenefitSplit, error) {
	logger := logging.FromContext(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}

	now := s.now()
	eligible := make([]domain.InsurancePolicy, 0, len(req.Policies))
	for _, input := range req.Policies {
		policy := dto.ToDomainPolicy(input)
		if !policy.IsActive {
			continue
		}
		if policy.ExpiryDate != nil && policy.ExpiryDate.Before(now) {
			continue
		}
		eligible = append(eligible, policy)
	}

	split, err := benefits.Split(req.TotalAmount, eligible, domain.ServiceCategory(req.Category))
	if err != nil {
		logger.Error("Benefit split failed", slog.String("error", err.Error()), slog.String("total", req.TotalAmount.String()))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	logger.Debug("Benefit split computed",
		slog.String("total", req.TotalAmount.String()),
		slog.Int("policies", len(eligible)),
		slog.String("patient_responsibility", split.PatientResponsibility.String()),
	)
	return &split, nil
}
