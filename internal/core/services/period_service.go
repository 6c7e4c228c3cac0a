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

type periodService struct {
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates the fiscal period service.
func NewPeriodService(repo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: repo}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func (s *periodService) CreatePeriod(ctx context.Context, hospitalID string, req dto.CreatePeriodRequest, creatorUserID string) (*domain.FiscalPeriod, error) {
	logger := logging.FromContext(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, fmt.Errorf("%w: period start date must be before end date", apperrors.ErrValidation)
	}

	overlapping, err := s.periodRepo.FindOverlappingPeriods(ctx, hospitalID, req.StartDate, req.EndDate)
	if err != nil {
		logger.Error("Failed to check for overlapping fiscal periods", slog.String("error", err.Error()), slog.String("hospital_id", hospitalID))
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, fmt.Errorf("%w: period overlaps existing period %q", apperrors.ErrConflict, overlapping[0].Name)
	}

	now := time.Now()
	period := domain.FiscalPeriod{
		PeriodID:   uuid.NewString(),
		HospitalID: hospitalID,
		Name:       req.Name,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		IsClosed:   false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to save fiscal period", slog.String("error", err.Error()), slog.String("period_id", period.PeriodID))
		}
		return nil, err
	}

	logger.Info("Fiscal period created", slog.String("period_id", period.PeriodID), slog.String("name", period.Name))
	return &period, nil
}

// ClosePeriod irreversibly closes an open period. There is no reopen.
func (s *periodService) ClosePeriod(ctx context.Context, hospitalID string, periodID string, userID string) (*domain.FiscalPeriod, error) {
	logger := logging.FromContext(ctx)

	period, err := s.GetPeriodByID(ctx, hospitalID, periodID)
	if err != nil {
		return nil, err
	}
	if period.IsClosed {
		return nil, fmt.Errorf("%w: fiscal period %s is already closed", apperrors.ErrConflict, periodID)
	}

	now := time.Now()
	if err := s.periodRepo.ClosePeriod(ctx, periodID, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to close fiscal period", slog.String("error", err.Error()), slog.String("period_id", periodID))
		}
		return nil, err
	}

	period.IsClosed = true
	period.ClosedBy = &userID
	period.ClosedAt = &now
	period.LastUpdatedAt = now
	period.LastUpdatedBy = userID

	logger.Info("Fiscal period closed", slog.String("period_id", periodID), slog.String("closed_by", userID))
	return period, nil
}

func (s *periodService) GetPeriodByID(ctx context.Context, hospitalID string, periodID string) (*domain.FiscalPeriod, error) {
	logger := logging.FromContext(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find fiscal period", slog.String("error", err.Error()), slog.String("period_id", periodID))
		}
		return nil, err
	}
	if period.HospitalID != hospitalID {
		return nil, apperrors.ErrNotFound
	}
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context, hospitalID string) ([]domain.FiscalPeriod, error) {
	logger := logging.FromContext(ctx)

	periods, err := s.periodRepo.ListPeriods(ctx, hospitalID)
	if err != nil {
		logger.Error("Failed to list fiscal periods", slog.String("error", err.Error()), slog.String("hospital_id", hospitalID))
		return nil, err
	}
	if periods == nil {
		periods = []domain.FiscalPeriod{}
	}
	return periods, nil
}
