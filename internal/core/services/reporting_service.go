package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medforge/hospital_ledger/internal/apperrors"
	"github.com/medforge/hospital_ledger/internal/core/domain"
	portsrepo "github.com/medforge/hospital_ledger/internal/core/ports/repositories"
	portssvc "github.com/medforge/hospital_ledger/internal/core/ports/services"
	"github.com/medforge/hospital_ledger/internal/dto"
	"github.com/medforge/hospital_ledger/internal/platform/logging"
	"github.com/medforge/hospital_ledger/internal/utils/accounting"
)

const defaultListLimit = 50

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	entryRepo     portsrepo.EntryRepositoryFacade
	periodRepo    portsrepo.PeriodRepositoryFacade
}

// NewReportingService creates the read-only reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, entryRepo portsrepo.EntryRepositoryFacade, periodRepo portsrepo.PeriodRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		entryRepo:     entryRepo,
		periodRepo:    periodRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) TrialBalanceAsOf(ctx context.Context, hospitalID string, asOf time.Time) (*domain.TrialBalanceReport, error) {
	logger := logging.FromContext(ctx)

	rows, err := s.reportingRepo.GetTrialBalanceAsOf(ctx, hospitalID, asOf)
	if err != nil {
		logger.Error("Failed to query trial balance", slog.String("error", err.Error()), slog.String("hospital_id", hospitalID))
		return nil, err
	}
	return buildTrialBalanceReport(rows), nil
}

func (s *reportingService) TrialBalanceForPeriod(ctx context.Context, hospitalID string, periodID string) (*domain.TrialBalanceReport, error) {
	logger := logging.FromContext(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find fiscal period for trial balance", slog.String("error", err.Error()), slog.String("period_id", periodID))
		}
		return nil, err
	}
	if period.HospitalID != hospitalID {
		return nil, apperrors.ErrNotFound
	}

	rows, err := s.reportingRepo.GetTrialBalanceForPeriod(ctx, hospitalID, periodID)
	if err != nil {
		logger.Error("Failed to query trial balance for period", slog.String("error", err.Error()), slog.String("period_id", periodID))
		return nil, err
	}
	return buildTrialBalanceReport(rows), nil
}

// buildTrialBalanceReport fills per-row debit-normal balances and grand totals.
// Rows come back ordered by account code; the sort keeps that guarantee even
// if a repository implementation forgets it.
func buildTrialBalanceReport(rows []domain.TrialBalanceRow) *domain.TrialBalanceReport {
	report := &domain.TrialBalanceReport{
		Rows:             rows,
		GrandTotalDebit:  decimal.Zero,
		GrandTotalCredit: decimal.Zero,
	}

	for i := range report.Rows {
		row := &report.Rows[i]
		row.Balance = accounting.DebitNormalBalance(row.TotalDebit, row.TotalCredit)
		report.GrandTotalDebit = report.GrandTotalDebit.Add(row.TotalDebit)
		report.GrandTotalCredit = report.GrandTotalCredit.Add(row.TotalCredit)
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].AccountCode < report.Rows[j].AccountCode
	})

	return report
}

func (s *reportingService) ListEntries(ctx context.Context, hospitalID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := logging.FromContext(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	filter := portsrepo.EntryFilter{
		FromDate:       params.FromDate,
		ToDate:         params.ToDate,
		AccountID:      params.AccountID,
		CostCenter:     params.CostCenter,
		FiscalPeriodID: params.FiscalPeriodID,
	}
	if params.ReferenceType != nil {
		refType := domain.ReferenceType(*params.ReferenceType)
		if !refType.Valid() {
			return nil, apperrors.ErrValidation
		}
		filter.ReferenceType = &refType
	}

	entries, nextToken, err := s.entryRepo.ListEntries(ctx, hospitalID, filter, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to list entries", slog.String("error", err.Error()), slog.String("hospital_id", hospitalID))
		}
		return nil, err
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
