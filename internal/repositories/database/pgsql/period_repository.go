package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medforge/hospital_ledger/internal/apperrors"
	"github.com/medforge/hospital_ledger/internal/core/domain"
	portsrepo "github.com/medforge/hospital_ledger/internal/core/ports/repositories"
	"github.com/medforge/hospital_ledger/internal/models"
	"github.com/medforge/hospital_ledger/internal/utils/mapping"
)

// exclusionViolationCode is raised by the period-overlap exclusion constraint.
const exclusionViolationCode = "23P01"

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for fiscal period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `period_id, hospital_id, name, start_date, end_date, is_closed, closed_by, closed_at, created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (models.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.HospitalID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.IsClosed,
		&m.ClosedBy,
		&m.ClosedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePeriod persists a new fiscal period. The DB-level exclusion constraint
// reports overlapping ranges as a conflict even under concurrent creation.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.FiscalPeriod) error {
	m := mapping.ToModelFiscalPeriod(period)

	query := `
		INSERT INTO fiscal_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.PeriodID,
		m.HospitalID,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.IsClosed,
		m.ClosedBy,
		m.ClosedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == exclusionViolationCode || pgErr.Code == uniqueViolationCode) {
			return fmt.Errorf("%w: fiscal period overlaps an existing period for hospital %s", apperrors.ErrConflict, m.HospitalID)
		}
		return fmt.Errorf("failed to save fiscal period %s: %w", m.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a fiscal period by its ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE period_id = $1;`

	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal period by ID %s: %w", periodID, err)
	}

	period := mapping.ToDomainFiscalPeriod(m)
	return &period, nil
}

// FindOpenPeriodByDate returns the open period whose [start_date, end_date]
// contains the date.
func (r *PgxPeriodRepository) FindOpenPeriodByDate(ctx context.Context, hospitalID string, date time.Time) (*domain.FiscalPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE hospital_id = $1 AND is_closed = FALSE AND $2::date BETWEEN start_date AND end_date
		ORDER BY start_date
		LIMIT 1;
	`

	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, hospitalID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open fiscal period for hospital %s: %w", hospitalID, err)
	}

	period := mapping.ToDomainFiscalPeriod(m)
	return &period, nil
}

// FindOverlappingPeriods returns all periods of the hospital intersecting the
// closed interval [start, end].
func (r *PgxPeriodRepository) FindOverlappingPeriods(ctx context.Context, hospitalID string, start, end time.Time) ([]domain.FiscalPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE hospital_id = $1 AND start_date <= $3::date AND end_date >= $2::date
		ORDER BY start_date;
	`

	rows, err := r.Pool.Query(ctx, query, hospitalID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping fiscal periods for hospital %s: %w", hospitalID, err)
	}
	defer rows.Close()

	periods := []models.FiscalPeriod{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal period row for hospital %s: %w", hospitalID, err)
		}
		periods = append(periods, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal period rows for hospital %s: %w", hospitalID, err)
	}

	return mapping.ToDomainFiscalPeriodSlice(periods), nil
}

// ListPeriods retrieves all fiscal periods for a hospital ordered by start date.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, hospitalID string) ([]domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE hospital_id = $1 ORDER BY start_date;`

	rows, err := r.Pool.Query(ctx, query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fiscal periods for hospital %s: %w", hospitalID, err)
	}
	defer rows.Close()

	periods := []models.FiscalPeriod{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal period row for hospital %s: %w", hospitalID, err)
		}
		periods = append(periods, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal period rows for hospital %s: %w", hospitalID, err)
	}

	return mapping.ToDomainFiscalPeriodSlice(periods), nil
}

// ClosePeriod marks an open period closed. The update is conditional on
// is_closed = FALSE; a zero row count on an existing period means it was
// already closed.
func (r *PgxPeriodRepository) ClosePeriod(ctx context.Context, periodID string, userID string, now time.Time) error {
	query := `
		UPDATE fiscal_periods
		SET is_closed = TRUE, closed_by = $2, closed_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE period_id = $1 AND is_closed = FALSE;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, periodID, userID, now)
	if err != nil {
		return fmt.Errorf("failed to close fiscal period %s: %w", periodID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		if _, findErr := r.FindPeriodByID(ctx, periodID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: fiscal period %s is already closed", apperrors.ErrConflict, periodID)
	}

	return nil
}
