package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medforge/hospital_ledger/internal/core/domain"
	portsrepo "github.com/medforge/hospital_ledger/internal/core/ports/repositories"
)

// reportingRepository implements aggregate ledger queries.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// Reversed entries are NOT excluded: a reversal posts compensating entries,
// so totals net out without filtering on status.
const trialBalanceSelect = `
	SELECT
		a.account_id,
		a.code,
		a.name,
		a.account_type,
		COALESCE(SUM(e.debit_amount), 0) AS total_debit,
		COALESCE(SUM(e.credit_amount), 0) AS total_credit
	FROM gl_entries e
	JOIN accounts a ON e.account_id = a.account_id
`

func scanTrialBalanceRows(rows pgx.Rows) ([]domain.TrialBalanceRow, error) {
	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}

// GetTrialBalanceAsOf aggregates debit/credit totals per account over all
// entries dated up to and including the asOf day. The cutoff is day-granular,
// matching fiscal period semantics, so any time on the asOf day is included.
func (r *reportingRepository) GetTrialBalanceAsOf(ctx context.Context, hospitalID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := trialBalanceSelect + `
	WHERE e.hospital_id = $1
		AND e.transaction_date::date <= $2::date
	GROUP BY a.account_id, a.code, a.name, a.account_type
	ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query, hospitalID, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance for hospital %s: %w", hospitalID, err)
	}
	defer rows.Close()

	return scanTrialBalanceRows(rows)
}

// GetTrialBalanceForPeriod aggregates debit/credit totals per account over all
// entries assigned to the fiscal period.
func (r *reportingRepository) GetTrialBalanceForPeriod(ctx context.Context, hospitalID string, periodID string) ([]domain.TrialBalanceRow, error) {
	query := trialBalanceSelect + `
	WHERE e.hospital_id = $1
		AND e.fiscal_period_id = $2
	GROUP BY a.account_id, a.code, a.name, a.account_type
	ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query, hospitalID, periodID)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance for period %s: %w", periodID, err)
	}
	defer rows.Close()

	return scanTrialBalanceRows(rows)
}
