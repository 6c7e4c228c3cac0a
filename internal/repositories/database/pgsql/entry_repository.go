package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medforge/hospital_ledger/internal/apperrors"
	"github.com/medforge/hospital_ledger/internal/core/domain"
	portsrepo "github.com/medforge/hospital_ledger/internal/core/ports/repositories"
	"github.com/medforge/hospital_ledger/internal/models"
	"github.com/medforge/hospital_ledger/internal/utils/mapping"
	"github.com/medforge/hospital_ledger/internal/utils/pagination"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for GL entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, hospital_id, transaction_date, account_id, debit_amount, credit_amount, description, reference_type, reference_id, cost_center, fiscal_period_id, status, reverses_id, created_at, created_by`

const insertEntryQuery = `
	INSERT INTO gl_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	var costCenter sql.NullString
	var periodID sql.NullString
	var reversesID sql.NullString
	err := row.Scan(
		&m.EntryID,
		&m.HospitalID,
		&m.TransactionDate,
		&m.AccountID,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&costCenter,
		&periodID,
		&m.Status,
		&reversesID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return models.Entry{}, err
	}
	if costCenter.Valid {
		m.CostCenter = costCenter.String
	}
	if periodID.Valid {
		m.FiscalPeriodID = &periodID.String
	}
	if reversesID.Valid {
		m.ReversesID = &reversesID.String
	}
	return m, nil
}

func entryInsertArgs(m models.Entry) []any {
	var costCenter sql.NullString
	if m.CostCenter != "" {
		costCenter = sql.NullString{String: m.CostCenter, Valid: true}
	}
	return []any{
		m.EntryID,
		m.HospitalID,
		m.TransactionDate,
		m.AccountID,
		m.DebitAmount,
		m.CreditAmount,
		m.Description,
		m.ReferenceType,
		m.ReferenceID,
		costCenter,
		m.FiscalPeriodID,
		m.Status,
		m.ReversesID,
		m.CreatedAt,
		m.CreatedBy,
	}
}

// SaveEntries writes every line of one journal within a single transaction.
// A failure on any line leaves zero rows committed.
func (r *PgxEntryRepository) SaveEntries(ctx context.Context, entries []domain.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(insertEntryQuery, entryInsertArgs(mapping.ToModelEntry(entry))...)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute entry insert batch for journal "+entries[0].ReferenceID, err)
	}

	return r.Commit(ctx, tx)
}

// SaveReversal atomically marks the original entries REVERSED and inserts the
// compensating entries. The status flip is conditional on status = 'POSTED',
// so of two concurrent reversal attempts exactly one sees all rows flip; the
// other observes a short count and rolls back with a conflict. The unique
// index on reverses_id backstops the same guarantee.
func (r *PgxEntryRepository) SaveReversal(ctx context.Context, originalIDs []string, reversals []domain.Entry) error {
	if len(originalIDs) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx,
		`UPDATE gl_entries SET status = 'REVERSED' WHERE entry_id = ANY($1) AND status = 'POSTED';`,
		originalIDs,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark entries reversed", err)
	}
	if cmdTag.RowsAffected() != int64(len(originalIDs)) {
		return fmt.Errorf("%w: journal already reversed", apperrors.ErrConflict)
	}

	batch := &pgx.Batch{}
	for _, entry := range reversals {
		batch.Queue(insertEntryQuery, entryInsertArgs(mapping.ToModelEntry(entry))...)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: journal already reversed", apperrors.ErrConflict)
		}
		return apperrors.NewAppError(500, "failed to execute reversal insert batch", err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM gl_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

// FindEntriesByReference retrieves every entry of one logical journal.
func (r *PgxEntryRepository) FindEntriesByReference(ctx context.Context, hospitalID string, refType domain.ReferenceType, refID string) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM gl_entries
		WHERE hospital_id = $1 AND reference_type = $2 AND reference_id = $3
		ORDER BY created_at, entry_id;
	`

	rows, err := r.Pool.Query(ctx, query, hospitalID, refType, refID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for reference %s/%s: %w", refType, refID, err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row for reference %s/%s: %w", refType, refID, err)
		}
		entries = append(entries, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows for reference %s/%s: %w", refType, refID, err)
	}

	return mapping.ToDomainEntrySlice(entries), nil
}

// ListEntries retrieves a filtered, token-paginated list of entries. Ordering
// is (transaction_date DESC, created_at DESC, entry_id DESC), which the cursor
// token encodes.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, hospitalID string, filter portsrepo.EntryFilter, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra row to determine whether there is a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + entryColumns + ` FROM gl_entries WHERE hospital_id = $1`
	args := []any{hospitalID}

	addArg := func(clause string, value any) {
		args = append(args, value)
		query += ` AND ` + strings.Replace(clause, `?`, `$`+strconv.Itoa(len(args)), 1)
	}

	// Date filters are day-granular, matching fiscal period semantics.
	if filter.FromDate != nil {
		addArg(`transaction_date::date >= ?::date`, *filter.FromDate)
	}
	if filter.ToDate != nil {
		addArg(`transaction_date::date <= ?::date`, *filter.ToDate)
	}
	if filter.AccountID != nil {
		addArg(`account_id = ?`, *filter.AccountID)
	}
	if filter.ReferenceType != nil {
		addArg(`reference_type = ?`, *filter.ReferenceType)
	}
	if filter.CostCenter != nil {
		addArg(`cost_center = ?`, *filter.CostCenter)
	}
	if filter.FiscalPeriodID != nil {
		addArg(`fiscal_period_id = ?`, *filter.FiscalPeriodID)
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}
		// entry_id breaks ties: all lines of one journal share the same
		// transaction date and creation time, so a cursor without it would
		// skip the rest of a journal when a page boundary lands inside one.
		args = append(args, lastDate, lastCreatedAt, lastEntryID)
		query += ` AND (transaction_date, created_at, entry_id) < ($` + strconv.Itoa(len(args)-2) +
			`, $` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY transaction_date DESC, created_at DESC, entry_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries for hospital "+hospitalID, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row for hospital "+hospitalID, err)
		}
		entries = append(entries, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows for hospital "+hospitalID, err)
	}

	var nextTokenVal *string
	results := entries
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt, last.EntryID)
		nextTokenVal = &token
		results = entries[:limit]
	}

	return mapping.ToDomainEntrySlice(results), nextTokenVal, nil
}
