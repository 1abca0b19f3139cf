package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/mapping"
	"github.com/SscSPs/contabilidad_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// entryNumberLockKey is the advisory lock serialising entry number allocation.
const entryNumberLockKey int64 = 0x636f6e7461

const movementColumns = `movement_id, account_id, movement_date, description, debit, credit, entry_number, created_at, created_by`

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgxMovementRepository struct {
	BaseRepository
}

func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryWithTx {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryWithTx
var _ portsrepo.MovementRepositoryWithTx = (*PgxMovementRepository)(nil)

// AppendEntry stores all lines of one entry inside a single database transaction.
func (r *PgxMovementRepository) AppendEntry(ctx context.Context, header domain.EntryHeader, lines []domain.EntryLine, opening bool) ([]domain.Movement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	// Concurrent writers queue here until this transaction ends.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, entryNumberLockKey); err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock entry numbering", err)
	}

	var entryNumber int64
	if opening {
		exists, err := openingEntryExists(ctx, tx)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrOpeningEntryExists
		}
		entryNumber = domain.OpeningEntryNumber
	} else {
		entryNumber, err = nextEntryNumber(ctx, tx)
		if err != nil {
			return nil, err
		}
	}

	insertQuery := `
		INSERT INTO movements (account_id, movement_date, description, debit, credit, entry_number, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING movement_id;
	`
	movements := make([]domain.Movement, len(lines))
	batch := &pgx.Batch{}
	for i, l := range lines {
		movements[i] = domain.Movement{
			AccountID:   l.AccountID,
			Date:        header.Date,
			Description: header.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			EntryNumber: entryNumber,
			AuditFields: header.AuditFields,
		}
		m := mapping.ToModelMovement(movements[i])
		batch.Queue(insertQuery, m.AccountID, m.MovementDate, m.Description, m.Debit, m.Credit, m.EntryNumber, m.CreatedAt, m.CreatedBy)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range movements {
		if err := br.QueryRow().Scan(&movements[i].MovementID); err != nil {
			br.Close()
			return nil, apperrors.NewAppError(500, "failed to insert movement for entry "+strconv.FormatInt(entryNumber, 10), err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to execute movement batch for entry "+strconv.FormatInt(entryNumber, 10), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return movements, nil
}

// NextEntryNumber reports the number the next regular entry would receive.
// The value is advisory; AppendEntry allocates the real number under the lock.
func (r *PgxMovementRepository) NextEntryNumber(ctx context.Context) (int64, error) {
	return nextEntryNumber(ctx, r.Pool)
}

// OpeningEntryExists reports whether the opening entry has been stored.
func (r *PgxMovementRepository) OpeningEntryExists(ctx context.Context) (bool, error) {
	return openingEntryExists(ctx, r.Pool)
}

// ListMovements retrieves movements matching the filter ordered by date and movement ID.
// A positive filter.Limit enables token-based pagination.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, *string, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, strings.ReplaceAll(clause, "?", "$"+strconv.Itoa(len(args))))
	}

	if filter.Period != nil {
		addCondition("movement_date >= ?", filter.Period.Start)
		addCondition("movement_date <= ?", filter.Period.End)
	}
	if filter.Description != "" {
		addCondition("description = ?", filter.Description)
	}
	if filter.AccountID > 0 {
		addCondition("account_id = ?", filter.AccountID)
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		lastDate, lastID, err := pagination.DecodeMovementToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		args = append(args, lastDate, lastID)
		conditions = append(conditions, fmt.Sprintf("(movement_date, movement_id) > ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + movementColumns + ` FROM movements`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY movement_date, movement_id"

	fetchLimit := 0
	if filter.Limit > 0 {
		// One extra row tells us whether another page exists.
		fetchLimit = filter.Limit + 1
		args = append(args, fetchLimit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, query+";", args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query movements", err)
	}
	modelMovements, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Movement])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan movement rows", err)
	}

	var nextTokenVal *string
	if fetchLimit > 0 && len(modelMovements) > filter.Limit {
		modelMovements = modelMovements[:filter.Limit]
		last := modelMovements[len(modelMovements)-1]
		token := pagination.EncodeMovementToken(last.MovementDate, last.MovementID)
		nextTokenVal = &token
	}

	return mapping.ToDomainMovementSlice(modelMovements), nextTokenVal, nil
}

func nextEntryNumber(ctx context.Context, q rowQuerier) (int64, error) {
	// Entry 1 is reserved for the opening entry.
	query := `SELECT GREATEST(COALESCE(MAX(entry_number), 0) + 1, $1) FROM movements;`
	var next int64
	if err := q.QueryRow(ctx, query, domain.OpeningEntryNumber+1).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to compute next entry number", err)
	}
	return next, nil
}

func openingEntryExists(ctx context.Context, q rowQuerier) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM movements WHERE description = $1);`
	var exists bool
	if err := q.QueryRow(ctx, query, domain.OpeningEntryDescription).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check for the opening entry", err)
	}
	return exists, nil
}
