package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type extraRepository struct {
	db *database.DB
}

// NewExtraRepository creates a new extra repository
func NewExtraRepository(db *database.DB) extra.ExtraRepository {
	return &extraRepository{db: db}
}

const extraColumns = `
	e.id, e.worker_id, e.date, e.item, e.amount, e.note,
	e.is_settled, e.settlement_id, e.created_at, e.updated_at
`

func scanExtra(row pgx.Row) (extra.Extra, error) {
	var e extra.Extra
	err := row.Scan(
		&e.ID,
		&e.WorkerID,
		&e.Date,
		&e.Item,
		&e.Amount,
		&e.Note,
		&e.IsSettled,
		&e.SettlementID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *extraRepository) queryExtras(ctx context.Context, query string, args ...interface{}) ([]extra.Extra, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query extras: %w", err)
	}
	defer rows.Close()

	var records []extra.Extra
	for rows.Next() {
		e, err := scanExtra(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan extra: %w", err)
		}
		records = append(records, e)
	}

	return records, rows.Err()
}

func (r *extraRepository) Create(ctx context.Context, e extra.Extra) (extra.Extra, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
		INSERT INTO extras (id, worker_id, date, item, amount, note, is_settled, settlement_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		e.ID,
		e.WorkerID,
		e.Date,
		e.Item,
		e.Amount,
		e.Note,
		e.IsSettled,
		e.SettlementID,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		return extra.Extra{}, fmt.Errorf("failed to create extra: %w", err)
	}

	return e, nil
}

func (r *extraRepository) GetByID(ctx context.Context, id string) (extra.Extra, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM extras e WHERE e.id = $1`, extraColumns)

	e, err := scanExtra(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return extra.Extra{}, extra.ErrExtraNotFound
		}
		return extra.Extra{}, fmt.Errorf("failed to get extra: %w", err)
	}

	return e, nil
}

func (r *extraRepository) ListByWorker(ctx context.Context, workerID string) ([]extra.Extra, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM extras e
		WHERE e.worker_id = $1
		ORDER BY e.date DESC
	`, extraColumns)

	return r.queryExtras(ctx, query, workerID)
}

func (r *extraRepository) ListByFarmerRange(ctx context.Context, farmerID string, start, end time.Time) ([]extra.Extra, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, w.name
		FROM extras e
		JOIN workers w ON w.id = e.worker_id
		WHERE w.farmer_id = $1 AND e.date >= $2 AND e.date <= $3
		ORDER BY e.date, w.name
	`, extraColumns)

	rows, err := q.Query(ctx, query, farmerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query extra range: %w", err)
	}
	defer rows.Close()

	var records []extra.Extra
	for rows.Next() {
		var e extra.Extra
		var workerName string
		if err := rows.Scan(
			&e.ID,
			&e.WorkerID,
			&e.Date,
			&e.Item,
			&e.Amount,
			&e.Note,
			&e.IsSettled,
			&e.SettlementID,
			&e.CreatedAt,
			&e.UpdatedAt,
			&workerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan extra: %w", err)
		}
		e.WorkerName = &workerName
		records = append(records, e)
	}

	return records, rows.Err()
}

func (r *extraRepository) ListByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]extra.Extra, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM extras e
		WHERE e.worker_id = $1 AND e.date >= $2 AND e.date <= $3
		ORDER BY e.date
	`, extraColumns)

	return r.queryExtras(ctx, query, workerID, start, end)
}

func (r *extraRepository) ListUnsettledByWorker(ctx context.Context, workerID string) ([]extra.Extra, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM extras e
		WHERE e.worker_id = $1 AND e.is_settled = false
		ORDER BY e.date
	`, extraColumns)

	return r.queryExtras(ctx, query, workerID)
}

func (r *extraRepository) ListUnsettledByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]extra.Extra, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM extras e
		WHERE e.worker_id = $1 AND e.is_settled = false AND e.date >= $2 AND e.date <= $3
		ORDER BY e.date
	`, extraColumns)

	return r.queryExtras(ctx, query, workerID, start, end)
}

func (r *extraRepository) Update(ctx context.Context, e extra.Extra) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE extras
		SET date = $2, item = $3, amount = $4, note = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, e.ID, e.Date, e.Item, e.Amount, e.Note, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update extra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return extra.ErrExtraNotFound
	}

	return nil
}

func (r *extraRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM extras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete extra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return extra.ErrExtraNotFound
	}

	return nil
}

func (r *extraRepository) MarkSettled(ctx context.Context, ids []string, settlementID string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE extras
		SET is_settled = true, settlement_id = $2, updated_at = $3
		WHERE id = ANY($1)
	`

	_, err := q.Exec(ctx, query, ids, settlementID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark extras settled: %w", err)
	}

	return nil
}

func (r *extraRepository) DeleteByWorker(ctx context.Context, workerID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM extras WHERE worker_id = $1`, workerID)
	if err != nil {
		return fmt.Errorf("failed to delete worker extras: %w", err)
	}

	return nil
}
