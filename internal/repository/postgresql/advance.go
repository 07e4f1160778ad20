package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type advanceRepository struct {
	db *database.DB
}

// NewAdvanceRepository creates a new advance repository
func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `
	a.id, a.worker_id, a.date, a.amount, a.note,
	a.is_settled, a.settlement_id, a.created_at, a.updated_at
`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID,
		&a.WorkerID,
		&a.Date,
		&a.Amount,
		&a.Note,
		&a.IsSettled,
		&a.SettlementID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *advanceRepository) queryAdvances(ctx context.Context, query string, args ...interface{}) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances: %w", err)
	}
	defer rows.Close()

	var records []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *advanceRepository) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO advances (id, worker_id, date, amount, note, is_settled, settlement_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		a.ID,
		a.WorkerID,
		a.Date,
		a.Amount,
		a.Note,
		a.IsSettled,
		a.SettlementID,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM advances a WHERE a.id = $1`, advanceColumns)

	a, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) ListByWorker(ctx context.Context, workerID string) ([]advance.Advance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM advances a
		WHERE a.worker_id = $1
		ORDER BY a.date DESC
	`, advanceColumns)

	return r.queryAdvances(ctx, query, workerID)
}

func (r *advanceRepository) ListByFarmerRange(ctx context.Context, farmerID string, start, end time.Time) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, w.name
		FROM advances a
		JOIN workers w ON w.id = a.worker_id
		WHERE w.farmer_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date, w.name
	`, advanceColumns)

	rows, err := q.Query(ctx, query, farmerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query advance range: %w", err)
	}
	defer rows.Close()

	var records []advance.Advance
	for rows.Next() {
		var a advance.Advance
		var workerName string
		if err := rows.Scan(
			&a.ID,
			&a.WorkerID,
			&a.Date,
			&a.Amount,
			&a.Note,
			&a.IsSettled,
			&a.SettlementID,
			&a.CreatedAt,
			&a.UpdatedAt,
			&workerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		a.WorkerName = &workerName
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *advanceRepository) ListByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]advance.Advance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM advances a
		WHERE a.worker_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date
	`, advanceColumns)

	return r.queryAdvances(ctx, query, workerID, start, end)
}

func (r *advanceRepository) ListUnsettledByWorker(ctx context.Context, workerID string) ([]advance.Advance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM advances a
		WHERE a.worker_id = $1 AND a.is_settled = false
		ORDER BY a.date
	`, advanceColumns)

	return r.queryAdvances(ctx, query, workerID)
}

func (r *advanceRepository) ListUnsettledByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]advance.Advance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM advances a
		WHERE a.worker_id = $1 AND a.is_settled = false AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date
	`, advanceColumns)

	return r.queryAdvances(ctx, query, workerID, start, end)
}

func (r *advanceRepository) Update(ctx context.Context, a advance.Advance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advances
		SET date = $2, amount = $3, note = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, a.ID, a.Date, a.Amount, a.Note, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}

func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}

func (r *advanceRepository) MarkSettled(ctx context.Context, ids []string, settlementID string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advances
		SET is_settled = true, settlement_id = $2, updated_at = $3
		WHERE id = ANY($1)
	`

	_, err := q.Exec(ctx, query, ids, settlementID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark advances settled: %w", err)
	}

	return nil
}

func (r *advanceRepository) DeleteByWorker(ctx context.Context, workerID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM advances WHERE worker_id = $1`, workerID)
	if err != nil {
		return fmt.Errorf("failed to delete worker advances: %w", err)
	}

	return nil
}
