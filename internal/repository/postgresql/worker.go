package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type workerRepository struct {
	db *database.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now

	query := `
		INSERT INTO workers (id, farmer_id, name, status, remarks, wallet_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		w.ID,
		w.FarmerID,
		w.Name,
		string(w.Status),
		w.Remarks,
		w.WalletBalance,
		w.CreatedAt,
		w.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, farmer_id, name, status, remarks, wallet_balance, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	var status string
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID,
		&w.FarmerID,
		&w.Name,
		&status,
		&w.Remarks,
		&w.WalletBalance,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}
	w.Status = worker.Status(status)

	return w, nil
}

func (r *workerRepository) ListByFarmer(ctx context.Context, farmerID string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, farmer_id, name, status, remarks, wallet_balance, created_at, updated_at
		FROM workers
		WHERE farmer_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		var status string
		if err := rows.Scan(
			&w.ID,
			&w.FarmerID,
			&w.Name,
			&status,
			&w.Remarks,
			&w.WalletBalance,
			&w.CreatedAt,
			&w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		w.Status = worker.Status(status)
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

func (r *workerRepository) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = $2, status = $3, remarks = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, w.ID, w.Name, string(w.Status), w.Remarks, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepository) AdjustWalletBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET wallet_balance = wallet_balance + $2, updated_at = $3
		WHERE id = $1
		RETURNING wallet_balance
	`

	var balance decimal.Decimal
	err := q.QueryRow(ctx, query, id, delta, time.Now()).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, worker.ErrWorkerNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to adjust wallet balance: %w", err)
	}

	return balance, nil
}
