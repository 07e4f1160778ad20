package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type settlementRepository struct {
	db *database.DB
}

// NewSettlementRepository creates a new settlement repository
func NewSettlementRepository(db *database.DB) settlement.SettlementRepository {
	return &settlementRepository{db: db}
}

const settlementColumns = `
	s.id, s.worker_id, s.farmer_id, s.start_date, s.end_date,
	s.attendance_total, s.advances_total, s.extras_total, s.net_amount,
	s.paid_amount, s.wallet_deposit, s.note, s.created_at
`

func scanSettlement(row pgx.Row) (settlement.Settlement, error) {
	var s settlement.Settlement
	err := row.Scan(
		&s.ID,
		&s.WorkerID,
		&s.FarmerID,
		&s.StartDate,
		&s.EndDate,
		&s.AttendanceTotal,
		&s.AdvancesTotal,
		&s.ExtrasTotal,
		&s.NetAmount,
		&s.PaidAmount,
		&s.WalletDeposit,
		&s.Note,
		&s.CreatedAt,
	)
	return s, err
}

func (r *settlementRepository) Create(ctx context.Context, s settlement.Settlement) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now()

	query := `
		INSERT INTO settlements (
			id, worker_id, farmer_id, start_date, end_date,
			attendance_total, advances_total, extras_total, net_amount,
			paid_amount, wallet_deposit, note, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := q.Exec(ctx, query,
		s.ID,
		s.WorkerID,
		s.FarmerID,
		s.StartDate,
		s.EndDate,
		s.AttendanceTotal,
		s.AdvancesTotal,
		s.ExtrasTotal,
		s.NetAmount,
		s.PaidAmount,
		s.WalletDeposit,
		s.Note,
		s.CreatedAt,
	)
	if err != nil {
		return settlement.Settlement{}, fmt.Errorf("failed to create settlement: %w", err)
	}

	return s, nil
}

func (r *settlementRepository) GetByID(ctx context.Context, id string) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM settlements s WHERE s.id = $1`, settlementColumns)

	s, err := scanSettlement(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settlement.Settlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.Settlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

func (r *settlementRepository) ListByWorker(ctx context.Context, workerID string) ([]settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM settlements s
		WHERE s.worker_id = $1
		ORDER BY s.created_at DESC
	`, settlementColumns)

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var records []settlement.Settlement
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		records = append(records, s)
	}

	return records, rows.Err()
}

func (r *settlementRepository) ListByFarmer(ctx context.Context, farmerID string) ([]settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, w.name
		FROM settlements s
		JOIN workers w ON w.id = s.worker_id
		WHERE s.farmer_id = $1
		ORDER BY s.created_at DESC
	`, settlementColumns)

	rows, err := q.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farmer settlements: %w", err)
	}
	defer rows.Close()

	var records []settlement.Settlement
	for rows.Next() {
		var s settlement.Settlement
		var workerName string
		if err := rows.Scan(
			&s.ID,
			&s.WorkerID,
			&s.FarmerID,
			&s.StartDate,
			&s.EndDate,
			&s.AttendanceTotal,
			&s.AdvancesTotal,
			&s.ExtrasTotal,
			&s.NetAmount,
			&s.PaidAmount,
			&s.WalletDeposit,
			&s.Note,
			&s.CreatedAt,
			&workerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		s.WorkerName = &workerName
		records = append(records, s)
	}

	return records, rows.Err()
}

func (r *settlementRepository) GetLastPeriodSettlement(ctx context.Context, workerID string) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	// wallet records carry a non-zero deposit and never lock a period
	query := fmt.Sprintf(`
		SELECT %s FROM settlements s
		WHERE s.worker_id = $1 AND s.wallet_deposit = 0
		ORDER BY s.end_date DESC, s.created_at DESC
		LIMIT 1
	`, settlementColumns)

	s, err := scanSettlement(q.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settlement.Settlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.Settlement{}, fmt.Errorf("failed to get last settlement: %w", err)
	}

	return s, nil
}

func (r *settlementRepository) DeleteByWorker(ctx context.Context, workerID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM settlements WHERE worker_id = $1`, workerID)
	if err != nil {
		return fmt.Errorf("failed to delete worker settlements: %w", err)
	}

	return nil
}
