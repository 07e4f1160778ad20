package postgresql

import (
	"context"
	"fmt"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/domain/insights"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
)

type insightsRepository struct {
	db          *database.DB
	workers     worker.WorkerRepository
	settlements settlement.SettlementRepository
}

// NewInsightsRepository creates a new insights repository
func NewInsightsRepository(db *database.DB) insights.InsightsRepository {
	return &insightsRepository{
		db:          db,
		workers:     NewWorkerRepository(db),
		settlements: NewSettlementRepository(db),
	}
}

// LoadSnapshot reads everything the overview needs for one farmer. The
// overview is display-only, so the reads do not share a transaction.
func (r *insightsRepository) LoadSnapshot(ctx context.Context, farmerID string) (insights.Snapshot, error) {
	var snap insights.Snapshot
	var err error

	snap.Workers, err = r.workers.ListByFarmer(ctx, farmerID)
	if err != nil {
		return insights.Snapshot{}, err
	}

	snap.Attendances, err = r.loadAttendances(ctx, farmerID)
	if err != nil {
		return insights.Snapshot{}, err
	}

	snap.Advances, err = r.loadAdvances(ctx, farmerID)
	if err != nil {
		return insights.Snapshot{}, err
	}

	snap.Extras, err = r.loadExtras(ctx, farmerID)
	if err != nil {
		return insights.Snapshot{}, err
	}

	snap.Settlements, err = r.settlements.ListByFarmer(ctx, farmerID)
	if err != nil {
		return insights.Snapshot{}, err
	}

	return snap, nil
}

func (r *insightsRepository) loadAttendances(ctx context.Context, farmerID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.worker_id, a.date, a.status, a.hours_worked, a.total, a.is_settled
		FROM attendances a
		JOIN workers w ON w.id = a.worker_id
		WHERE w.farmer_id = $1
	`

	rows, err := q.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance snapshot: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		var status string
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.Date, &status, &a.HoursWorked, &a.Total, &a.IsSettled); err != nil {
			return nil, fmt.Errorf("failed to scan attendance snapshot: %w", err)
		}
		a.Status = attendance.Status(status)
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *insightsRepository) loadAdvances(ctx context.Context, farmerID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.worker_id, a.date, a.amount, a.is_settled
		FROM advances a
		JOIN workers w ON w.id = a.worker_id
		WHERE w.farmer_id = $1
	`

	rows, err := q.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advance snapshot: %w", err)
	}
	defer rows.Close()

	var records []advance.Advance
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.Date, &a.Amount, &a.IsSettled); err != nil {
			return nil, fmt.Errorf("failed to scan advance snapshot: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *insightsRepository) loadExtras(ctx context.Context, farmerID string) ([]extra.Extra, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.worker_id, e.date, e.item, e.amount, e.is_settled
		FROM extras e
		JOIN workers w ON w.id = e.worker_id
		WHERE w.farmer_id = $1
	`

	rows, err := q.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query extra snapshot: %w", err)
	}
	defer rows.Close()

	var records []extra.Extra
	for rows.Next() {
		var e extra.Extra
		if err := rows.Scan(&e.ID, &e.WorkerID, &e.Date, &e.Item, &e.Amount, &e.IsSettled); err != nil {
			return nil, fmt.Errorf("failed to scan extra snapshot: %w", err)
		}
		records = append(records, e)
	}

	return records, rows.Err()
}
