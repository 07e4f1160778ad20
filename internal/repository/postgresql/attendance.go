package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.worker_id, a.date, a.status, a.start_time, a.end_time,
	a.rest_minutes, a.missing_minutes, a.rate, a.segments, a.note, a.remarks,
	a.hours_worked, a.total, a.is_settled, a.settlement_id, a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var status string
	var segmentsJSON []byte

	err := row.Scan(
		&a.ID,
		&a.WorkerID,
		&a.Date,
		&status,
		&a.StartTime,
		&a.EndTime,
		&a.RestMinutes,
		&a.MissingMinutes,
		&a.Rate,
		&segmentsJSON,
		&a.Note,
		&a.Remarks,
		&a.HoursWorked,
		&a.Total,
		&a.IsSettled,
		&a.SettlementID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	a.Status = attendance.Status(status)

	if len(segmentsJSON) > 0 {
		if err := json.Unmarshal(segmentsJSON, &a.Segments); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to unmarshal segments: %w", err)
		}
	}

	return a, nil
}

func (r *attendanceRepository) queryAttendances(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	segmentsJSON, err := json.Marshal(a.Segments)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to marshal segments: %w", err)
	}

	query := `
		INSERT INTO attendances (
			id, worker_id, date, status, start_time, end_time,
			rest_minutes, missing_minutes, rate, segments, note, remarks,
			hours_worked, total, is_settled, settlement_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err = q.Exec(ctx, query,
		a.ID,
		a.WorkerID,
		a.Date,
		string(a.Status),
		a.StartTime,
		a.EndTime,
		a.RestMinutes,
		a.MissingMinutes,
		a.Rate,
		segmentsJSON,
		a.Note,
		a.Remarks,
		a.HoursWorked,
		a.Total,
		a.IsSettled,
		a.SettlementID,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendances a WHERE a.id = $1`, attendanceColumns)

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) ExistsForDate(ctx context.Context, workerID string, date time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendances
			WHERE worker_id = $1 AND date = $2 AND id <> $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, workerID, date, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance date: %w", err)
	}

	return exists, nil
}

func (r *attendanceRepository) ListByWorker(ctx context.Context, workerID string) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM attendances a
		WHERE a.worker_id = $1
		ORDER BY a.date DESC
	`, attendanceColumns)

	return r.queryAttendances(ctx, query, workerID)
}

func (r *attendanceRepository) ListByFarmerRange(ctx context.Context, farmerID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, w.name
		FROM attendances a
		JOIN workers w ON w.id = a.worker_id
		WHERE w.farmer_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date, w.name
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, farmerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		var status string
		var segmentsJSON []byte
		var workerName string

		if err := rows.Scan(
			&a.ID,
			&a.WorkerID,
			&a.Date,
			&status,
			&a.StartTime,
			&a.EndTime,
			&a.RestMinutes,
			&a.MissingMinutes,
			&a.Rate,
			&segmentsJSON,
			&a.Note,
			&a.Remarks,
			&a.HoursWorked,
			&a.Total,
			&a.IsSettled,
			&a.SettlementID,
			&a.CreatedAt,
			&a.UpdatedAt,
			&workerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		a.Status = attendance.Status(status)
		a.WorkerName = &workerName

		if len(segmentsJSON) > 0 {
			if err := json.Unmarshal(segmentsJSON, &a.Segments); err != nil {
				return nil, fmt.Errorf("failed to unmarshal segments: %w", err)
			}
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) ListByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM attendances a
		WHERE a.worker_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date
	`, attendanceColumns)

	return r.queryAttendances(ctx, query, workerID, start, end)
}

func (r *attendanceRepository) ListUnsettledByWorker(ctx context.Context, workerID string) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM attendances a
		WHERE a.worker_id = $1 AND a.is_settled = false
		ORDER BY a.date
	`, attendanceColumns)

	return r.queryAttendances(ctx, query, workerID)
}

func (r *attendanceRepository) ListUnsettledByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM attendances a
		WHERE a.worker_id = $1 AND a.is_settled = false AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date
	`, attendanceColumns)

	return r.queryAttendances(ctx, query, workerID, start, end)
}

func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	segmentsJSON, err := json.Marshal(a.Segments)
	if err != nil {
		return fmt.Errorf("failed to marshal segments: %w", err)
	}

	query := `
		UPDATE attendances
		SET status = $2, start_time = $3, end_time = $4, rest_minutes = $5,
			missing_minutes = $6, rate = $7, segments = $8, note = $9,
			remarks = $10, hours_worked = $11, total = $12, updated_at = $13
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		a.ID,
		string(a.Status),
		a.StartTime,
		a.EndTime,
		a.RestMinutes,
		a.MissingMinutes,
		a.Rate,
		segmentsJSON,
		a.Note,
		a.Remarks,
		a.HoursWorked,
		a.Total,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) MarkSettled(ctx context.Context, ids []string, settlementID string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET is_settled = true, settlement_id = $2, updated_at = $3
		WHERE id = ANY($1)
	`

	_, err := q.Exec(ctx, query, ids, settlementID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark attendance settled: %w", err)
	}

	return nil
}

func (r *attendanceRepository) DeleteByWorker(ctx context.Context, workerID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM attendances WHERE worker_id = $1`, workerID)
	if err != nil {
		return fmt.Errorf("failed to delete worker attendance: %w", err)
	}

	return nil
}
