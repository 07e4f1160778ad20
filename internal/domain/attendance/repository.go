package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// ExistsForDate reports whether the worker already has a record on the
	// given calendar date, optionally excluding one record id (for updates).
	ExistsForDate(ctx context.Context, workerID string, date time.Time, excludeID string) (bool, error)

	// ListByWorker returns all records for one worker, newest date first.
	ListByWorker(ctx context.Context, workerID string) ([]Attendance, error)

	// ListByFarmerRange returns records for every worker of the farmer whose
	// date falls in [start, end], joined with the worker name.
	ListByFarmerRange(ctx context.Context, farmerID string, start, end time.Time) ([]Attendance, error)

	// ListByWorkerRange returns all records (settled included) whose date
	// falls in [start, end], oldest date first.
	ListByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]Attendance, error)

	// ListUnsettledByWorker returns unsettled records, oldest date first.
	ListUnsettledByWorker(ctx context.Context, workerID string) ([]Attendance, error)

	// ListUnsettledByWorkerRange restricts ListUnsettledByWorker to [start, end].
	ListUnsettledByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]Attendance, error)

	Update(ctx context.Context, a Attendance) error

	Delete(ctx context.Context, id string) error

	// MarkSettled stamps the given records with the settlement id.
	MarkSettled(ctx context.Context, ids []string, settlementID string) error

	DeleteByWorker(ctx context.Context, workerID string) error
}
