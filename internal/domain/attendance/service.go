package attendance

import "context"

// AttendanceService defines business logic for attendance records.
// Create, Update and Delete refuse to touch dates at or before the worker's
// last settled period end.
type AttendanceService interface {
	Create(ctx context.Context, farmerID string, req CreateAttendanceRequest) (AttendanceResponse, error)

	ListByWorker(ctx context.Context, farmerID, workerID string) ([]AttendanceResponse, error)

	ListByRange(ctx context.Context, farmerID string, req RangeRequest) ([]AttendanceResponse, error)

	Update(ctx context.Context, farmerID string, req UpdateAttendanceRequest) (AttendanceResponse, error)

	Delete(ctx context.Context, farmerID, id string) error
}
