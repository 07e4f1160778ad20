package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorkerRepo struct {
	worker.WorkerRepository
}

func (s *stubWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return worker.Worker{ID: id, FarmerID: "f1"}, nil
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	record attendance.Attendance

	updated *attendance.Attendance
	deleted bool
}

func (s *stubAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return s.record, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error {
	s.updated = &a
	return nil
}

func (s *stubAttendanceRepo) Delete(ctx context.Context, id string) error {
	s.deleted = true
	return nil
}

type openLock struct{}

func (openLock) EnsureUnlocked(ctx context.Context, workerID string, date time.Time) error {
	return nil
}

func TestSettledAttendanceIsImmutable(t *testing.T) {
	rate := decimal.NewFromInt(50)
	repo := &stubAttendanceRepo{record: attendance.Attendance{
		ID:        "att1",
		WorkerID:  "w1",
		Date:      time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC),
		Status:    attendance.StatusPresent,
		Rate:      &rate,
		Total:     decimal.NewFromInt(400),
		IsSettled: true,
	}}
	svc := NewAttendanceService(repo, &stubWorkerRepo{}, openLock{})

	t.Run("update rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "f1", attendance.UpdateAttendanceRequest{
			ID:     "att1",
			Status: string(attendance.StatusAbsent),
			Note:   "sick day",
		})

		require.ErrorIs(t, err, attendance.ErrAttendanceSettled)
		assert.Nil(t, repo.updated)
	})

	t.Run("delete rejected", func(t *testing.T) {
		err := svc.Delete(context.Background(), "f1", "att1")

		require.ErrorIs(t, err, attendance.ErrAttendanceSettled)
		assert.False(t, repo.deleted)
	})
}
