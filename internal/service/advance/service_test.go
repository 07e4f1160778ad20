package advance

import (
	"context"
	"testing"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
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

type stubAdvanceRepo struct {
	advance.AdvanceRepository
	record advance.Advance

	updated *advance.Advance
	deleted bool
}

func (s *stubAdvanceRepo) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	return s.record, nil
}

func (s *stubAdvanceRepo) Update(ctx context.Context, a advance.Advance) error {
	s.updated = &a
	return nil
}

func (s *stubAdvanceRepo) Delete(ctx context.Context, id string) error {
	s.deleted = true
	return nil
}

// openLock stands in for a worker whose entry dates all fall after the last
// settled period.
type openLock struct{}

func (openLock) EnsureUnlocked(ctx context.Context, workerID string, date time.Time) error {
	return nil
}

func TestSettledAdvanceIsImmutable(t *testing.T) {
	repo := &stubAdvanceRepo{record: advance.Advance{
		ID:        "adv1",
		WorkerID:  "w1",
		Date:      time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(200),
		IsSettled: true,
	}}
	svc := NewAdvanceService(repo, &stubWorkerRepo{}, openLock{})

	t.Run("update rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "f1", advance.UpdateAdvanceRequest{
			ID:     "adv1",
			Date:   "2025-04-25",
			Amount: decimal.NewFromInt(999),
		})

		require.ErrorIs(t, err, advance.ErrAdvanceSettled)
		assert.Nil(t, repo.updated)
	})

	t.Run("delete rejected", func(t *testing.T) {
		err := svc.Delete(context.Background(), "f1", "adv1")

		require.ErrorIs(t, err, advance.ErrAdvanceSettled)
		assert.False(t, repo.deleted)
	})
}

func TestUnsettledAdvanceStaysEditable(t *testing.T) {
	repo := &stubAdvanceRepo{record: advance.Advance{
		ID:       "adv1",
		WorkerID: "w1",
		Date:     time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(200),
	}}
	svc := NewAdvanceService(repo, &stubWorkerRepo{}, openLock{})

	resp, err := svc.Update(context.Background(), "f1", advance.UpdateAdvanceRequest{
		ID:     "adv1",
		Date:   "2025-04-26",
		Amount: decimal.NewFromInt(250),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.True(t, repo.updated.Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "2025-04-26", resp.Date)
}
