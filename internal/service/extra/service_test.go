package extra

import (
	"context"
	"testing"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
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

type stubExtraRepo struct {
	extra.ExtraRepository
	record extra.Extra

	updated *extra.Extra
	deleted bool
}

func (s *stubExtraRepo) GetByID(ctx context.Context, id string) (extra.Extra, error) {
	return s.record, nil
}

func (s *stubExtraRepo) Update(ctx context.Context, e extra.Extra) error {
	s.updated = &e
	return nil
}

func (s *stubExtraRepo) Delete(ctx context.Context, id string) error {
	s.deleted = true
	return nil
}

type openLock struct{}

func (openLock) EnsureUnlocked(ctx context.Context, workerID string, date time.Time) error {
	return nil
}

func TestSettledExtraIsImmutable(t *testing.T) {
	repo := &stubExtraRepo{record: extra.Extra{
		ID:        "ext1",
		WorkerID:  "w1",
		Date:      time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC),
		Item:      "Groceries",
		Amount:    decimal.NewFromInt(80),
		IsSettled: true,
	}}
	svc := NewExtraService(repo, &stubWorkerRepo{}, openLock{})

	t.Run("update rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "f1", extra.UpdateExtraRequest{
			ID:     "ext1",
			Date:   "2025-04-25",
			Item:   "Groceries",
			Amount: decimal.NewFromInt(999),
		})

		require.ErrorIs(t, err, extra.ErrExtraSettled)
		assert.Nil(t, repo.updated)
	})

	t.Run("delete rejected", func(t *testing.T) {
		err := svc.Delete(context.Background(), "f1", "ext1")

		require.ErrorIs(t, err, extra.ErrExtraSettled)
		assert.False(t, repo.deleted)
	})
}
