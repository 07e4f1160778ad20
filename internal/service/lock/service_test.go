package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettlementRepo struct {
	settlement.SettlementRepository
	last settlement.Settlement
	err  error
}

func (s *stubSettlementRepo) GetLastPeriodSettlement(ctx context.Context, workerID string) (settlement.Settlement, error) {
	if s.err != nil {
		return settlement.Settlement{}, s.err
	}
	return s.last, nil
}

func TestEnsureUnlocked(t *testing.T) {
	boundary := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	svc := NewLockService(&stubSettlementRepo{
		last: settlement.Settlement{EndDate: boundary},
	})

	t.Run("date before the boundary is locked", func(t *testing.T) {
		err := svc.EnsureUnlocked(context.Background(), "w1", boundary.AddDate(0, 0, -3))

		var lockErr *settlement.LockedPeriodError
		require.ErrorAs(t, err, &lockErr)
		assert.Equal(t, "2025-04-15", lockErr.BoundaryDate)
	})

	t.Run("boundary day itself is locked", func(t *testing.T) {
		err := svc.EnsureUnlocked(context.Background(), "w1", boundary)
		var lockErr *settlement.LockedPeriodError
		assert.ErrorAs(t, err, &lockErr)
	})

	t.Run("later time of day on the boundary date is still locked", func(t *testing.T) {
		err := svc.EnsureUnlocked(context.Background(), "w1", boundary.Add(23*time.Hour))
		var lockErr *settlement.LockedPeriodError
		assert.ErrorAs(t, err, &lockErr)
	})

	t.Run("day after the boundary is open", func(t *testing.T) {
		err := svc.EnsureUnlocked(context.Background(), "w1", boundary.AddDate(0, 0, 1))
		assert.NoError(t, err)
	})
}

func TestEnsureUnlockedNoSettlements(t *testing.T) {
	svc := NewLockService(&stubSettlementRepo{err: settlement.ErrSettlementNotFound})

	err := svc.EnsureUnlocked(context.Background(), "w1", time.Now())
	assert.NoError(t, err)
}

func TestEnsureUnlockedRepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := NewLockService(&stubSettlementRepo{err: repoErr})

	err := svc.EnsureUnlocked(context.Background(), "w1", time.Now())
	assert.ErrorIs(t, err, repoErr)
}
