package lock

import (
	"context"
	"errors"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
)

type lockService struct {
	settlementRepo settlement.SettlementRepository
}

// NewLockService creates the settled-period lock shared by the attendance,
// advance and extra services.
func NewLockService(settlementRepo settlement.SettlementRepository) settlement.PeriodLock {
	return &lockService{settlementRepo: settlementRepo}
}

// EnsureUnlocked compares calendar-date keys on both sides: anything on or
// before the last period settlement's end date is locked.
func (s *lockService) EnsureUnlocked(ctx context.Context, workerID string, date time.Time) error {
	last, err := s.settlementRepo.GetLastPeriodSettlement(ctx, workerID)
	if err != nil {
		if errors.Is(err, settlement.ErrSettlementNotFound) {
			return nil
		}
		return err
	}

	boundary := validator.DateKey(last.EndDate)
	if validator.DateKey(date) <= boundary {
		return &settlement.LockedPeriodError{BoundaryDate: boundary}
	}

	return nil
}
