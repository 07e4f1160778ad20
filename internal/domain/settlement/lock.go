package settlement

import (
	"context"
	"time"
)

// PeriodLock guards attendance, advance and extra mutations against already
// settled periods. Comparison is calendar-date-only on both sides.
type PeriodLock interface {
	// EnsureUnlocked returns a *LockedPeriodError when date falls on or
	// before the end of the worker's last period settlement. Wallet records
	// never lock anything.
	EnsureUnlocked(ctx context.Context, workerID string, date time.Time) error
}
