package settlement

import (
	"errors"
	"fmt"
)

var (
	ErrSettlementNotFound = errors.New("settlement not found")

	// ErrNoPendingEntries: nothing to settle in the requested scope
	ErrNoPendingEntries = errors.New("no pending entries to settle")

	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
)

// LockedPeriodError rejects a mutation whose date falls inside an already
// settled period. BoundaryDate is the YYYY-MM-DD end of the last settled
// period.
type LockedPeriodError struct {
	BoundaryDate string
}

func (e *LockedPeriodError) Error() string {
	return fmt.Sprintf("entries on or before %s are settled and cannot be changed", e.BoundaryDate)
}

// RangeMismatchError rejects a full settlement whose caller-supplied range
// does not exactly match the recomputed pending range.
type RangeMismatchError struct {
	ExpectedStartDate string
	ExpectedEndDate   string
}

func (e *RangeMismatchError) Error() string {
	return fmt.Sprintf("settlement range must cover all pending entries: expected %s to %s", e.ExpectedStartDate, e.ExpectedEndDate)
}
