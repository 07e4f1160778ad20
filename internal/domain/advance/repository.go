package advance

import (
	"context"
	"time"
)

// AdvanceRepository defines data access methods for advances.
type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)

	GetByID(ctx context.Context, id string) (Advance, error)

	ListByWorker(ctx context.Context, workerID string) ([]Advance, error)

	ListByFarmerRange(ctx context.Context, farmerID string, start, end time.Time) ([]Advance, error)

	ListByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]Advance, error)

	ListUnsettledByWorker(ctx context.Context, workerID string) ([]Advance, error)

	ListUnsettledByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]Advance, error)

	Update(ctx context.Context, a Advance) error

	Delete(ctx context.Context, id string) error

	MarkSettled(ctx context.Context, ids []string, settlementID string) error

	DeleteByWorker(ctx context.Context, workerID string) error
}
