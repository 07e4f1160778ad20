package extra

import (
	"context"
	"time"
)

// ExtraRepository defines data access methods for extras.
type ExtraRepository interface {
	Create(ctx context.Context, e Extra) (Extra, error)

	GetByID(ctx context.Context, id string) (Extra, error)

	ListByWorker(ctx context.Context, workerID string) ([]Extra, error)

	ListByFarmerRange(ctx context.Context, farmerID string, start, end time.Time) ([]Extra, error)

	ListByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]Extra, error)

	ListUnsettledByWorker(ctx context.Context, workerID string) ([]Extra, error)

	ListUnsettledByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]Extra, error)

	Update(ctx context.Context, e Extra) error

	Delete(ctx context.Context, id string) error

	MarkSettled(ctx context.Context, ids []string, settlementID string) error

	DeleteByWorker(ctx context.Context, workerID string) error
}
