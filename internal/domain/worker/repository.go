package worker

import (
	"context"

	"github.com/shopspring/decimal"
)

// WorkerRepository defines data access methods for workers.
// All read methods take farmerID to keep one farmer from reaching
// another farmer's workers.
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)

	// GetByID returns the worker regardless of owner; callers check ownership.
	GetByID(ctx context.Context, id string) (Worker, error)

	ListByFarmer(ctx context.Context, farmerID string) ([]Worker, error)

	Update(ctx context.Context, w Worker) error

	Delete(ctx context.Context, id string) error

	// AdjustWalletBalance applies a signed delta to the worker's wallet and
	// returns the new balance.
	AdjustWalletBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
}
