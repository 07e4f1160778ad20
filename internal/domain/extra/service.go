package extra

import "context"

// ExtraService defines business logic for extras. Mutations respect the
// worker's settled-period lock.
type ExtraService interface {
	Create(ctx context.Context, farmerID string, req CreateExtraRequest) (ExtraResponse, error)

	ListByWorker(ctx context.Context, farmerID, workerID string) ([]ExtraResponse, error)

	ListByRange(ctx context.Context, farmerID, startDate, endDate string) ([]ExtraResponse, error)

	Update(ctx context.Context, farmerID string, req UpdateExtraRequest) (ExtraResponse, error)

	Delete(ctx context.Context, farmerID, id string) error
}
