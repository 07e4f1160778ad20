package advance

import "context"

// AdvanceService defines business logic for advances. Mutations respect the
// worker's settled-period lock.
type AdvanceService interface {
	Create(ctx context.Context, farmerID string, req CreateAdvanceRequest) (AdvanceResponse, error)

	ListByWorker(ctx context.Context, farmerID, workerID string) ([]AdvanceResponse, error)

	ListByRange(ctx context.Context, farmerID, startDate, endDate string) ([]AdvanceResponse, error)

	Update(ctx context.Context, farmerID string, req UpdateAdvanceRequest) (AdvanceResponse, error)

	Delete(ctx context.Context, farmerID, id string) error
}
