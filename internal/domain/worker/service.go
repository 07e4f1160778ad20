package worker

import "context"

// WorkerService defines business logic for worker management.
// Every method checks that the worker belongs to farmerID before acting.
type WorkerService interface {
	Create(ctx context.Context, farmerID string, req CreateWorkerRequest) (WorkerResponse, error)

	Get(ctx context.Context, farmerID, id string) (WorkerResponse, error)

	List(ctx context.Context, farmerID string) ([]WorkerResponse, error)

	Update(ctx context.Context, farmerID string, req UpdateWorkerRequest) (WorkerResponse, error)

	// Delete removes the worker and every dependent attendance, advance,
	// extra and settlement record in one transaction.
	Delete(ctx context.Context, farmerID, id string) error
}
