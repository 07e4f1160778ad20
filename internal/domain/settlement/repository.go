package settlement

import "context"

// SettlementRepository defines data access methods for settlements.
type SettlementRepository interface {
	Create(ctx context.Context, s Settlement) (Settlement, error)

	GetByID(ctx context.Context, id string) (Settlement, error)

	// ListByWorker returns all settlement records, newest first.
	ListByWorker(ctx context.Context, workerID string) ([]Settlement, error)

	// ListByFarmer returns records across all the farmer's workers, newest
	// first, joined with the worker name.
	ListByFarmer(ctx context.Context, farmerID string) ([]Settlement, error)

	// GetLastPeriodSettlement returns the worker's most recent settlement
	// with the latest end date, skipping wallet records.
	// Returns ErrSettlementNotFound when the worker has none.
	GetLastPeriodSettlement(ctx context.Context, workerID string) (Settlement, error)

	DeleteByWorker(ctx context.Context, workerID string) error
}
