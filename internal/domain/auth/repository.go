package auth

import "context"

// FarmerRepository defines data access methods for farmer accounts.
type FarmerRepository interface {
	Create(ctx context.Context, f Farmer) (Farmer, error)

	GetByEmail(ctx context.Context, email string) (Farmer, error)

	GetByID(ctx context.Context, id string) (Farmer, error)

	// ListIDs returns every farmer id; used by the cron jobs.
	ListIDs(ctx context.Context) ([]string, error)
}
