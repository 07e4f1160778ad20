package insights

import "context"

// InsightsRepository loads the read-only snapshot the overview is built from.
type InsightsRepository interface {
	LoadSnapshot(ctx context.Context, farmerID string) (Snapshot, error)
}
