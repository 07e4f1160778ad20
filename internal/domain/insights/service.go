package insights

import "context"

// InsightsService exposes the farmer dashboard overview.
type InsightsService interface {
	Overview(ctx context.Context, farmerID string) (OverviewResponse, error)
}
