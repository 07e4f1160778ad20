package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/insights"
)

type InsightsServiceImpl struct {
	insightsRepo insights.InsightsRepository
	now          func() time.Time
}

func NewInsightsService(insightsRepo insights.InsightsRepository) insights.InsightsService {
	return &InsightsServiceImpl{
		insightsRepo: insightsRepo,
		now:          time.Now,
	}
}

func (s *InsightsServiceImpl) Overview(ctx context.Context, farmerID string) (insights.OverviewResponse, error) {
	snap, err := s.insightsRepo.LoadSnapshot(ctx, farmerID)
	if err != nil {
		return insights.OverviewResponse{}, fmt.Errorf("failed to load insights snapshot: %w", err)
	}

	return insights.ComputeOverview(snap, s.now()), nil
}
