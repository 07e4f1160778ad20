package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/auth"
	"github.com/agrilabs/wms-backend-go/internal/domain/insights"
	"github.com/agrilabs/wms-backend-go/internal/domain/notification"
)

// SettlementJobs produces in-app notifications about pending and overdue
// settlements for every farmer account.
type SettlementJobs struct {
	farmerRepo       auth.FarmerRepository
	insightsService  insights.InsightsService
	notificationRepo notification.NotificationRepository
	notificationSvc  notification.NotificationService
}

func NewSettlementJobs(
	farmerRepo auth.FarmerRepository,
	insightsService insights.InsightsService,
	notificationRepo notification.NotificationRepository,
	notificationSvc notification.NotificationService,
) *SettlementJobs {
	return &SettlementJobs{
		farmerRepo:       farmerRepo,
		insightsService:  insightsService,
		notificationRepo: notificationRepo,
		notificationSvc:  notificationSvc,
	}
}

func (j *SettlementJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("overdue_settlement_alerts", 1*time.Hour, j.OverdueSettlementAlerts)
	scheduler.AddJob("weekly_pending_summaries", 1*time.Hour, j.WeeklyPendingSummaries)
}

// OverdueSettlementAlerts notifies farmers whose workers have pending wages
// with no settlement in over a month. At most one alert per farmer per day.
func (j *SettlementJobs) OverdueSettlementAlerts(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting overdue settlement alerts job")

	farmerIDs, err := j.farmerRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list farmers: %w", err)
	}

	alerted := 0
	for _, farmerID := range farmerIDs {
		exists, err := j.notificationRepo.ExistsRecent(ctx, farmerID, notification.CategoryOverdue, 24)
		if err != nil {
			slog.Error("Cron: Failed to check recent notifications", "farmer_id", farmerID, "error", err)
			continue
		}
		if exists {
			continue
		}

		overview, err := j.insightsService.Overview(ctx, farmerID)
		if err != nil {
			slog.Error("Cron: Failed to load overview", "farmer_id", farmerID, "error", err)
			continue
		}
		if len(overview.OverdueWorkers) == 0 {
			continue
		}

		names := make([]string, 0, len(overview.OverdueWorkers))
		for _, w := range overview.OverdueWorkers {
			names = append(names, w.Name)
		}

		_, err = j.notificationSvc.Notify(ctx, farmerID, notification.CategoryOverdue,
			"Settlements overdue",
			fmt.Sprintf("%d workers have pending wages with no settlement in over a month", len(overview.OverdueWorkers)),
			map[string]any{
				"worker_count": len(overview.OverdueWorkers),
				"workers":      names,
			})
		if err != nil {
			slog.Error("Cron: Failed to create overdue notification", "farmer_id", farmerID, "error", err)
			continue
		}
		alerted++
	}

	slog.Info("Cron: Overdue settlement alerts sent", "count", alerted)
	return nil
}

// WeeklyPendingSummaries sends each farmer a pending-amount digest at most
// once a week, and only when something is pending.
func (j *SettlementJobs) WeeklyPendingSummaries(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting weekly pending summaries job")

	farmerIDs, err := j.farmerRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list farmers: %w", err)
	}

	sent := 0
	for _, farmerID := range farmerIDs {
		exists, err := j.notificationRepo.ExistsRecent(ctx, farmerID, notification.CategorySummary, 7*24)
		if err != nil {
			slog.Error("Cron: Failed to check recent notifications", "farmer_id", farmerID, "error", err)
			continue
		}
		if exists {
			continue
		}

		overview, err := j.insightsService.Overview(ctx, farmerID)
		if err != nil {
			slog.Error("Cron: Failed to load overview", "farmer_id", farmerID, "error", err)
			continue
		}
		if overview.PendingTotal.IsZero() && len(overview.PendingByWorker) == 0 {
			continue
		}

		_, err = j.notificationSvc.Notify(ctx, farmerID, notification.CategorySummary,
			"Weekly pending summary",
			fmt.Sprintf("%s pending across %d workers", overview.PendingTotal.StringFixed(2), len(overview.PendingByWorker)),
			map[string]any{
				"pending_total": overview.PendingTotal.StringFixed(2),
				"worker_count":  len(overview.PendingByWorker),
			})
		if err != nil {
			slog.Error("Cron: Failed to create summary notification", "farmer_id", farmerID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("Cron: Weekly pending summaries sent", "count", sent)
	return nil
}
