package notification

import "context"

// NotificationRepository defines data access methods for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)

	GetByID(ctx context.Context, id string) (Notification, error)

	// ListByFarmer returns notifications newest first.
	ListByFarmer(ctx context.Context, farmerID string, limit int) ([]Notification, error)

	CountUnread(ctx context.Context, farmerID string) (int, error)

	MarkRead(ctx context.Context, id string) error

	MarkAllRead(ctx context.Context, farmerID string) error

	// ExistsRecent reports whether a notification of the category was
	// created for the farmer since the given interval, to keep cron jobs
	// from duplicating alerts.
	ExistsRecent(ctx context.Context, farmerID string, category Category, withinHours int) (bool, error)
}
