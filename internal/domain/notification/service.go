package notification

import "context"

// NotificationService defines business logic for notifications. Notify is
// used by the cron jobs, the rest backs the HTTP surface.
type NotificationService interface {
	Notify(ctx context.Context, farmerID string, category Category, title, body string, metadata map[string]any) (NotificationResponse, error)

	List(ctx context.Context, farmerID string) ([]NotificationResponse, error)

	UnreadCount(ctx context.Context, farmerID string) (UnreadCountResponse, error)

	MarkRead(ctx context.Context, farmerID, id string) error

	MarkAllRead(ctx context.Context, farmerID string) error
}
