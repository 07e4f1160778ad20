package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/notification"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now()

	metadataJSON, err := json.Marshal(n.Metadata)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to marshal notification metadata: %w", err)
	}

	query := `
		INSERT INTO notifications (id, farmer_id, category, title, body, metadata, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = q.Exec(ctx, query,
		n.ID,
		n.FarmerID,
		string(n.Category),
		n.Title,
		n.Body,
		metadataJSON,
		n.IsRead,
		n.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, farmer_id, category, title, body, metadata, is_read, created_at
		FROM notifications
		WHERE id = $1
	`

	n, err := scanNotification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.Notification{}, notification.ErrNotificationNotFound
		}
		return notification.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var n notification.Notification
	var category string
	var metadataJSON []byte

	err := row.Scan(&n.ID, &n.FarmerID, &category, &n.Title, &n.Body, &metadataJSON, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return notification.Notification{}, err
	}
	n.Category = notification.Category(category)

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &n.Metadata); err != nil {
			return notification.Notification{}, fmt.Errorf("failed to unmarshal notification metadata: %w", err)
		}
	}

	return n, nil
}

func (r *notificationRepository) ListByFarmer(ctx context.Context, farmerID string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, farmer_id, category, title, body, metadata, is_read, created_at
		FROM notifications
		WHERE farmer_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, farmerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var records []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		records = append(records, n)
	}

	return records, rows.Err()
}

func (r *notificationRepository) CountUnread(ctx context.Context, farmerID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE farmer_id = $1 AND is_read = false`, farmerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, farmerID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE notifications SET is_read = true WHERE farmer_id = $1 AND is_read = false`, farmerID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

func (r *notificationRepository) ExistsRecent(ctx context.Context, farmerID string, category notification.Category, withinHours int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE farmer_id = $1 AND category = $2 AND created_at > $3
		)
	`

	var exists bool
	cutoff := time.Now().Add(-time.Duration(withinHours) * time.Hour)
	if err := q.QueryRow(ctx, query, farmerID, string(category), cutoff).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check recent notifications: %w", err)
	}

	return exists, nil
}
