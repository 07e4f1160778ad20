package notification

import (
	"context"
	"fmt"

	"github.com/agrilabs/wms-backend-go/internal/domain/notification"
)

const listLimit = 50

type NotificationServiceImpl struct {
	notificationRepo notification.NotificationRepository
}

func NewNotificationService(notificationRepo notification.NotificationRepository) notification.NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) Notify(ctx context.Context, farmerID string, category notification.Category, title, body string, metadata map[string]any) (notification.NotificationResponse, error) {
	created, err := s.notificationRepo.Create(ctx, notification.Notification{
		FarmerID: farmerID,
		Category: category,
		Title:    title,
		Body:     body,
		Metadata: metadata,
	})
	if err != nil {
		return notification.NotificationResponse{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification.ToResponse(created), nil
}

func (s *NotificationServiceImpl) List(ctx context.Context, farmerID string) ([]notification.NotificationResponse, error) {
	records, err := s.notificationRepo.ListByFarmer(ctx, farmerID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(records))
	for _, n := range records {
		responses = append(responses, notification.ToResponse(n))
	}
	return responses, nil
}

func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, farmerID string) (notification.UnreadCountResponse, error) {
	count, err := s.notificationRepo.CountUnread(ctx, farmerID)
	if err != nil {
		return notification.UnreadCountResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return notification.UnreadCountResponse{Count: count}, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, farmerID, id string) error {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.FarmerID != farmerID {
		return notification.ErrNotificationNotFound
	}

	return s.notificationRepo.MarkRead(ctx, id)
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, farmerID string) error {
	return s.notificationRepo.MarkAllRead(ctx, farmerID)
}
