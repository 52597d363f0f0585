package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// NotificationRepository persists notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID int64, at time.Time) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64, at time.Time) (int64, error)
	MarkSent(ctx context.Context, notificationID int64) error
}
