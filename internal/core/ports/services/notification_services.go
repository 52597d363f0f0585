package services

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// NotificationSink delivers a notification somewhere the user will see it.
type NotificationSink interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// NotificationSvc manages the stored notifications of a user.
type NotificationSvc interface {
	NotificationSink
	ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID int64) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}
