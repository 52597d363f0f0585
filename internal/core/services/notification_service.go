package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
)

// notificationService stores notifications and forwards them to external publishers.
type notificationService struct {
	BaseService
	repo       portsrepo.NotificationRepository
	publishers []portssvc.NotificationSink
}

type NotificationServiceOption func(*notificationService)

// WithPublisher adds an external sink every stored notification is forwarded to.
func WithPublisher(publisher portssvc.NotificationSink) NotificationServiceOption {
	return func(s *notificationService) {
		if publisher != nil {
			s.publishers = append(s.publishers, publisher)
		}
	}
}

func NewNotificationService(repo portsrepo.NotificationRepository, options ...NotificationServiceOption) portssvc.NotificationSvc {
	svc := &notificationService{repo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.NotificationSvc = (*notificationService)(nil)

// Notify stores the notification and forwards it to every publisher. The
// notification is marked sent once all publishers accepted it. A publisher
// failure does not undo the stored notification.
func (s *notificationService) Notify(ctx context.Context, n domain.Notification) error {
	stored, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		s.LogError(ctx, err, "Failed to store notification", slog.Int64("user_id", n.UserID), slog.String("type", string(n.Type)))
		return fmt.Errorf("failed to store notification: %w", err)
	}
	if len(s.publishers) == 0 {
		return nil
	}

	var errs []error
	for _, p := range s.publishers {
		if err := p.Notify(ctx, *stored); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		s.LogError(ctx, err, "Failed to publish notification", slog.Int64("notification_id", stored.ID))
		return nil
	}

	if err := s.repo.MarkSent(ctx, stored.ID); err != nil {
		s.LogError(ctx, err, "Failed to mark notification sent", slog.Int64("notification_id", stored.ID))
	}
	return nil
}

func (s *notificationService) ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	items, err := s.repo.ListNotifications(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications")
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return items, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID int64) (*domain.Notification, error) {
	n, err := s.repo.MarkRead(ctx, notificationID, userID, s.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("notification not found")
		}
		s.LogError(ctx, err, "Failed to mark notification read", slog.Int64("notification_id", notificationID))
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	updated, err := s.repo.MarkAllRead(ctx, userID, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to mark notifications read")
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return updated, nil
}
