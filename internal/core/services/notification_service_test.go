package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/SscSPs/personal_finance_api/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotify_StoresPublishesAndMarksSent(t *testing.T) {
	repo := new(MockNotificationRepository)
	publisher := new(MockSink)
	svc := services.NewNotificationService(repo, services.WithPublisher(publisher))

	n := domain.Notification{UserID: 1, Type: domain.NotificationRecurringReminder, Title: "Rent due"}
	stored := n
	stored.ID = 12

	repo.On("CreateNotification", mock.Anything, n).Return(&stored, nil).Once()
	publisher.On("Notify", mock.Anything, stored).Return(nil).Once()
	repo.On("MarkSent", mock.Anything, int64(12)).Return(nil).Once()

	require.NoError(t, svc.Notify(context.Background(), n))
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestNotify_PublisherFailureKeepsNotificationUnsent(t *testing.T) {
	repo := new(MockNotificationRepository)
	publisher := new(MockSink)
	svc := services.NewNotificationService(repo, services.WithPublisher(publisher))

	n := domain.Notification{UserID: 1, Type: domain.NotificationGoalAchieved}
	stored := n
	stored.ID = 13

	repo.On("CreateNotification", mock.Anything, n).Return(&stored, nil).Once()
	publisher.On("Notify", mock.Anything, stored).Return(assertErr).Once()

	assert.NoError(t, svc.Notify(context.Background(), n))
	repo.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything)
}

func TestNotify_WithoutPublishersOnlyStores(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := services.NewNotificationService(repo)

	n := domain.Notification{UserID: 1}
	repo.On("CreateNotification", mock.Anything, n).Return(&domain.Notification{ID: 1, UserID: 1}, nil).Once()

	assert.NoError(t, svc.Notify(context.Background(), n))
	repo.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything)
}

func TestNotify_StoreFailure(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := services.NewNotificationService(repo)

	repo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil, assertErr).Once()

	assert.ErrorIs(t, svc.Notify(context.Background(), domain.Notification{UserID: 1}), assertErr)
}

func TestMarkAllRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := services.NewNotificationService(repo)

	repo.On("MarkAllRead", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once()

	updated, err := svc.MarkAllRead(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}
