package domain

import "time"

// NotificationType classifies notifications.
type NotificationType string

const (
	NotificationRecurringReminder NotificationType = "recurring_reminder"
	NotificationRecurringFailed   NotificationType = "recurring_failed"
	NotificationGoalAchieved      NotificationType = "goal_achieved"
)

// Notification is a message addressed to a user.
type Notification struct {
	ID                int64
	UserID            int64
	Type              NotificationType
	Title             string
	Message           string
	RelatedEntityType *string
	RelatedEntityID   *int64
	IsRead            bool
	IsSent            bool
	CreatedAt         time.Time
	ReadAt            *time.Time
}

// NotificationFilter narrows a notification listing. Listing is newest first;
// the cursor, when set, points at the last row of the previous page.
type NotificationFilter struct {
	UserID          int64
	UnreadOnly      bool
	Limit           int
	CursorCreatedAt *time.Time
	CursorID        *int64
}
