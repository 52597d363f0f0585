package notifier

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// NotificationMessage is the JSON body published for every stored notification.
type NotificationMessage struct {
	NotificationID    int64     `json:"notificationId"`
	UserID            int64     `json:"userId"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	RelatedEntityType *string   `json:"relatedEntityType,omitempty"`
	RelatedEntityID   *int64    `json:"relatedEntityId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

func NewNotificationMessage(n domain.Notification) *NotificationMessage {
	return &NotificationMessage{
		NotificationID:    n.ID,
		UserID:            n.UserID,
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		RelatedEntityType: n.RelatedEntityType,
		RelatedEntityID:   n.RelatedEntityID,
		CreatedAt:         n.CreatedAt,
	}
}

// ToJSON converts the message to JSON bytes
func (m *NotificationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationMessageFromJSON decodes a published body.
func NotificationMessageFromJSON(data []byte) (*NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
