package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/SscSPs/personal_finance_api/internal/utils/pagination"
)

const DefaultNotificationLimit = 50

// ListNotificationsParams are the query parameters of the notification listing.
type ListNotificationsParams struct {
	UnreadOnly bool   `form:"unreadOnly"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken  string `form:"nextToken"`
}

func (p ListNotificationsParams) ToFilter(userID int64) (domain.NotificationFilter, error) {
	f := domain.NotificationFilter{
		UserID:     userID,
		UnreadOnly: p.UnreadOnly,
		Limit:      p.Limit,
	}
	if f.Limit < 1 {
		f.Limit = DefaultNotificationLimit
	}
	if p.NextToken != "" {
		createdAt, id, err := pagination.DecodeToken(p.NextToken)
		if err != nil {
			return domain.NotificationFilter{}, apperrors.NewFieldError("nextToken", "is not a valid page token")
		}
		f.CursorCreatedAt = &createdAt
		f.CursorID = &id
	}
	return f, nil
}

type NotificationResponse struct {
	ID                int64      `json:"id"`
	Type              string     `json:"type"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	RelatedEntityType *string    `json:"relatedEntityType"`
	RelatedEntityID   *int64     `json:"relatedEntityId"`
	IsRead            bool       `json:"isRead"`
	IsSent            bool       `json:"isSent"`
	CreatedAt         time.Time  `json:"createdAt"`
	ReadAt            *time.Time `json:"readAt"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	NextToken     *string                `json:"nextToken"`
}

// MarkAllReadResponse reports how many notifications changed state.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                n.ID,
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		RelatedEntityType: n.RelatedEntityType,
		RelatedEntityID:   n.RelatedEntityID,
		IsRead:            n.IsRead,
		IsSent:            n.IsSent,
		CreatedAt:         n.CreatedAt,
		ReadAt:            n.ReadAt,
	}
}

// ToListNotificationsResponse emits a next token only when the page is full.
func ToListNotificationsResponse(items []domain.Notification, limit int) ListNotificationsResponse {
	out := make([]NotificationResponse, len(items))
	for i := range items {
		out[i] = ToNotificationResponse(&items[i])
	}
	resp := ListNotificationsResponse{Notifications: out}
	if limit > 0 && len(items) == limit {
		last := items[len(items)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ID)
		resp.NextToken = &token
	}
	return resp
}
