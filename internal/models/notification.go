package models

import "time"

// Notification is a row of the notifications table.
type Notification struct {
	ID                int64      `db:"id"`
	UserID            int64      `db:"user_id"`
	Type              string     `db:"type"`
	Title             string     `db:"title"`
	Message           *string    `db:"message"`
	RelatedEntityType *string    `db:"related_entity_type"`
	RelatedEntityID   *int64     `db:"related_entity_id"`
	IsRead            bool       `db:"is_read"`
	IsSent            bool       `db:"is_sent"`
	CreatedAt         time.Time  `db:"created_at"`
	ReadAt            *time.Time `db:"read_at"`
}
