// Package models holds the database row shapes scanned by the pgsql repositories.
package models

import "time"

// AuditFields holds the timestamp columns most tables carry.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
