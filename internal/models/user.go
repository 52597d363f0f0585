package models

// User is a row of the users table.
type User struct {
	ID                int64   `db:"id"`
	Username          string  `db:"username"`
	Email             string  `db:"email"`
	PasswordHash      *string `db:"password_hash"` // NULL for external sign-in only users
	FirstName         *string `db:"first_name"`
	LastName          *string `db:"last_name"`
	DefaultCurrencyID *int64  `db:"default_currency_id"`
	AuthProvider      string  `db:"auth_provider"`
	ProviderUserID    *string `db:"provider_user_id"`
	IsActive          bool    `db:"is_active"`
	EmailVerified     bool    `db:"email_verified"`
	AuditFields
}
