package domain

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents a user of the application in the domain.
type User struct {
	ID                int64
	Username          string
	Email             string
	PasswordHash      string
	FirstName         *string
	LastName          *string
	DefaultCurrencyID *int64
	AuthProvider      AuthProvider
	ProviderUserID    *string
	IsActive          bool
	EmailVerified     bool
	AuditFields
}

// ProfileUpdate lists the profile fields a user may change. Nil fields are kept.
type ProfileUpdate struct {
	FirstName         *string
	LastName          *string
	DefaultCurrencyID *int64
	PasswordHash      *string
}
