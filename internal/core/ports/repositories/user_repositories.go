package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// UserRepository persists users.
type UserRepository interface {
	// CreateUser inserts the user and returns it with its id. Duplicate username
	// or email yields apperrors.ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// LinkProvider records the external identity a local user signed in with.
	LinkProvider(ctx context.Context, userID int64, provider domain.AuthProvider, providerUserID string, emailVerified bool) error
	// UpdateProfile applies the non-nil fields to an active user and returns the result.
	UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.User, error)
}
