package services

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// ExternalIdentity is a verified identity asserted by an OAuth provider.
type ExternalIdentity struct {
	Provider       domain.AuthProvider
	ProviderUserID string
	Email          string
	EmailVerified  bool
	FirstName      *string
	LastName       *string
}

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// Register creates a local user with a hashed password.
	Register(ctx context.Context, user domain.User, password string) (*domain.User, error)
	// Authenticate checks email and password. Unknown email, wrong password and
	// inactive users all yield apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// FindOrCreateExternalUser signs in an OAuth identity, matching users by email.
	FindOrCreateExternalUser(ctx context.Context, identity ExternalIdentity) (*domain.User, error)
}

// UserProfileSvc lets users maintain their own profile.
type UserProfileSvc interface {
	// UpdateProfile changes the given fields. A non-nil newPassword replaces the
	// stored password hash.
	UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate, newPassword *string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserAuthSvc
	UserProfileSvc
}
