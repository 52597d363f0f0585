package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/utils"
)

var errInvalidCredentials = apperrors.NewUnauthorizedError("invalid email or password")

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", slog.Int64("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Register(ctx context.Context, user domain.User, password string) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.PasswordHash = hash
	user.AuthProvider = domain.ProviderLocal
	user.IsActive = true

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a user with this username or email already exists")
		}
		s.LogError(ctx, err, "Failed to create user", slog.String("email", user.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", created.ID))
	return created, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}
	return user, nil
}

func (s *userService) FindOrCreateExternalUser(ctx context.Context, identity portssvc.ExternalIdentity) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email == "" {
		return nil, apperrors.NewUnauthorizedError("identity provider did not return an email address")
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if !existing.IsActive {
			return nil, apperrors.NewUnauthorizedError("user account is disabled")
		}
		if existing.ProviderUserID == nil || *existing.ProviderUserID != identity.ProviderUserID {
			if err := s.userRepo.LinkProvider(ctx, existing.ID, identity.Provider, identity.ProviderUserID, identity.EmailVerified); err != nil {
				s.LogError(ctx, err, "Failed to link external identity", slog.Int64("user_id", existing.ID))
				return nil, fmt.Errorf("failed to link external identity: %w", err)
			}
			providerUserID := identity.ProviderUserID
			existing.ProviderUserID = &providerUserID
			existing.EmailVerified = existing.EmailVerified || identity.EmailVerified
		}
		return existing, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up user for external sign-in")
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	providerUserID := identity.ProviderUserID
	created, err := s.userRepo.CreateUser(ctx, domain.User{
		Username:       email,
		Email:          email,
		FirstName:      identity.FirstName,
		LastName:       identity.LastName,
		AuthProvider:   identity.Provider,
		ProviderUserID: &providerUserID,
		IsActive:       true,
		EmailVerified:  identity.EmailVerified,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create user from external identity")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created from external identity",
		slog.Int64("user_id", created.ID),
		slog.String("provider", string(identity.Provider)))
	return created, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate, newPassword *string) (*domain.User, error) {
	if newPassword != nil {
		hash, err := utils.HashPassword(*newPassword)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, err
		}
		update.PasswordHash = &hash
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError("user not found")
		case errors.Is(err, apperrors.ErrValidation):
			return nil, apperrors.NewFieldError("defaultCurrencyId", "currency not found")
		}
		s.LogError(ctx, err, "Failed to update profile", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.LogInfo(ctx, "Profile updated", slog.Int64("user_id", userID), slog.Bool("password_changed", newPassword != nil))
	return user, nil
}
