package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	Username  string  `json:"username" binding:"required,min=3,max=255"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ExchangeCodeRequest carries the authorization code the client received from Google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	FirstName         *string   `json:"firstName"`
	LastName          *string   `json:"lastName"`
	DefaultCurrencyID *int64    `json:"defaultCurrencyId"`
	EmailVerified     bool      `json:"emailVerified"`
	CreatedAt         time.Time `json:"createdAt"`
}

// AuthResponse is returned by every sign-in flow.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		DefaultCurrencyID: u.DefaultCurrencyID,
		EmailVerified:     u.EmailVerified,
		CreatedAt:         u.CreatedAt,
	}
}

// UpdateProfileRequest is the payload of PUT /users/profile. Omitted fields stay unchanged.
type UpdateProfileRequest struct {
	FirstName         *string `json:"firstName" binding:"omitempty,max=100"`
	LastName          *string `json:"lastName" binding:"omitempty,max=100"`
	DefaultCurrencyID *int64  `json:"defaultCurrencyId" binding:"omitempty,gt=0"`
	Password          *string `json:"password" binding:"omitempty,min=6"`
}

// ToDomain splits the request into profile fields and an optional new password.
func (r UpdateProfileRequest) ToDomain() (domain.ProfileUpdate, *string) {
	update := domain.ProfileUpdate{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		DefaultCurrencyID: r.DefaultCurrencyID,
	}
	if r.Password == nil || *r.Password == "" {
		return update, nil
	}
	return update, r.Password
}
