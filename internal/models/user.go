package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

// Profile carries the shop link for an authenticated user. ShopID stays
// nil until the onboarding wizard creates a shop.
type Profile struct {
	ID        uuid.UUID  `json:"id"`
	ShopID    *uuid.UUID `json:"shop_id,omitempty"`
	FullName  *string    `json:"full_name,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	FullName        string `json:"fullName" validate:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Success        bool   `json:"success"`
	Token          string `json:"token,omitempty"`
	ExpiresIn      int    `json:"expires_in,omitempty"`
	RemainingTries int    `json:"remaining_tries,omitempty"`
	RetryAfter     int    `json:"retry_after,omitempty"`
	Message        string `json:"message,omitempty"`
	RedirectTo     string `json:"redirect_to,omitempty"`
}

// OnboardingStatus is the composite the route gate and wizard key off of:
// "fully onboarded" means a linked shop whose is_onboarded flag is set,
// never any single field alone.
type OnboardingStatus struct {
	HasProfile  bool       `json:"hasProfile"`
	HasShop     bool       `json:"hasShop"`
	IsOnboarded bool       `json:"isOnboarded"`
	ShopID      *uuid.UUID `json:"shopId,omitempty"`
}

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
