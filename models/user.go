package models

import (
	"time"

	"github.com/google/uuid"
)

// Authentication providers a user can sign in with
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// User is an account that can sign in to the dashboard
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Provider     string    `json:"provider"`
	AvatarURL    string    `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// SignUpRequest represents the request body for email/password registration
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// SignInRequest represents the request body for email/password sign in
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by the session endpoints
type SessionResponse struct {
	User        *User     `json:"user"`
	AccessToken string    `json:"access_token,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}
