package dto

import (
	"time"

	"github.com/ticketd/ticketd/internal/domain"
)

// SignupRequest payload for new accounts.
type SignupRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the wire form of an account. The password hash is never
// included.
type UserResponse struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// NewUserResponse maps a domain user to its wire form.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, DisplayName: u.DisplayName, Email: u.Email}
}

// AuthResponse standard response for login.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
