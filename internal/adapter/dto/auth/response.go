package auth

import (
	"time"

	"github.com/automeet-app/automeet/internal/domain/entities"
)

// UserResponse represents user information in responses
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse represents the authentication response with the issued token
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// NewUserResponse converts a user entity to its response shape
func NewUserResponse(user *entities.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
