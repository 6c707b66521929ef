package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/automeet-app/automeet/internal/domain/entities"
)

// UserRepository defines user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	// FindByEmail returns entities.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
