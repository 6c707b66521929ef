package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/automeet-app/automeet/internal/domain/entities"
)

// MeetingRepository defines meeting persistence operations
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	// FindByID returns (nil, nil) when the meeting does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MeetingStatus) error
}
