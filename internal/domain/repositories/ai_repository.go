package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/automeet-app/automeet/internal/domain/entities"
)

// TranscriptRepository defines transcript persistence operations
type TranscriptRepository interface {
	// CreateIfAbsent inserts the transcript unless one already exists for
	// its meeting. It returns the stored row (the argument on a fresh
	// insert, the pre-existing transcript on conflict) and whether the
	// insert happened.
	CreateIfAbsent(ctx context.Context, transcript *entities.Transcript) (*entities.Transcript, bool, error)
	// FindByMeetingID returns (nil, nil) when no transcript exists.
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error)
}

// SummaryRepository defines summary persistence operations
type SummaryRepository interface {
	CreateIfAbsent(ctx context.Context, summary *entities.Summary) (*entities.Summary, bool, error)
	// FindByMeetingID returns (nil, nil) when no summary exists.
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, error)
}

// ActionItemRepository defines action item persistence operations
type ActionItemRepository interface {
	CreateBatch(ctx context.Context, items []*entities.ActionItem) error
	ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)
}
