package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/automeet-app/automeet/internal/domain/entities"
)

// TranscriptRepository handles transcript data operations
type TranscriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// CreateIfAbsent inserts the transcript unless one already exists for the
// meeting. The ON CONFLICT DO NOTHING path relies on the unique index on
// meeting_id, so two racing transcription calls cannot both insert; the
// loser re-reads and returns the winner's row.
func (r *TranscriptRepository) CreateIfAbsent(ctx context.Context, transcript *entities.Transcript) (*entities.Transcript, bool, error) {
	if transcript == nil {
		return nil, false, errors.New("transcript cannot be nil")
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "meeting_id"}},
			DoNothing: true,
		}).
		Create(transcript)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return transcript, true, nil
	}

	existing, err := r.FindByMeetingID(ctx, transcript.MeetingID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindByMeetingID retrieves a transcript by meeting ID; (nil, nil) when absent
func (r *TranscriptRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error) {
	var transcript entities.Transcript
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}
