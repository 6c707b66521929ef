package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/automeet-app/automeet/internal/domain/entities"
)

// SummaryRepository handles summary data operations
type SummaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// CreateIfAbsent inserts the summary unless one already exists for the
// meeting, mirroring the transcript insert path.
func (r *SummaryRepository) CreateIfAbsent(ctx context.Context, summary *entities.Summary) (*entities.Summary, bool, error) {
	if summary == nil {
		return nil, false, errors.New("summary cannot be nil")
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "meeting_id"}},
			DoNothing: true,
		}).
		Create(summary)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return summary, true, nil
	}

	existing, err := r.FindByMeetingID(ctx, summary.MeetingID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindByMeetingID retrieves a summary by meeting ID; (nil, nil) when absent
func (r *SummaryRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, error) {
	var summary entities.Summary
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).First(&summary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}
