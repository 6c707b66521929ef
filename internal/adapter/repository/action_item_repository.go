package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/automeet-app/automeet/internal/domain/entities"
)

// ActionItemRepository handles action item data operations
type ActionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{db: db}
}

// CreateBatch inserts all action items in a single statement
func (r *ActionItemRepository) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// ListByMeetingID retrieves all action items for a meeting in insertion order
func (r *ActionItemRepository) ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
