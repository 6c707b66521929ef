package entities

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when the AI provider omits a field
const (
	ActionItemOwnerUnassigned     = "Unassigned"
	ActionItemDeadlineUnspecified = "unspecified"
)

// ActionItem is one follow-up task extracted during summarization.
// Deadline is free text as extracted from the transcript ("next Friday",
// "2025-01-01"); no normalization to a date type is attempted.
// Items are append-only: re-running summarization appends duplicates.
type ActionItem struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID       uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	Owner           string    `json:"owner" gorm:"type:varchar(255);default:'Unassigned'"`
	Deadline        string    `json:"deadline" gorm:"type:varchar(255)"`
	CalendarEventID *string   `json:"calendar_event_id,omitempty" gorm:"type:varchar(255)"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates an action item, applying owner/deadline defaults
func NewActionItem(meetingID uuid.UUID, description, owner, deadline string) *ActionItem {
	if owner == "" {
		owner = ActionItemOwnerUnassigned
	}
	if deadline == "" {
		deadline = ActionItemDeadlineUnspecified
	}
	return &ActionItem{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Description: description,
		Owner:       owner,
		Deadline:    deadline,
		CreatedAt:   time.Now(),
	}
}
