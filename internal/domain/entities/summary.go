package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Summary holds the condensed narrative and decisions for one meeting.
// Like Transcript, meeting_id carries a unique index and writes use
// insert-if-absent.
type Summary struct {
	ID          uuid.UUID                     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID   uuid.UUID                     `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex"`
	SummaryText string                        `json:"summary_text" gorm:"type:text;not null"`
	Decisions   datatypes.JSONSlice[string]   `json:"decisions" gorm:"type:jsonb"`
	CreatedAt   time.Time                     `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Summary) TableName() string {
	return "summaries"
}

// NewSummary creates a new summary
func NewSummary(meetingID uuid.UUID, summaryText string, decisions []string) *Summary {
	if decisions == nil {
		decisions = []string{}
	}
	return &Summary{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		SummaryText: summaryText,
		Decisions:   datatypes.NewJSONSlice(decisions),
		CreatedAt:   time.Now(),
	}
}
