package entities

import (
	"time"

	"github.com/google/uuid"
)

// Transcript is the stored verbatim text for one meeting.
// The unique index on meeting_id enforces at most one transcript per
// meeting at the storage layer; writes go through an insert-if-absent
// so concurrent transcription calls cannot both win.
type Transcript struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex"`
	RawText   string    `json:"raw_text" gorm:"type:text;not null"`
	Language  string    `json:"language" gorm:"type:varchar(20);default:'en'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a new transcript
func NewTranscript(meetingID uuid.UUID, rawText string) *Transcript {
	return &Transcript{
		ID:        uuid.New(),
		MeetingID: meetingID,
		RawText:   rawText,
		Language:  "en",
		CreatedAt: time.Now(),
	}
}
