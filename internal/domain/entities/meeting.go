package entities

import (
	"time"

	"github.com/google/uuid"
)

// UploadType distinguishes browser-recorded audio from uploaded files
type UploadType string

const (
	UploadTypeRecorded UploadType = "recorded"
	UploadTypeUploaded UploadType = "uploaded"
)

// IsValid checks if the upload type is one of the declared kinds
func (t UploadType) IsValid() bool {
	switch t {
	case UploadTypeRecorded, UploadTypeUploaded:
		return true
	}
	return false
}

// MeetingStatus tracks the processing lifecycle of a meeting.
// "processed", "completed" and "failed" are part of the declared lifecycle
// but no flow currently transitions into them; transcription is the only
// writer and it advances uploaded -> transcribed.
type MeetingStatus string

const (
	MeetingStatusUploaded    MeetingStatus = "uploaded"
	MeetingStatusTranscribed MeetingStatus = "transcribed"
	MeetingStatusProcessed   MeetingStatus = "processed"
	MeetingStatusCompleted   MeetingStatus = "completed"
	MeetingStatusFailed      MeetingStatus = "failed"
)

// IsValid checks if the meeting status is a declared lifecycle state
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusUploaded, MeetingStatusTranscribed, MeetingStatusProcessed,
		MeetingStatusCompleted, MeetingStatusFailed:
		return true
	}
	return false
}

// DefaultMeetingTitle is used when the uploader does not name the meeting
const DefaultMeetingTitle = "Untitled Meeting"

// Meeting is the central record for one uploaded audio session
type Meeting struct {
	ID         uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     *uuid.UUID    `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Title      string        `json:"title" gorm:"type:varchar(255);default:'Untitled Meeting'"`
	AudioURL   string        `json:"audio_url" gorm:"type:text"`
	UploadType UploadType    `json:"upload_type" gorm:"type:varchar(20)"`
	Status     MeetingStatus `json:"status" gorm:"type:varchar(20);not null;default:'uploaded';index"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting record for freshly stored audio
func NewMeeting(userID *uuid.UUID, title, audioURL string, uploadType UploadType) *Meeting {
	if title == "" {
		title = DefaultMeetingTitle
	}
	return &Meeting{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		AudioURL:   audioURL,
		UploadType: uploadType,
		Status:     MeetingStatusUploaded,
		CreatedAt:  time.Now(),
	}
}
