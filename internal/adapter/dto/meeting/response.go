package meeting

import (
	"time"

	"github.com/google/uuid"

	"github.com/automeet-app/automeet/internal/domain/entities"
	"github.com/automeet-app/automeet/internal/usecase/meeting"
)

// MeetingResponse represents one meeting record
type MeetingResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Title      string     `json:"title"`
	AudioURL   string     `json:"audio_url"`
	UploadType string     `json:"upload_type"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TranscriptResponse represents a stored transcript
type TranscriptResponse struct {
	ID        uuid.UUID `json:"id"`
	MeetingID uuid.UUID `json:"meeting_id"`
	RawText   string    `json:"raw_text"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// SummaryResponse represents a stored summary
type SummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	MeetingID   uuid.UUID `json:"meeting_id"`
	SummaryText string    `json:"summary_text"`
	Decisions   []string  `json:"decisions"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActionItemResponse represents one extracted action item
type ActionItemResponse struct {
	ID          uuid.UUID `json:"id"`
	MeetingID   uuid.UUID `json:"meeting_id"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	Deadline    string    `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
}

// DetailsResponse aggregates a meeting with its pipeline output. Transcript
// and summary are null until the respective stage ran.
type DetailsResponse struct {
	Meeting     *MeetingResponse     `json:"meeting"`
	Transcript  *TranscriptResponse  `json:"transcript"`
	Summary     *SummaryResponse     `json:"summary"`
	ActionItems []ActionItemResponse `json:"action_items"`
}

// SummaryResultResponse is returned by the summarization endpoint
type SummaryResultResponse struct {
	Summary     *SummaryResponse     `json:"summary"`
	ActionItems []ActionItemResponse `json:"action_items"`
}

// NewMeetingResponse converts a meeting entity to its response shape
func NewMeetingResponse(m *entities.Meeting) *MeetingResponse {
	return &MeetingResponse{
		ID:         m.ID,
		UserID:     m.UserID,
		Title:      m.Title,
		AudioURL:   m.AudioURL,
		UploadType: string(m.UploadType),
		Status:     string(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

// NewTranscriptResponse converts a transcript entity to its response shape
func NewTranscriptResponse(t *entities.Transcript) *TranscriptResponse {
	if t == nil {
		return nil
	}
	return &TranscriptResponse{
		ID:        t.ID,
		MeetingID: t.MeetingID,
		RawText:   t.RawText,
		Language:  t.Language,
		CreatedAt: t.CreatedAt,
	}
}

// NewSummaryResponse converts a summary entity to its response shape
func NewSummaryResponse(s *entities.Summary) *SummaryResponse {
	if s == nil {
		return nil
	}
	return &SummaryResponse{
		ID:          s.ID,
		MeetingID:   s.MeetingID,
		SummaryText: s.SummaryText,
		Decisions:   []string(s.Decisions),
		CreatedAt:   s.CreatedAt,
	}
}

// NewActionItemResponses converts action item entities to their response shape
func NewActionItemResponses(items []*entities.ActionItem) []ActionItemResponse {
	out := make([]ActionItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ActionItemResponse{
			ID:          it.ID,
			MeetingID:   it.MeetingID,
			Description: it.Description,
			Owner:       it.Owner,
			Deadline:    it.Deadline,
			CreatedAt:   it.CreatedAt,
		})
	}
	return out
}

// NewDetailsResponse converts aggregated meeting details to their response shape
func NewDetailsResponse(d *meeting.Details) *DetailsResponse {
	return &DetailsResponse{
		Meeting:     NewMeetingResponse(d.Meeting),
		Transcript:  NewTranscriptResponse(d.Transcript),
		Summary:     NewSummaryResponse(d.Summary),
		ActionItems: NewActionItemResponses(d.ActionItems),
	}
}
