package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/automeet-app/automeet/errors"
	"github.com/automeet-app/automeet/internal/domain/entities"
	domainrepo "github.com/automeet-app/automeet/internal/domain/repositories"
	"github.com/automeet-app/automeet/internal/infrastructure/storage"
)

const transcriptionPrompt = "Transcribe this audio meeting word-for-word. " +
	"Identify speakers if possible. Return ONLY the raw text."

const summaryPromptTemplate = `Analyze the following meeting transcript and return a JSON object with exactly these fields:
- "summary": a concise narrative summary of the meeting
- "decisions": an array of strings, one per decision made
- "action_items": an array of objects with "description", "owner" and "deadline" fields; use "Unassigned" when no owner is named and "unspecified" when no deadline is mentioned

Transcript:
%s`

// Provider is the generative AI surface the pipeline depends on
type Provider interface {
	UploadFile(ctx context.Context, r io.Reader, mimeType string) (string, error)
	GenerateContentFromFile(ctx context.Context, fileURI, mimeType, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// SummaryResult bundles the stored summary with the action items created
// alongside it
type SummaryResult struct {
	Summary     *entities.Summary
	ActionItems []*entities.ActionItem
}

// Service defines the AI pipeline operations
type Service interface {
	Transcribe(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error)
	GenerateSummary(ctx context.Context, meetingID uuid.UUID) (*SummaryResult, error)
}

type aiService struct {
	meetingRepo    domainrepo.MeetingRepository
	transcriptRepo domainrepo.TranscriptRepository
	summaryRepo    domainrepo.SummaryRepository
	actionItemRepo domainrepo.ActionItemRepository
	store          storage.Store
	provider       Provider
	parser         *Parser
	logger         *zap.Logger
}

// NewAIService constructs a new AI service
func NewAIService(
	meetingRepo domainrepo.MeetingRepository,
	transcriptRepo domainrepo.TranscriptRepository,
	summaryRepo domainrepo.SummaryRepository,
	actionItemRepo domainrepo.ActionItemRepository,
	store storage.Store,
	provider Provider,
	logger *zap.Logger,
) Service {
	return &aiService{
		meetingRepo:    meetingRepo,
		transcriptRepo: transcriptRepo,
		summaryRepo:    summaryRepo,
		actionItemRepo: actionItemRepo,
		store:          store,
		provider:       provider,
		parser:         NewParser(),
		logger:         logger,
	}
}

// Transcribe sends a meeting's audio to the provider and stores the result.
// An existing transcript is returned as-is without calling the provider.
func (s *aiService) Transcribe(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error) {
	existing, err := s.transcriptRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if existing != nil {
		if s.logger != nil {
			s.logger.Info("transcript already exists, skipping provider call",
				zap.String("meeting_id", meetingID.String()),
			)
		}
		return existing, nil
	}

	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if meeting == nil || meeting.AudioURL == "" {
		return nil, apperrors.ErrAudioMissing(meetingID.String())
	}

	audio, err := s.store.Open(ctx, meeting.AudioURL)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.ErrAudioMissing(meetingID.String())
		}
		return nil, apperrors.ErrStorageFailed("open audio", err)
	}
	defer audio.Close()

	// Spool the audio to a temp file so a flaky stream fails before the
	// provider call instead of mid-upload.
	ext := filepath.Ext(meeting.AudioURL)
	tmpPath := filepath.Join(os.TempDir(), meetingID.String()+ext)
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("create temp file", err)
	}
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, audio); err != nil {
		tmp.Close()
		return nil, apperrors.ErrStorageFailed("buffer audio", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, apperrors.ErrStorageFailed("rewind temp file", err)
	}

	mimeType := storage.ContentTypeFor(meeting.AudioURL)

	fileURI, err := s.provider.UploadFile(ctx, tmp, mimeType)
	tmp.Close()
	if err != nil {
		return nil, apperrors.ErrAITranscriptionFailed(fmt.Errorf("upload to provider: %w", err))
	}

	if s.logger != nil {
		s.logger.Info("audio uploaded to provider",
			zap.String("meeting_id", meetingID.String()),
			zap.String("file_uri", fileURI),
			zap.String("mime_type", mimeType),
		)
	}

	text, err := s.provider.GenerateContentFromFile(ctx, fileURI, mimeType, transcriptionPrompt)
	if err != nil {
		return nil, apperrors.ErrAITranscriptionFailed(err)
	}

	transcript := entities.NewTranscript(meetingID, text)
	stored, inserted, err := s.transcriptRepo.CreateIfAbsent(ctx, transcript)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if !inserted {
		// Another call finished first; its transcript wins.
		if s.logger != nil {
			s.logger.Info("concurrent transcription detected, keeping stored transcript",
				zap.String("meeting_id", meetingID.String()),
			)
		}
		return stored, nil
	}

	if err := s.meetingRepo.UpdateStatus(ctx, meetingID, entities.MeetingStatusTranscribed); err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to update meeting status",
				zap.String("meeting_id", meetingID.String()),
				zap.Error(err),
			)
		}
	}

	if s.logger != nil {
		s.logger.Info("transcript stored",
			zap.String("meeting_id", meetingID.String()),
			zap.String("transcript_id", stored.ID.String()),
			zap.Int("text_length", len(stored.RawText)),
		)
	}

	return stored, nil
}

// GenerateSummary asks the provider for a structured analysis of the stored
// transcript and persists the summary plus extracted action items.
func (s *aiService) GenerateSummary(ctx context.Context, meetingID uuid.UUID) (*SummaryResult, error) {
	transcript, err := s.transcriptRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if transcript == nil {
		return nil, apperrors.ErrNoTranscript(meetingID.String())
	}

	prompt := fmt.Sprintf(summaryPromptTemplate, transcript.RawText)
	raw, err := s.provider.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, apperrors.ErrAISummaryFailed(err)
	}

	payload, err := s.parser.ParseSummaryResponse(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to parse provider response",
				zap.String("meeting_id", meetingID.String()),
				zap.Error(err),
			)
		}
		return nil, apperrors.ErrAIResponseInvalid(err)
	}

	summary := entities.NewSummary(meetingID, payload.Summary, payload.Decisions)
	stored, inserted, err := s.summaryRepo.CreateIfAbsent(ctx, summary)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	items := make([]*entities.ActionItem, 0, len(payload.ActionItems))
	for _, it := range payload.ActionItems {
		if it.Description == "" {
			continue
		}
		items = append(items, entities.NewActionItem(meetingID, it.Description, it.Owner, it.Deadline))
	}
	if len(items) > 0 {
		// Action items are append-only; a re-run adds its extraction
		// alongside earlier ones.
		if err := s.actionItemRepo.CreateBatch(ctx, items); err != nil {
			return nil, apperrors.ErrDBQueryFailed(err)
		}
	}

	if s.logger != nil {
		s.logger.Info("summary generated",
			zap.String("meeting_id", meetingID.String()),
			zap.String("summary_id", stored.ID.String()),
			zap.Bool("fresh_summary", inserted),
			zap.Int("decision_count", len(payload.Decisions)),
			zap.Int("action_item_count", len(items)),
		)
	}

	return &SummaryResult{Summary: stored, ActionItems: items}, nil
}
