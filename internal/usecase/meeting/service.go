package meeting

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/automeet-app/automeet/errors"
	"github.com/automeet-app/automeet/internal/domain/entities"
	domainrepo "github.com/automeet-app/automeet/internal/domain/repositories"
	"github.com/automeet-app/automeet/internal/infrastructure/storage"
)

// UploadInput carries one audio upload through the ingestion flow
type UploadInput struct {
	Title      string
	UploadType entities.UploadType
	UserID     *uuid.UUID
	Filename   string
	// ContentType is the mime type declared by the client, when any.
	ContentType string
	File        io.Reader
	Size        int64
}

// Details aggregates everything known about a meeting. Transcript, Summary
// and ActionItems are nil/empty until the corresponding pipeline stage ran.
type Details struct {
	Meeting     *entities.Meeting
	Transcript  *entities.Transcript
	Summary     *entities.Summary
	ActionItems []*entities.ActionItem
}

// Service defines meeting operations
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*entities.Meeting, error)
	Get(ctx context.Context, meetingID uuid.UUID) (*Details, error)
}

type meetingService struct {
	meetingRepo    domainrepo.MeetingRepository
	transcriptRepo domainrepo.TranscriptRepository
	summaryRepo    domainrepo.SummaryRepository
	actionItemRepo domainrepo.ActionItemRepository
	store          storage.Store
	logger         *zap.Logger
}

// NewMeetingService constructs a new meeting service
func NewMeetingService(
	meetingRepo domainrepo.MeetingRepository,
	transcriptRepo domainrepo.TranscriptRepository,
	summaryRepo domainrepo.SummaryRepository,
	actionItemRepo domainrepo.ActionItemRepository,
	store storage.Store,
	logger *zap.Logger,
) Service {
	return &meetingService{
		meetingRepo:    meetingRepo,
		transcriptRepo: transcriptRepo,
		summaryRepo:    summaryRepo,
		actionItemRepo: actionItemRepo,
		store:          store,
		logger:         logger,
	}
}

// Upload stores the audio and creates the meeting record pointing at it
func (s *meetingService) Upload(ctx context.Context, input UploadInput) (*entities.Meeting, error) {
	if input.File == nil {
		return nil, apperrors.ErrNoAudioFile()
	}
	if !storage.IsAllowedAudio(input.Filename) {
		return nil, apperrors.ErrInvalidAudioFormat(filepath.Ext(input.Filename))
	}
	if input.ContentType != "" && !strings.HasPrefix(input.ContentType, "audio/") {
		return nil, apperrors.ErrInvalidAudioFormat(input.ContentType)
	}

	uploadType := input.UploadType
	if uploadType == "" {
		uploadType = entities.UploadTypeUploaded
	}
	if !uploadType.IsValid() {
		return nil, apperrors.ErrInvalidArgument("Invalid upload type: " + string(uploadType))
	}

	meeting := entities.NewMeeting(input.UserID, input.Title, "", uploadType)

	// The stored object is named after the meeting id so the audio can
	// always be traced back to its record.
	ext := strings.ToLower(filepath.Ext(input.Filename))
	objectName := meeting.ID.String() + ext
	contentType := storage.ContentTypeFor(input.Filename)

	audioURL, err := s.store.Save(ctx, objectName, input.File, input.Size, contentType)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("save audio", err)
	}
	meeting.AudioURL = audioURL

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("meeting audio uploaded",
			zap.String("meeting_id", meeting.ID.String()),
			zap.String("audio_url", audioURL),
			zap.String("upload_type", string(uploadType)),
			zap.Int64("size_bytes", input.Size),
		)
	}

	return meeting, nil
}

// Get loads the meeting together with whatever pipeline output exists
func (s *meetingService) Get(ctx context.Context, meetingID uuid.UUID) (*Details, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if meeting == nil {
		return nil, apperrors.ErrMeetingNotFound(meetingID.String())
	}

	transcript, err := s.transcriptRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	summary, err := s.summaryRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	items, err := s.actionItemRepo.ListByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	return &Details{
		Meeting:     meeting,
		Transcript:  transcript,
		Summary:     summary,
		ActionItems: items,
	}, nil
}
