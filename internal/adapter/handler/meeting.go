package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/automeet-app/automeet/errors"
	meetingdto "github.com/automeet-app/automeet/internal/adapter/dto/meeting"
	"github.com/automeet-app/automeet/internal/domain/entities"
	"github.com/automeet-app/automeet/internal/usecase/meeting"
)

// Meeting handles meeting HTTP requests
type Meeting struct {
	meetingService meeting.Service
	logger         *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// UploadAudio accepts a multipart audio upload and creates the meeting record
// POST /meetings/upload-audio
func (h *Meeting) UploadAudio(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrNoAudioFile())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("read upload", err))
	}
	defer file.Close()

	var userID *uuid.UUID
	if raw := c.FormValue("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid user ID"))
		}
		userID = &parsed
	}

	input := meeting.UploadInput{
		Title:       c.FormValue("title"),
		UploadType:  entities.UploadType(c.FormValue("upload_type")),
		UserID:      userID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		File:        file,
		Size:        fileHeader.Size,
	}

	created, err := h.meetingService.Upload(ctx, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingdto.NewMeetingResponse(created))
}

// Get returns a meeting with its transcript, summary and action items
// GET /meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	details, err := h.meetingService.Get(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingdto.NewDetailsResponse(details))
}
