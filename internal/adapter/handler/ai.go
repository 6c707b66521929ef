package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/automeet-app/automeet/errors"
	meetingdto "github.com/automeet-app/automeet/internal/adapter/dto/meeting"
	"github.com/automeet-app/automeet/internal/usecase/ai"
)

// AI handles the transcription and summarization HTTP requests
type AI struct {
	aiService ai.Service
	logger    *zap.Logger
}

// NewAI creates a new AI handler
func NewAI(aiService ai.Service, logger *zap.Logger) *AI {
	return &AI{
		aiService: aiService,
		logger:    logger,
	}
}

// Transcribe runs transcription for a meeting's audio
// POST /ai/:id/transcribe
func (h *AI) Transcribe(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	transcript, err := h.aiService.Transcribe(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingdto.NewTranscriptResponse(transcript))
}

// GenerateSummary runs summarization over a meeting's transcript
// POST /ai/:id/generate-summary
func (h *AI) GenerateSummary(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	result, err := h.aiService.GenerateSummary(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingdto.SummaryResultResponse{
		Summary:     meetingdto.NewSummaryResponse(result.Summary),
		ActionItems: meetingdto.NewActionItemResponses(result.ActionItems),
	})
}
