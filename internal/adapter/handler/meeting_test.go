package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/automeet-app/automeet/errors"
	"github.com/automeet-app/automeet/internal/domain/entities"
	"github.com/automeet-app/automeet/internal/usecase/meeting"
)

// stubMeetingService returns canned results for handler tests
type stubMeetingService struct {
	uploadResult *entities.Meeting
	uploadErr    error
	lastInput    meeting.UploadInput
	details      *meeting.Details
	getErr       error
}

func (s *stubMeetingService) Upload(ctx context.Context, input meeting.UploadInput) (*entities.Meeting, error) {
	s.lastInput = input
	return s.uploadResult, s.uploadErr
}

func (s *stubMeetingService) Get(ctx context.Context, meetingID uuid.UUID) (*meeting.Details, error) {
	return s.details, s.getErr
}

func multipartUpload(t *testing.T, fieldName, filename string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	fw, err := w.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("fake-audio"))
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestUploadAudio_Success(t *testing.T) {
	created := entities.NewMeeting(nil, "Kickoff", "/uploads/x.mp3", entities.UploadTypeUploaded)
	svc := &stubMeetingService{uploadResult: created}
	h := NewMeeting(svc, nil)

	e := newEcho()
	body, contentType := multipartUpload(t, "audio", "kickoff.mp3", map[string]string{"title": "Kickoff"})
	req := httptest.NewRequest(http.MethodPost, "/meetings/upload-audio", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := h.UploadAudio(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.Filename != "kickoff.mp3" || svc.lastInput.Title != "Kickoff" {
		t.Fatalf("unexpected input %+v", svc.lastInput)
	}
}

func TestUploadAudio_PassesOwnerID(t *testing.T) {
	ownerID := uuid.New()
	created := entities.NewMeeting(&ownerID, "1:1", "/uploads/x.mp3", entities.UploadTypeRecorded)
	svc := &stubMeetingService{uploadResult: created}
	h := NewMeeting(svc, nil)

	e := newEcho()
	body, contentType := multipartUpload(t, "audio", "one-on-one.mp3", map[string]string{
		"title":   "1:1",
		"user_id": ownerID.String(),
	})
	req := httptest.NewRequest(http.MethodPost, "/meetings/upload-audio", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := h.UploadAudio(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.UserID == nil || *svc.lastInput.UserID != ownerID {
		t.Fatalf("owner id not passed through, got %v want %s", svc.lastInput.UserID, ownerID)
	}
}

func TestUploadAudio_InvalidOwnerID(t *testing.T) {
	svc := &stubMeetingService{}
	h := NewMeeting(svc, nil)

	e := newEcho()
	body, contentType := multipartUpload(t, "audio", "a.mp3", map[string]string{"user_id": "not-a-uuid"})
	req := httptest.NewRequest(http.MethodPost, "/meetings/upload-audio", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := h.UploadAudio(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if svc.lastInput.Filename != "" {
		t.Fatal("service must not be called for a malformed owner id")
	}
}

func TestUploadAudio_NoFile(t *testing.T) {
	h := NewMeeting(&stubMeetingService{}, nil)

	e := newEcho()
	// Multipart body without the audio field
	body, contentType := multipartUpload(t, "attachment", "notes.mp3", nil)
	req := httptest.NewRequest(http.MethodPost, "/meetings/upload-audio", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := h.UploadAudio(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("No audio file uploaded")) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestGetMeeting_InvalidID(t *testing.T) {
	h := NewMeeting(&stubMeetingService{}, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/meetings/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGetMeeting_NotFound(t *testing.T) {
	id := uuid.New()
	svc := &stubMeetingService{getErr: apperrors.ErrMeetingNotFound(id.String())}
	h := NewMeeting(svc, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/meetings/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestGetMeeting_NullSectionsBeforePipeline(t *testing.T) {
	m := entities.NewMeeting(nil, "Fresh", "/uploads/x.mp3", entities.UploadTypeUploaded)
	svc := &stubMeetingService{details: &meeting.Details{Meeting: m}}
	h := NewMeeting(svc, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/meetings/"+m.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var resp struct {
		Data struct {
			Transcript  json.RawMessage `json:"transcript"`
			Summary     json.RawMessage `json:"summary"`
			ActionItems json.RawMessage `json:"action_items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(resp.Data.Transcript) != "null" || string(resp.Data.Summary) != "null" {
		t.Fatalf("expected null transcript/summary, got %s / %s", resp.Data.Transcript, resp.Data.Summary)
	}
	if string(resp.Data.ActionItems) != "[]" {
		t.Fatalf("expected empty action_items array, got %s", resp.Data.ActionItems)
	}
}
