package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/automeet-app/automeet/errors"
	"github.com/automeet-app/automeet/internal/domain/entities"
	"github.com/automeet-app/automeet/internal/usecase/auth"
	"github.com/automeet-app/automeet/pkg/validator"
)

// stubAuthService returns canned results for handler tests
type stubAuthService struct {
	registerResult *auth.AuthResult
	registerErr    error
	loginResult    *auth.AuthResult
	loginErr       error
	user           *entities.User
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*auth.AuthResult, error) {
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*auth.AuthResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) GetUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	if s.user == nil {
		return nil, apperrors.ErrNotFound("User")
	}
	return s.user, nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	return e
}

func TestRegister_ReturnsTokenAndUser(t *testing.T) {
	user := entities.NewUser("Alice", "alice@example.com", "hash")
	svc := &stubAuthService{
		registerResult: &auth.AuthResult{Token: "tok-123", User: user},
	}
	h := NewAuth(svc, nil)

	e := newEcho()
	body := `{"name":"Alice","email":"alice@example.com","password":"hunter22x"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Data.Token != "tok-123" {
		t.Fatalf("unexpected token %q", resp.Data.Token)
	}
	if resp.Data.User.Email != "alice@example.com" {
		t.Fatalf("unexpected email %q", resp.Data.User.Email)
	}
}

func TestRegister_ValidationRejectsShortPassword(t *testing.T) {
	h := NewAuth(&stubAuthService{}, nil)

	e := newEcho()
	body := `{"name":"Alice","email":"alice@example.com","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{registerErr: apperrors.ErrUserAlreadyExists("alice@example.com")}
	h := NewAuth(svc, nil)

	e := newEcho()
	body := `{"name":"Alice","email":"alice@example.com","password":"hunter22x"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User already exists") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: apperrors.ErrInvalidCredentials()}
	h := NewAuth(svc, nil)

	e := newEcho()
	body := `{"email":"alice@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid Credentials") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
