package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/automeet-app/automeet/errors"
	authdto "github.com/automeet-app/automeet/internal/adapter/dto/auth"
	"github.com/automeet-app/automeet/internal/infrastructure/http/middleware"
	"github.com/automeet-app/automeet/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new account
// POST /auth/register
func (h *Auth) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req authdto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.authService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.AuthResponse{
		Token: result.Token,
		User:  authdto.NewUserResponse(result.User),
	})
}

// Login verifies credentials and issues a token
// POST /auth/login
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req authdto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.AuthResponse{
		Token: result.Token,
		User:  authdto.NewUserResponse(result.User),
	})
}

// Me returns the authenticated user's account
// GET /auth/me
func (h *Auth) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := c.Get(middleware.UserIDContextKey).(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	user, err := h.authService.GetUser(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.NewUserResponse(user))
}
