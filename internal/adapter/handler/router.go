package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/automeet-app/automeet/internal/infrastructure/http/middleware"
	"github.com/automeet-app/automeet/pkg/config"
	"github.com/automeet-app/automeet/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	jwtManager     *jwt.Manager
	authHandler    *Auth
	meetingHandler *Meeting
	aiHandler      *AI
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, jwtManager *jwt.Manager, authHandler *Auth, meetingHandler *Meeting, aiHandler *AI) *Router {
	return &Router{
		cfg:            cfg,
		jwtManager:     jwtManager,
		authHandler:    authHandler,
		meetingHandler: meetingHandler,
		aiHandler:      aiHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Locally stored audio is served directly
	if rt.cfg.Storage.Type == "local" {
		e.Static("/uploads", rt.cfg.Storage.LocalDir)
	}

	rt.setupAuthRoutes(e)
	rt.setupMeetingRoutes(e)
	rt.setupAIRoutes(e)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.GET("/me", rt.authHandler.Me, middleware.EchoAuth(rt.jwtManager))
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(e *echo.Echo) {
	meetingGroup := e.Group("/meetings")

	meetingGroup.POST("/upload-audio", rt.meetingHandler.UploadAudio)
	meetingGroup.GET("/:id", rt.meetingHandler.Get)
}

// setupAIRoutes configures the transcription and summarization routes
func (rt *Router) setupAIRoutes(e *echo.Echo) {
	aiGroup := e.Group("/ai")

	aiGroup.POST("/:id/transcribe", rt.aiHandler.Transcribe)
	aiGroup.POST("/:id/generate-summary", rt.aiHandler.GenerateSummary)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
