package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/automeet-app/automeet/pkg/validator"

	"github.com/automeet-app/automeet/internal/adapter/handler"
	"github.com/automeet-app/automeet/internal/adapter/repository"
	"github.com/automeet-app/automeet/internal/infrastructure/database"
	"github.com/automeet-app/automeet/internal/infrastructure/storage"
	aiuse "github.com/automeet-app/automeet/internal/usecase/ai"
	"github.com/automeet-app/automeet/internal/usecase/auth"
	meetinguse "github.com/automeet-app/automeet/internal/usecase/meeting"
	pkgai "github.com/automeet-app/automeet/pkg/ai"
	"github.com/automeet-app/automeet/pkg/config"
	"github.com/automeet-app/automeet/pkg/jwt"
)

// @title           AutoMeet API
// @version         1.0
// @description     API for uploading meeting audio and generating transcripts, summaries and action items

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate directly.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize audio storage
	log.Printf("🗄️  Initializing %s storage...", cfg.Storage.Type)
	var store storage.Store
	switch cfg.Storage.Type {
	case "minio":
		store, err = storage.NewMinIOStore(&cfg.Storage)
	default:
		store, err = storage.NewLocalStore(&cfg.Storage)
	}
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)

	// Initialize AI provider and pipeline
	log.Println("🤖 Initializing AI components...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	aiService := aiuse.NewAIService(meetingRepo, transcriptRepo, summaryRepo, actionItemRepo, store, geminiClient, logger)

	// Initialize JWT manager and auth service
	log.Println("🔑 Initializing auth...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authService := auth.NewAuthService(userRepo, jwtManager, logger)

	// Initialize meeting service
	meetingService := meetinguse.NewMeetingService(meetingRepo, transcriptRepo, summaryRepo, actionItemRepo, store, logger)

	// Initialize handlers and routes
	log.Println("🛣️  Setting up routes...")
	authHandler := handler.NewAuth(authService, logger)
	meetingHandler := handler.NewMeeting(meetingService, logger)
	aiHandler := handler.NewAI(aiService, logger)

	router := handler.NewRouter(cfg, jwtManager, authHandler, meetingHandler, aiHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
