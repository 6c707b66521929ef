package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Gemini   GeminiConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"automeet"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" default:"your-secret-change-in-production"`
	Expiry time.Duration `envconfig:"JWT_EXPIRY" default:"120h"`
	Issuer string        `envconfig:"JWT_ISSUER" default:"automeet"`
}

// StorageConfig holds audio storage configuration.
// Type selects where uploaded audio lives: "local" keeps files on disk and
// serves them under /uploads, "minio" streams them into object storage.
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"local"`
	LocalDir        string `envconfig:"STORAGE_LOCAL_DIR" default:"uploads"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"automeet"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicURL       string `envconfig:"STORAGE_PUBLIC_URL" default:""`
	MaxUploadMB     int64  `envconfig:"STORAGE_MAX_UPLOAD_MB" default:"50"`
}

// GeminiConfig holds the generative AI provider configuration
type GeminiConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY" default:""`
	BaseURL string        `envconfig:"GEMINI_API_URL" default:"https://generativelanguage.googleapis.com"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-pro"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"120s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	switch c.Storage.Type {
	case "local", "minio":
	default:
		return fmt.Errorf("STORAGE_TYPE must be \"local\" or \"minio\", got %q", c.Storage.Type)
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
