package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment
type Config struct {
	Env     string `env:"ENV" envDefault:"development"`
	Port    string `env:"PORT" envDefault:"8080"`
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash-lite"`

	// Logos go to Google Drive when both are set, otherwise to LogoCacheDir
	GoogleApplicationCredentials string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	LogoDriveFolderID            string `env:"LOGO_DRIVE_FOLDER_ID"`
	LogoCacheDir                 string `env:"LOGO_CACHE_DIR" envDefault:"cache/logos"`

	ChromePath  string   `env:"CHROME_PATH"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

// Load reads .env outside production and parses the environment into a Config
func Load() (*Config, error) {
	if os.Getenv("ENV") != "production" {
		// Overload so .env values win over stale shell variables during development
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("⚠️  .env file not found, using system environment variables: %v", err)
		} else {
			log.Printf("✓ Loaded environment variables from .env")
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if c.DatabaseURL == "" && (c.DBHost == "" || c.DBUser == "" || c.DBName == "") {
		return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 bytes")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be greater than 0")
	}
	return nil
}

// ConnString returns DATABASE_URL or builds a keyword/value string from the DB_* variables
func (c *Config) ConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// ListenAddr returns the address to bind, accepting PORT values with or without a leading colon
func (c *Config) ListenAddr() string {
	return "0.0.0.0:" + strings.TrimPrefix(c.Port, ":")
}

// IsProduction reports whether cookies should be marked Secure
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GoogleOAuthEnabled reports whether the Google sign-in flow is configured
func (c *Config) GoogleOAuthEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

// DriveLogosEnabled reports whether logos should be uploaded to Google Drive
func (c *Config) DriveLogosEnabled() bool {
	return c.GoogleApplicationCredentials != "" && c.LogoDriveFolderID != ""
}
