package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process configuration resolved from the environment.
type Config struct {
	Server     ServerConfig
	RandomUser RandomUserConfig
	Gallery    GalleryConfig
	Logging    LoggingConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port string
}

// RandomUserConfig controls the upstream profile fetch.
type RandomUserConfig struct {
	URL          string
	Results      int
	Nationality  string
	FetchTimeout time.Duration
}

// GalleryConfig controls browsing sessions.
type GalleryConfig struct {
	MaxSessions int
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level     string
	ProjectID string
}

// Load reads a .env file when present and resolves configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		RandomUser: RandomUserConfig{
			URL:          getEnv("RANDOMUSER_URL", "https://randomuser.me/api/"),
			Results:      getEnvInt("RANDOMUSER_RESULTS", 12),
			Nationality:  getEnv("RANDOMUSER_NAT", "us"),
			FetchTimeout: getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		},
		Gallery: GalleryConfig{
			MaxSessions: getEnvInt("MAX_SESSIONS", 1024),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			ProjectID: firstNonEmpty(
				os.Getenv("GOOGLE_CLOUD_PROJECT"),
				os.Getenv("GCP_PROJECT"),
				os.Getenv("GCLOUD_PROJECT"),
				os.Getenv("PROJECT_ID"),
			),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", c.Server.Port)
	}
	u, err := url.Parse(c.RandomUser.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("RANDOMUSER_URL must be an absolute URL: %q", c.RandomUser.URL)
	}
	if c.RandomUser.Results < 1 || c.RandomUser.Results > 12 {
		return fmt.Errorf("RANDOMUSER_RESULTS must be between 1 and 12, got %d", c.RandomUser.Results)
	}
	if c.RandomUser.FetchTimeout <= 0 {
		return errors.New("FETCH_TIMEOUT must be positive")
	}
	if c.Gallery.MaxSessions < 1 {
		return fmt.Errorf("MAX_SESSIONS must be at least 1, got %d", c.Gallery.MaxSessions)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %q", c.Logging.Level)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
