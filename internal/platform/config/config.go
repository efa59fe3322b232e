// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const defaultCoachURL = "https://robertcoach.app.n8n.cloud/webhook"

type Config struct {
	// HomeDir holds the durable session state and exported reports.
	HomeDir     string
	DBPath      string
	ReportDir   string
	CoachURL    string
	HTTPTimeout time.Duration
}

// Load resolves configuration from an optional .env file and AIRC_*
// environment variables. An explicit homeDir argument wins over the
// environment; an empty homeDir falls back to ~/.airc.
func Load(homeDir string) (Config, error) {
	_ = godotenv.Load()

	if homeDir == "" {
		homeDir = os.Getenv("AIRC_HOME")
	}
	if homeDir == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		homeDir = filepath.Join(userHome, ".airc")
	}

	timeout := 30 * time.Second
	if raw := os.Getenv("AIRC_HTTP_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid AIRC_HTTP_TIMEOUT %q: %w", raw, err)
		}
		timeout = parsed
	}

	return Config{
		HomeDir:     homeDir,
		DBPath:      filepath.Join(homeDir, "state.db"),
		ReportDir:   filepath.Join(homeDir, "reports"),
		CoachURL:    getEnv("AIRC_COACH_URL", defaultCoachURL),
		HTTPTimeout: timeout,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
