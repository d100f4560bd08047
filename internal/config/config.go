// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DataDir is the directory where trip data files are stored.
	// Defaults to "./data".
	DataDir string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AssistBaseURL is the base URL of the generative model API.
	// Defaults to the public Gemini endpoint.
	AssistBaseURL string

	// AssistAPIKey authenticates requests to the model API. Required.
	AssistAPIKey string

	// AssistModel selects which model to query. Defaults to "gemini-2.0-flash".
	AssistModel string

	// AssistRPM caps outgoing model requests per minute. Defaults to 10.
	AssistRPM int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		AssistBaseURL: getEnv("ASSIST_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		AssistModel:   getEnv("ASSIST_MODEL", "gemini-2.0-flash"),
		AssistRPM:     getEnvInt("ASSIST_RPM", 10),
	}

	var missing []string

	cfg.AssistAPIKey = os.Getenv("ASSIST_API_KEY")
	if cfg.AssistAPIKey == "" {
		missing = append(missing, "ASSIST_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt is getEnv for integer values. Non-numeric values fall back.
func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
