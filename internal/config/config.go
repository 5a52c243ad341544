package config

import (
	"strconv"
	"strings"

	"os"

	"pdfmeta/internal/logger"
)

type Config struct {
	// Google Cloud Configuration
	GoogleCloudProject      string
	GoogleServiceAccountKey string

	// OCR Configuration
	OCRLanguageHints []string
	OCRZoomFactor    float64

	// NER Configuration
	NEREnglishEnabled    bool
	NERIndonesianEnabled bool

	// Language identification Configuration
	LangIDEnabled bool

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads configuration from the environment. Model capabilities are
// optional: a missing credential disables the capability instead of failing.
func Load() (*Config, error) {
	config := &Config{
		GoogleCloudProject:      getEnv("GOOGLE_CLOUD_PROJECT", ""),
		GoogleServiceAccountKey: getEnv("GOOGLE_SERVICE_ACCOUNT_KEY", ""),
		OCRLanguageHints:        splitList(getEnv("OCR_LANGUAGE_HINTS", "en,id")),
		OCRZoomFactor:           getEnvFloat("OCR_ZOOM_FACTOR", 2.0),
		NEREnglishEnabled:       getEnvBool("NER_ENGLISH_ENABLED", true),
		NERIndonesianEnabled:    getEnvBool("NER_INDONESIAN_ENABLED", true),
		LangIDEnabled:           getEnvBool("LANG_ID_ENABLED", true),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:           getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:               getEnv("LOG_OUTPUT", "stdout"),
	}

	return config, nil
}

// HasGoogleCredentials reports whether any Google Cloud credential source is
// configured. The model capabilities (OCR, language ID, NER) are only
// constructed when this is true; otherwise extraction degrades to heuristics.
func (c *Config) HasGoogleCredentials() bool {
	return os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("GOOGLE_CREDENTIALS") != "" ||
		c.GoogleServiceAccountKey != ""
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
