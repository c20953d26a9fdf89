package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Gemini API settings
	GeminiAPIKey string  `json:"-"` // Don't expose in JSON
	GeminiModel  string  `json:"gemini_model"`
	Temperature  float64 `json:"temperature"`

	// Plan cache settings
	CacheTTLHours      int    `json:"cache_ttl_hours"`
	CacheSweepSchedule string `json:"cache_sweep_schedule"` // cron expression

	// Archive settings (disabled when bucket is empty)
	ArchiveBucket string `json:"archive_bucket"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists; existing env vars are never overridden
	_ = godotenv.Load()

	config := &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		GeminiAPIKey:       getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		Temperature:        getEnvOrDefaultFloat("MODEL_TEMPERATURE", 0.4),
		CacheTTLHours:      getEnvOrDefaultInt("CACHE_TTL_HOURS", 24),
		CacheSweepSchedule: getEnvOrDefault("CACHE_SWEEP_SCHEDULE", "*/10 * * * *"),
		ArchiveBucket:      getEnvOrDefault("ARCHIVE_BUCKET", ""),
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return &ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key is required"}
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return &ConfigError{Field: "MODEL_TEMPERATURE", Message: "temperature must be between 0 and 2"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvOrDefaultFloat returns environment variable value as float64 or default if not set
func getEnvOrDefaultFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
