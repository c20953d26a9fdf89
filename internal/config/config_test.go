package config

import (
	"errors"
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Set some test environment variables
	os.Setenv("GEMINI_API_KEY", "test-key")
	defer os.Unsetenv("GEMINI_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected GeminiAPIKey to be 'test-key', got '%s'", cfg.GeminiAPIKey)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected Port to be '8080', got '%s'", cfg.Port)
	}

	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("Expected GeminiModel to be 'gemini-2.5-flash', got '%s'", cfg.GeminiModel)
	}

	if cfg.Temperature != 0.4 {
		t.Errorf("Expected Temperature to be 0.4, got %v", cfg.Temperature)
	}

	if cfg.CacheTTLHours != 24 {
		t.Errorf("Expected CacheTTLHours to be 24, got %d", cfg.CacheTTLHours)
	}

	if cfg.CacheSweepSchedule != "*/10 * * * *" {
		t.Errorf("Expected default sweep schedule, got '%s'", cfg.CacheSweepSchedule)
	}

	if cfg.ArchiveBucket != "" {
		t.Errorf("Expected ArchiveBucket to be empty by default, got '%s'", cfg.ArchiveBucket)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	os.Setenv("MODEL_TEMPERATURE", "0.2")
	os.Setenv("CACHE_TTL_HOURS", "6")
	os.Setenv("ARCHIVE_BUCKET", "startup-plan-archive")
	defer func() {
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("GEMINI_MODEL")
		os.Unsetenv("MODEL_TEMPERATURE")
		os.Unsetenv("CACHE_TTL_HOURS")
		os.Unsetenv("ARCHIVE_BUCKET")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GeminiModel != "gemini-2.5-pro" {
		t.Errorf("Expected GeminiModel to be 'gemini-2.5-pro', got '%s'", cfg.GeminiModel)
	}

	if cfg.Temperature != 0.2 {
		t.Errorf("Expected Temperature to be 0.2, got %v", cfg.Temperature)
	}

	if cfg.CacheTTLHours != 6 {
		t.Errorf("Expected CacheTTLHours to be 6, got %d", cfg.CacheTTLHours)
	}

	if cfg.ArchiveBucket != "startup-plan-archive" {
		t.Errorf("Expected ArchiveBucket to be 'startup-plan-archive', got '%s'", cfg.ArchiveBucket)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func()
		cleanupEnv  func()
		expectError bool
		errorField  string
	}{
		{
			name: "missing GEMINI_API_KEY",
			setupEnv: func() {
				os.Unsetenv("GEMINI_API_KEY")
			},
			cleanupEnv:  func() {},
			expectError: true,
			errorField:  "GEMINI_API_KEY",
		},
		{
			name: "temperature out of range",
			setupEnv: func() {
				os.Setenv("GEMINI_API_KEY", "test-key")
				os.Setenv("MODEL_TEMPERATURE", "3.5")
			},
			cleanupEnv: func() {
				os.Unsetenv("GEMINI_API_KEY")
				os.Unsetenv("MODEL_TEMPERATURE")
			},
			expectError: true,
			errorField:  "MODEL_TEMPERATURE",
		},
		{
			name: "valid config",
			setupEnv: func() {
				os.Setenv("GEMINI_API_KEY", "test-key")
			},
			cleanupEnv: func() {
				os.Unsetenv("GEMINI_API_KEY")
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			defer tt.cleanupEnv()

			cfg, err := Load()

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("Expected ConfigError, got %T", err)
				}
				if cfgErr.Field != tt.errorField {
					t.Errorf("Expected error field '%s', got '%s'", tt.errorField, cfgErr.Field)
				}
			} else {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				if cfg == nil {
					t.Fatal("Expected config, got nil")
				}
			}
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key is required"}
	expected := "GEMINI_API_KEY: Gemini API key is required"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
}
