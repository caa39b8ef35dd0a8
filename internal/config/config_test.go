package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.ErrorMode != "strict" {
		t.Errorf("ErrorMode = %q, want strict", cfg.Input.ErrorMode)
	}

	if cfg.Sentences.MinLength != 20 {
		t.Errorf("MinLength = %d, want 20", cfg.Sentences.MinLength)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig does not validate: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	yaml := `
input:
  path: books/
  loop: true
  error_mode: ignore
sentences:
  min_length: 30
output:
  path: corpus.txt
`
	path := filepath.Join(t.TempDir(), "encorpulator.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Input.Path != "books/" {
		t.Errorf("Input.Path = %q, want books/", cfg.Input.Path)
	}

	if !cfg.Input.Loop {
		t.Error("Input.Loop = false, want true")
	}

	if cfg.Input.ErrorMode != "ignore" {
		t.Errorf("ErrorMode = %q, want ignore", cfg.Input.ErrorMode)
	}

	if cfg.Sentences.MinLength != 30 {
		t.Errorf("MinLength = %d, want 30", cfg.Sentences.MinLength)
	}

	// Unset fields keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("input: ["), 0644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "bad error mode",
			mutate:  func(c *Config) { c.Input.ErrorMode = "replace" },
			wantErr: ErrInvalidErrorMode,
		},
		{
			name:    "zero min length",
			mutate:  func(c *Config) { c.Sentences.MinLength = 0 },
			wantErr: ErrInvalidMinLength,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
