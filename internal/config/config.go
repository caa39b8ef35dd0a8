// Package config provides configuration management for the corpus builder.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidErrorMode = errors.New("input.error_mode must be 'strict' or 'ignore'")
	ErrInvalidMinLength = errors.New("sentences.min_length must be at least 1")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete corpus builder configuration.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Sentences SentencesConfig `yaml:"sentences"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// InputConfig controls how source documents are read.
type InputConfig struct {
	// Path is a document file, or a directory when Loop is set.
	Path string `yaml:"path"`
	// Loop processes every file in the Path directory, one at a time.
	Loop bool `yaml:"loop"`
	// ErrorMode is the decode policy for ill-formed input bytes:
	// "strict" aborts the document, "ignore" drops the bytes.
	ErrorMode string `yaml:"error_mode"`
}

// SentencesConfig controls the sentence admission filter.
type SentencesConfig struct {
	// MinLength is the shortest sentence admitted to the corpus.
	MinLength int `yaml:"min_length"`
}

// OutputConfig controls the corpus artifact.
type OutputConfig struct {
	// Path is the corpus file, opened in append mode per document.
	Path string `yaml:"path"`
	// DryRun processes documents without appending anything.
	DryRun bool `yaml:"dry_run"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level"`
	ShowProgress bool   `yaml:"show_progress"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			ErrorMode: "strict",
		},
		Sentences: SentencesConfig{
			MinLength: 20,
		},
		Logging: LoggingConfig{
			Level:        "info",
			ShowProgress: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields absent from
// the file keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.ErrorMode != "strict" && c.Input.ErrorMode != "ignore" {
		return fmt.Errorf("%w: got %q", ErrInvalidErrorMode, c.Input.ErrorMode)
	}

	if c.Sentences.MinLength < 1 {
		return ErrInvalidMinLength
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	return nil
}

// String returns a short representation of the config for logging.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Loop: %t, ErrorMode: %s, MinLength: %d, Output: %s}",
		c.Input.Path,
		c.Input.Loop,
		c.Input.ErrorMode,
		c.Sentences.MinLength,
		c.Output.Path,
	)
}
