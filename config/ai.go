package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultModels is the model priority order used when AI_MODELS is unset
var DefaultModels = []string{
	"gemini-3-flash-preview",
	"gemini-2.0-flash",
	"gemini-flash-latest",
	"gemini-2.5-flash",
}

// AIConfig holds the Gemini credentials and the retry policy of the resilience layer
type AIConfig struct {
	APIKeys      []string
	Models       []string
	MaxRetries   int
	RetryBackoff time.Duration
	Timeout      time.Duration
	BaseURL      string
	ConfigFile   string
}

// resilienceFile is the YAML document referenced by AI_CONFIG_FILE.
// Pointer fields distinguish "unset" from zero values.
type resilienceFile struct {
	Models       []string `yaml:"models"`
	MaxRetries   *int     `yaml:"max_retries"`
	RetryBackoff *string  `yaml:"retry_backoff"`
	Timeout      *string  `yaml:"timeout"`
}

func loadAIConfig() (AIConfig, error) {
	cfg := AIConfig{
		APIKeys:      getEnvAsList("GEMINI_API_KEY", nil),
		Models:       getEnvAsList("AI_MODELS", DefaultModels),
		MaxRetries:   getEnvAsInt("AI_MAX_RETRIES", 1),
		RetryBackoff: getEnvAsDuration("AI_RETRY_BACKOFF", time.Second),
		Timeout:      getEnvAsDuration("AI_TIMEOUT", 60*time.Second),
		BaseURL:      getEnv("AI_BASE_URL", ""),
		ConfigFile:   getEnv("AI_CONFIG_FILE", ""),
	}

	if cfg.ConfigFile != "" {
		if err := cfg.applyFile(cfg.ConfigFile); err != nil {
			return AIConfig{}, err
		}
	}

	return cfg, nil
}

// applyFile overrides the keys set in a YAML resilience policy file
func (c *AIConfig) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read AI config file %s: %w", path, err)
	}

	var file resilienceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse AI config file %s: %w", path, err)
	}

	if len(file.Models) > 0 {
		c.Models = file.Models
	}
	if file.MaxRetries != nil {
		c.MaxRetries = *file.MaxRetries
	}
	if file.RetryBackoff != nil {
		d, err := time.ParseDuration(*file.RetryBackoff)
		if err != nil {
			return fmt.Errorf("parse retry_backoff in %s: %w", path, err)
		}
		c.RetryBackoff = d
	}
	if file.Timeout != nil {
		d, err := time.ParseDuration(*file.Timeout)
		if err != nil {
			return fmt.Errorf("parse timeout in %s: %w", path, err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks the retry policy bounds
func (c *AIConfig) Validate() error {
	if len(c.Models) == 0 {
		return errors.New("at least one AI model is required")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("AI max retries must be >= 0, got %d", c.MaxRetries)
	}
	if c.RetryBackoff < 0 {
		return fmt.Errorf("AI retry backoff must be >= 0, got %s", c.RetryBackoff)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("AI timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// HasCredentials reports whether any Gemini API key is configured
func (c *AIConfig) HasCredentials() bool {
	return len(c.APIKeys) > 0
}
