// config.go - Configuration management for the proving service
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the service configuration
type Config struct {
	// Server settings
	ListenPort   int `json:"listen_port"`
	MaxBatchSize int `json:"max_batch_size"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Security
	EnableAudit  bool   `json:"enable_audit"`
	AuditLogPath string `json:"audit_log_path"`

	// Rate limiting
	RateLimitTokens        int `json:"rate_limit_tokens"`
	RateLimitRefill        int `json:"rate_limit_refill"`
	RateLimitPeriodSeconds int `json:"rate_limit_period_seconds"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ListenPort:             8460,
		MaxBatchSize:           64,
		LogLevel:               "info",
		LogFile:                "mintd.log",
		EnableAudit:            true,
		AuditLogPath:           "audit.log",
		RateLimitTokens:        20,
		RateLimitRefill:        5,
		RateLimitPeriodSeconds: 1,
	}
}

// LoadConfig loads configuration from file or creates default
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer file.Close()

		var config Config
		if err := json.NewDecoder(file).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
		return &config, nil
	}

	// Create default config and save it
	config := DefaultConfig()
	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}
	return config, nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ListenPort <= 0 || c.ListenPort > 65535 {
		return fmt.Errorf("listen_port must be in (0, 65535]")
	}
	if c.MaxBatchSize <= 1 {
		return fmt.Errorf("max_batch_size must allow at least 2 notes")
	}
	if c.RateLimitTokens <= 0 {
		return fmt.Errorf("rate_limit_tokens must be positive")
	}
	if c.RateLimitRefill <= 0 {
		return fmt.Errorf("rate_limit_refill must be positive")
	}
	if c.RateLimitPeriodSeconds <= 0 {
		return fmt.Errorf("rate_limit_period_seconds must be positive")
	}
	return nil
}
