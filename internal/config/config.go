// Package config holds runtime settings for learnkit.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/learnkit/internal/topic"
)

// Environment variables read by FromEnv.
const (
	EnvTopic = "LEARNKIT_TOPIC"
	EnvDark  = "LEARNKIT_DARK"
	EnvLog   = "LEARNKIT_LOG"
)

// Config holds all runtime settings.
type Config struct {
	// TopicPath is a YAML or JSON topic file. Empty means the built-in topic.
	TopicPath string

	// MinutesOverride replaces the topic's estimatedMinutes when positive.
	MinutesOverride int

	// Dark starts the UI in dark mode.
	Dark bool

	// LogFile receives structured logs. Empty disables logging.
	LogFile string

	// TickInterval is the nominal period between timer ticks. Default: 1s.
	TickInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TickInterval: time.Second,
	}
}

// FromEnv returns DefaultConfig overlaid with LEARNKIT_* variables.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv(EnvTopic)); v != "" {
		cfg.TopicPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDark)); v != "" {
		dark, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvDark, err)
		}
		cfg.Dark = dark
	}
	if v := strings.TrimSpace(os.Getenv(EnvLog)); v != "" {
		cfg.LogFile = v
	}

	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.MinutesOverride < 0 || c.MinutesOverride > topic.MaxMinutes {
		return fmt.Errorf("minutes must be between 0 and %d, got %d", topic.MaxMinutes, c.MinutesOverride)
	}
	return nil
}
