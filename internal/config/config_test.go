package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnkit/internal/topic"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Empty(t, cfg.TopicPath)
	assert.False(t, cfg.Dark)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvTopic, " /tmp/topic.yaml ")
	t.Setenv(EnvDark, "true")
	t.Setenv(EnvLog, "/tmp/learnkit.log")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/topic.yaml", cfg.TopicPath)
	assert.True(t, cfg.Dark)
	assert.Equal(t, "/tmp/learnkit.log", cfg.LogFile)
	assert.Equal(t, time.Second, cfg.TickInterval)
}

func TestFromEnv_BadDark(t *testing.T) {
	t.Setenv(EnvDark, "sometimes")
	_, err := FromEnv()
	assert.ErrorContains(t, err, EnvDark)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickInterval = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MinutesOverride = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_MinutesCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinutesOverride = topic.MaxMinutes
	assert.NoError(t, cfg.Validate())

	cfg.MinutesOverride = topic.MaxMinutes + 1
	assert.ErrorContains(t, cfg.Validate(), "1440")
}
