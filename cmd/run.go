package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learnkit/internal/app"
	"github.com/abhisek/learnkit/internal/logging"
	"github.com/abhisek/learnkit/internal/topic"
)

// runApp resolves configuration, loads the topic, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	t, err := topic.Resolve(cfg.TopicPath)
	if err != nil {
		logger.Error("load topic", zap.String("path", cfg.TopicPath), zap.Error(err))
		return fmt.Errorf("load topic: %w", err)
	}
	t = t.WithMinutes(cfg.MinutesOverride)
	logger.Info("topic loaded",
		zap.String("topic", t.ID),
		zap.String("path", cfg.TopicPath),
		zap.Int("questions", len(t.Questions)),
	)

	return app.Run(app.Options{
		Topic:        t,
		Dark:         cfg.Dark,
		TickInterval: cfg.TickInterval,
		Logger:       logger,
	})
}
