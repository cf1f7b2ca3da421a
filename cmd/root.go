package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnkit/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "learnkit",
	Short: "Terminal study aid with a pomodoro timer and flashcards",
	Long:  "learnkit — read a lesson with a pomodoro timer running beside it, then drill its questions as flashcards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("topic", "", "Path to a YAML or JSON topic file (overrides LEARNKIT_TOPIC env var)")
	rootCmd.Flags().Int("minutes", 0, "Pomodoro length in minutes (overrides the topic's estimatedMinutes)")
	rootCmd.Flags().Bool("dark", false, "Start in dark mode (overrides LEARNKIT_DARK env var)")
	rootCmd.Flags().String("log-file", "", "Write JSON logs to this file (overrides LEARNKIT_LOG env var)")

	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the run configuration: flags first, then LEARNKIT_*
// env vars, then defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if p, _ := flags.GetString("topic"); p != "" {
		cfg.TopicPath = p
	}
	if flags.Lookup("minutes") != nil && flags.Changed("minutes") {
		cfg.MinutesOverride, _ = flags.GetInt("minutes")
	}
	if flags.Lookup("dark") != nil && flags.Changed("dark") {
		cfg.Dark, _ = flags.GetBool("dark")
	}
	if p, _ := flags.GetString("log-file"); p != "" {
		cfg.LogFile = p
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
