package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnkit/internal/pomodoro"
	"github.com/abhisek/learnkit/internal/topic"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Inspect and validate topic files",
}

var topicShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a topic (the built-in one unless --topic is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		t, err := topic.Resolve(cfg.TopicPath)
		if err != nil {
			return err
		}
		printTopic(cmd.OutOrStdout(), t)
		return nil
	},
}

var topicValidateCmd = &cobra.Command{
	Use:   "validate PATH",
	Short: "Check a topic file against the topic schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := topic.Load(args[0])
		if err != nil {
			printValidationErrors(cmd.ErrOrStderr(), err)
			return fmt.Errorf("%s is not a valid topic", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %d questions)\n", args[0], t.ID, len(t.Questions))
		return nil
	},
}

func init() {
	topicCmd.AddCommand(topicShowCmd)
	topicCmd.AddCommand(topicValidateCmd)
}

func printTopic(w io.Writer, t topic.Topic) {
	fmt.Fprintf(w, "%s (%s)\n", t.Title, t.ID)
	fmt.Fprintf(w, "Pomodoro: %s\n", pomodoro.FormatTime(t.DurationSeconds()))

	if len(t.LearningContent.KeyPoints) > 0 {
		fmt.Fprintln(w, "\nKey points:")
		for _, kp := range t.LearningContent.KeyPoints {
			fmt.Fprintf(w, "  • %s\n", kp)
		}
	}

	fmt.Fprintf(w, "\n%-6s  %-50s  %s\n", "ID", "Question", "Lang")
	fmt.Fprintln(w, strings.Repeat("─", 66))
	for _, q := range t.Questions {
		text := []rune(q.Question)
		if len(text) > 50 {
			text = append(text[:47], []rune("...")...)
		}
		lang := q.AnswerLanguage
		if lang == "" {
			lang = "-"
		}
		fmt.Fprintf(w, "%-6s  %-50s  %s\n", q.ID, string(text), lang)
	}
	fmt.Fprintf(w, "\n%d questions\n", len(t.Questions))
}

// printValidationErrors writes one line per joined error.
func printValidationErrors(w io.Writer, err error) {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			fmt.Fprintf(w, "  - %v\n", e)
		}
		return
	}
	fmt.Fprintf(w, "  - %v\n", err)
}
