package help

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/learnkit/internal/router"
	"github.com/abhisek/learnkit/internal/study"
	"github.com/abhisek/learnkit/internal/topic"
	"github.com/abhisek/learnkit/internal/ui/keys"
)

func newTestScreen() *HelpScreen {
	return New(study.New(topic.Default(), true), keys.Default())
}

func TestEscPops(t *testing.T) {
	h := newTestScreen()

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestQuestionMarkPops(t *testing.T) {
	h := newTestScreen()

	_, cmd := h.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	if cmd == nil {
		t.Fatal("expected a command on ?")
	}
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestOtherKeysIgnored(t *testing.T) {
	h := newTestScreen()

	_, cmd := h.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.Nil(t, cmd)
}

func TestViewListsBindings(t *testing.T) {
	h := newTestScreen()

	view := ansi.Strip(h.View(100, 40))
	for _, section := range []string{"General", "Pomodoro", "Flashcards"} {
		assert.Contains(t, view, section)
	}
	for _, desc := range []string{"switch tab", "theme", "start", "stop", "reset", "flip", "previous", "next", "quit"} {
		assert.Contains(t, view, desc)
	}
}
