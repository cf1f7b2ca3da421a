package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/learnkit/internal/ui/theme"
)

// Button renders a key binding as a labelled control. A disabled binding
// renders as a struck-through, dimmed button.
type Button struct {
	Label   string
	Binding key.Binding
}

// NewButton creates a new button.
func NewButton(label string, binding key.Binding) Button {
	return Button{
		Label:   label,
		Binding: binding,
	}
}

// View renders the button.
func (b Button) View(p theme.Palette) string {
	label := "[" + b.Binding.Help().Key + "] " + b.Label
	if b.Binding.Enabled() {
		return p.ButtonEnabled().Render(label)
	}
	return p.ButtonDisabled().Render(label)
}
