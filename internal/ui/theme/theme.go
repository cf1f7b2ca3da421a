package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one colour scheme. The UI switches between Dark and Light at
// runtime, so styles are built from a Palette instead of package globals.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the night palette.
var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#8B5CF6"), // Vivid Purple
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	Bg:        lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// Light is the day palette.
var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#6D28D9"), // Deep Purple
	Secondary: lipgloss.Color("#0F766E"), // Dark Teal
	Accent:    lipgloss.Color("#C2410C"), // Burnt Orange
	Success:   lipgloss.Color("#15803D"), // Green
	Error:     lipgloss.Color("#BE123C"), // Rose
	Text:      lipgloss.Color("#0F172A"), // Navy
	TextDim:   lipgloss.Color("#64748B"), // Slate
	Bg:        lipgloss.Color("#F8FAFC"), // Off White
	BgCard:    lipgloss.Color("#E2E8F0"), // Light Slate
	Border:    lipgloss.Color("#CBD5E1"), // Silver
}

// For returns Dark when dark is set, Light otherwise.
func For(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}

// Typography

func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
}

func (p Palette) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextDim)
}

func (p Palette) Body() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text)
}

func (p Palette) Hint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextDim).
		Italic(true)
}

// Layout

func (p Palette) Bar() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border)
}

func (p Palette) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
}

// CardFlipped is the card style while its back face is showing.
func (p Palette) CardFlipped() lipgloss.Style {
	return p.Card().
		BorderForeground(p.Secondary)
}

// States

func (p Palette) TabActive() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Underline(true).
		Padding(0, 2)
}

func (p Palette) TabInactive() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextDim).
		Padding(0, 2)
}

// Components

func (p Palette) ProgressFilled() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.Secondary)
}

func (p Palette) ProgressEmpty() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.Border)
}

func (p Palette) ButtonEnabled() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(lipgloss.Color("#F8FAFC")).
		Bold(true).
		Padding(0, 1)
}

func (p Palette) ButtonDisabled() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextDim).
		Strikethrough(true).
		Padding(0, 1)
}

func (p Palette) Clock() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)
}

func (p Palette) ClockRunning() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Success)
}
