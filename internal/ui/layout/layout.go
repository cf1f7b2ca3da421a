package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnkit/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	// CompactWidthThreshold stacks the lesson and timer panes vertically.
	CompactWidthThreshold = 100
)

// AppName is shown on the left of the header.
const AppName = "Learning Tools Kit"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HintsFor converts enabled key bindings to footer hints.
func HintsFor(bindings ...key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		hints = append(hints, KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(p theme.Palette, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(p.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the header bar: app name, topic title and the
// theme toggle label.
func RenderHeader(p theme.Palette, title, themeLabel string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Render("  " + AppName)

	center := lipgloss.NewStyle().
		Foreground(p.Text).
		Render(title)

	right := lipgloss.NewStyle().
		Foreground(p.Accent).
		Render(themeLabel)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // border + padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return p.Bar().Width(width).Render(content)
}

// Tab is one entry in the tab bar.
type Tab struct {
	Key    string
	Label  string
	Active bool
}

// RenderTabs renders the tab bar.
func RenderTabs(p theme.Palette, tabs []Tab, width int) string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := fmt.Sprintf("%s %s", t.Key, t.Label)
		if t.Active {
			parts = append(parts, p.TabActive().Render("▸ "+label))
		} else {
			parts = append(parts, p.TabInactive().Render("  "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// RenderFooter renders the footer with key hints.
func RenderFooter(p theme.Palette, hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(p.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(p.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")
	return p.Bar().Width(width).Render(content)
}

// RenderFrame composes the full frame: header + tabs + content + footer.
func RenderFrame(header, tabs, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(tabs) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, styledContent, footer)
}
