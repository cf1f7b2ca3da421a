// Package markdown renders lesson markdown for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// CodeTheme is the chroma style used for fenced code blocks in both light
// and dark mode.
const CodeTheme = "onedark"

// codeIndent lines code blocks up with glamour's paragraph margin.
const codeIndent = "    "

// DefaultWidth is the word-wrap width used before the first resize.
const DefaultWidth = 80

// engine is the markdown backend. It is an interface so tests can make
// rendering fail.
type engine interface {
	Render(in string) (string, error)
}

// Renderer turns markdown into styled terminal text. Output depends only on
// the input, the wrap width and the light/dark flag.
type Renderer struct {
	mu    sync.Mutex
	width int
	dark  bool
	eng   engine
	cache map[string]string

	newEngine func(width int, dark bool) (engine, error)
}

// NewRenderer creates a Renderer wrapping at width columns.
func NewRenderer(width int, dark bool) *Renderer {
	r := &Renderer{
		newEngine: newGlamourEngine,
	}
	r.configure(width, dark)
	return r
}

// SetWidth changes the wrap width.
func (r *Renderer) SetWidth(width int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width == r.width {
		return
	}
	r.configure(width, r.dark)
}

// SetDark switches between the dark and light document styles.
func (r *Renderer) SetDark(dark bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dark == r.dark {
		return
	}
	r.configure(r.width, dark)
}

// Render returns the styled form of md. Prose goes through glamour. Fenced
// code in a known language is highlighted with CodeTheme; any other fence
// is printed as plain text. If the backend fails, md is returned unchanged.
func (r *Renderer) Render(md string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if out, ok := r.cache[md]; ok {
		return out
	}
	if r.eng == nil {
		return md
	}

	var b strings.Builder
	for _, seg := range splitFences(md) {
		if seg.code {
			b.WriteString(renderCode(seg))
			continue
		}
		if strings.TrimSpace(seg.text) == "" {
			continue
		}
		out, err := r.eng.Render(seg.text)
		if err != nil {
			return md
		}
		b.WriteString(out)
	}

	out := b.String()
	r.cache[md] = out
	return out
}

func renderCode(seg segment) string {
	code := seg.text
	if KnownLanguage(seg.lang) {
		code = strings.TrimRight(Highlight(code, seg.lang), "\n")
	}
	return indent(code, codeIndent) + "\n\n"
}

// configure rebuilds the backend. Callers hold r.mu.
func (r *Renderer) configure(width int, dark bool) {
	if width <= 0 {
		width = DefaultWidth
	}
	r.width = width
	r.dark = dark
	r.cache = make(map[string]string)

	eng, err := r.newEngine(width, dark)
	if err != nil {
		r.eng = nil
		return
	}
	r.eng = eng
}

func newGlamourEngine(width int, dark bool) (engine, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(StyleConfig(dark)),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
}

// StyleConfig returns the glamour document style for the given mode with
// inline code and indented code blocks left unstyled. Fenced blocks never
// reach glamour; Render handles them.
func StyleConfig(dark bool) ansi.StyleConfig {
	cfg := styles.LightStyleConfig
	if dark {
		cfg = styles.DarkStyleConfig
	}
	cfg.Code = ansi.StyleBlock{}
	cfg.CodeBlock = ansi.StyleCodeBlock{
		StyleBlock: ansi.StyleBlock{Margin: cfg.CodeBlock.Margin},
	}
	return cfg
}
