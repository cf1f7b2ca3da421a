package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lesson = "# Counter\n\nUse `setCount(5)` to update.\n\n```go\nfunc main() {}\n```\n\n```\nplain block\n```\n"

type failingEngine struct{ calls int }

func (f *failingEngine) Render(string) (string, error) {
	f.calls++
	return "", errors.New("boom")
}

type countingEngine struct{ calls int }

func (c *countingEngine) Render(in string) (string, error) {
	c.calls++
	return strings.ToUpper(in), nil
}

func TestRender_Content(t *testing.T) {
	r := NewRenderer(60, true)
	out := ansi.Strip(r.Render(lesson))

	assert.Contains(t, out, "Counter")
	assert.Contains(t, out, "setCount(5)")
	assert.Contains(t, out, "func main() {}")
	assert.Contains(t, out, "plain block")
}

func TestRender_Idempotent(t *testing.T) {
	for _, dark := range []bool{false, true} {
		r := NewRenderer(60, dark)
		first := r.Render(lesson)
		assert.Equal(t, first, r.Render(lesson))
		assert.Equal(t, first, NewRenderer(60, dark).Render(lesson))
	}
}

func TestRender_HighlightsFencedCode(t *testing.T) {
	r := NewRenderer(60, false)
	out := r.Render("```go\nfunc main() {}\n```\n")
	assert.Contains(t, out, "\x1b[", "fenced code with a language is coloured")
}

func TestRender_FallsBackToLiteral(t *testing.T) {
	eng := &failingEngine{}
	r := &Renderer{newEngine: func(int, bool) (engine, error) { return eng, nil }}
	r.configure(40, false)

	assert.Equal(t, "# raw *text*", r.Render("# raw *text*"))
	assert.Equal(t, 1, eng.calls)
}

func TestRender_NoEngine(t *testing.T) {
	r := &Renderer{newEngine: func(int, bool) (engine, error) { return nil, errors.New("no engine") }}
	r.configure(40, false)
	assert.Equal(t, "**md**", r.Render("**md**"))
}

func TestRender_CachesUntilReconfigured(t *testing.T) {
	eng := &countingEngine{}
	r := &Renderer{newEngine: func(int, bool) (engine, error) { return eng, nil }}
	r.configure(40, false)

	assert.Equal(t, "ABC", r.Render("abc"))
	assert.Equal(t, "ABC", r.Render("abc"))
	assert.Equal(t, 1, eng.calls)

	r.SetWidth(40)
	r.Render("abc")
	assert.Equal(t, 1, eng.calls, "same width keeps the cache")

	r.SetWidth(50)
	r.Render("abc")
	assert.Equal(t, 2, eng.calls)
	assert.Equal(t, 50, r.width)

	r.SetDark(true)
	r.Render("abc")
	assert.Equal(t, 3, eng.calls)
}

func TestNewRenderer_DefaultWidth(t *testing.T) {
	assert.Equal(t, DefaultWidth, NewRenderer(0, false).width)
}

func TestStyleConfig(t *testing.T) {
	for _, dark := range []bool{false, true} {
		cfg := StyleConfig(dark)
		assert.Empty(t, cfg.CodeBlock.Theme)
		assert.Nil(t, cfg.CodeBlock.Chroma)
		assert.Nil(t, cfg.CodeBlock.Color)
		assert.Nil(t, cfg.Code.Color)
	}
}

func TestRender_UnrecognizedFencesArePlain(t *testing.T) {
	for _, dark := range []bool{false, true} {
		r := NewRenderer(60, dark)

		for _, md := range []string{
			"```\nplain block\n```\n",
			"```nosuchlang\nplain block\n```\n",
			"~~~~\nplain block\n~~~~\n",
		} {
			out := r.Render(md)
			assert.NotContains(t, out, "\x1b[", "input %q", md)
			assert.Contains(t, out, codeIndent+"plain block")
		}

		out := r.Render("```go\nplain := 1\n```\n")
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, ansi.Strip(out), "plain := 1")
	}
}

func TestRender_MixedLessonKeepsPlainFencePlain(t *testing.T) {
	r := NewRenderer(60, true)
	out := r.Render(lesson)

	assert.Contains(t, out, codeIndent+"plain block\n")
	assert.Contains(t, ansi.Strip(out), "Counter")
}

func TestRender_EngineSeesOnlyProse(t *testing.T) {
	eng := &countingEngine{}
	r := &Renderer{newEngine: func(int, bool) (engine, error) { return eng, nil }}
	r.configure(40, false)

	out := r.Render("intro\n```\nx = 1\n```\noutro")
	assert.Equal(t, 2, eng.calls)
	assert.Equal(t, "INTRO"+codeIndent+"x = 1\n\nOUTRO", out)
}

func TestSplitFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []segment
	}{
		{
			name: "prose only",
			in:   "# Title\ntext",
			want: []segment{{text: "# Title\ntext"}},
		},
		{
			name: "language and extra info",
			in:   "a\n```jsx title=x\nconst a = 1;\n```\nb",
			want: []segment{
				{text: "a"},
				{text: "const a = 1;", code: true, lang: "jsx"},
				{text: "b"},
			},
		},
		{
			name: "longer closing fence",
			in:   "````\n```\ninner\n``````",
			want: []segment{{text: "```\ninner", code: true}},
		},
		{
			name: "tilde fence is not closed by backticks",
			in:   "~~~\ncode\n```\n~~~",
			want: []segment{{text: "code\n```", code: true}},
		},
		{
			name: "unclosed fence runs to the end",
			in:   "```go\nfunc f() {}",
			want: []segment{{text: "func f() {}", code: true, lang: "go"}},
		},
		{
			name: "four-space indent is not a fence",
			in:   "    ```\n    x",
			want: []segment{{text: "    ```\n    x"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitFences(tt.in))
		})
	}
}

func TestHighlight(t *testing.T) {
	code := "const [count, setCount] = useState(0);"

	out := Highlight(code, "jsx")
	require.NotEqual(t, code, out)
	assert.Equal(t, code, strings.TrimRight(ansi.Strip(out), "\n"))

	assert.Equal(t, code, Highlight(code, ""))
	assert.Equal(t, code, Highlight(code, "no-such-language"))
}

func TestKnownLanguage(t *testing.T) {
	assert.True(t, KnownLanguage("go"))
	assert.True(t, KnownLanguage("language-go"))
	assert.True(t, KnownLanguage("JSX"))
	assert.False(t, KnownLanguage(""))
	assert.False(t, KnownLanguage("no-such-language"))
}
