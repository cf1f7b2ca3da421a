package markdown

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlight colours code as the given language using CodeTheme. Code in an
// unknown or empty language is returned unchanged.
func Highlight(code, lang string) string {
	lexer := lookupLexer(lang)
	if lexer == nil {
		return code
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return code
	}

	var b strings.Builder
	if err := formatters.TTY16m.Format(&b, styles.Get(CodeTheme), iterator); err != nil {
		return code
	}
	return b.String()
}

// KnownLanguage reports whether lang has a highlighter.
func KnownLanguage(lang string) bool {
	return lookupLexer(lang) != nil
}

func lookupLexer(lang string) chroma.Lexer {
	lang = strings.TrimSpace(strings.TrimPrefix(strings.ToLower(lang), "language-"))
	if lang == "" {
		return nil
	}
	return lexers.Get(lang)
}
