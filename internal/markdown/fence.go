package markdown

import "strings"

// segment is a run of lesson markdown: either prose for glamour or the body
// of one fenced code block.
type segment struct {
	text string
	code bool
	lang string
}

// splitFences cuts md at fenced code blocks. Fences open with three or more
// backticks or tildes indented at most three spaces and close with a run of
// the same character at least as long. An unclosed fence runs to the end.
func splitFences(md string) []segment {
	var (
		segs  []segment
		prose []string
		body  []string
		open  string
		lang  string
	)

	flushProse := func() {
		if len(prose) > 0 {
			segs = append(segs, segment{text: strings.Join(prose, "\n")})
			prose = nil
		}
	}

	for _, line := range strings.Split(md, "\n") {
		if open == "" {
			if marker, info, ok := openingFence(line); ok {
				flushProse()
				open, lang, body = marker, info, nil
				continue
			}
			prose = append(prose, line)
			continue
		}
		if closesFence(line, open) {
			segs = append(segs, segment{text: strings.Join(body, "\n"), code: true, lang: lang})
			open, lang, body = "", "", nil
			continue
		}
		body = append(body, line)
	}

	if open != "" {
		segs = append(segs, segment{text: strings.Join(body, "\n"), code: true, lang: lang})
	}
	flushProse()
	return segs
}

func openingFence(line string) (marker, lang string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) < 3 {
		return "", "", false
	}
	ch := trimmed[0]
	if ch != '`' && ch != '~' {
		return "", "", false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == ch {
		n++
	}
	if n < 3 {
		return "", "", false
	}
	info := strings.TrimSpace(trimmed[n:])
	if ch == '`' && strings.Contains(info, "`") {
		return "", "", false
	}
	if fields := strings.Fields(info); len(fields) > 0 {
		lang = fields[0]
	}
	return trimmed[:n], lang, true
}

func closesFence(line, marker string) bool {
	trimmed := strings.TrimSpace(line)
	if len(line)-len(strings.TrimLeft(line, " ")) > 3 || len(trimmed) < len(marker) {
		return false
	}
	return strings.Trim(trimmed, marker[:1]) == ""
}

// indent prefixes every line of s with pad.
func indent(s, pad string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
