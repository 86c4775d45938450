package htmltext

import "strings"

// DefaultIndentWidth is the number of spaces per nesting level.
const DefaultIndentWidth = 2

// voidMarkers suppress the depth increment for lines containing them.
// This is deliberately a substring test, not a tag-name match: a line
// that merely mentions "<img" inside an attribute value also keeps the
// current depth. True tag parsing would change output for ambiguous
// inputs, so the heuristic is kept as-is.
//
//nolint:gochecknoglobals // Read-only lookup table.
var voidMarkers = []string{"<path", "<svg", "<input", "<img", "<br", "<hr"}

// Reindent rebuilds indentation from nesting depth.
//
// Lines are trimmed and empty lines dropped. A line starting with a
// closing tag decrements depth (floored at zero) before it is emitted;
// a line that opens a tag, is not self-closing, and contains no void
// marker increments depth after it is emitted. Each line is prefixed
// with width spaces per depth level (DefaultIndentWidth when width <= 0)
// and the result is joined with single newlines.
func Reindent(s string, width int) string {
	if width <= 0 {
		width = DefaultIndentWidth
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	depth := 0

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "</") && depth > 0 {
			depth--
		}

		out = append(out, strings.Repeat(" ", depth*width)+line)

		if opensElement(line) {
			depth++
		}
	}

	return strings.Join(out, "\n")
}

// opensElement reports whether a trimmed line should increase nesting
// depth for the lines that follow it.
func opensElement(line string) bool {
	if !strings.HasPrefix(line, "<") || strings.HasPrefix(line, "</") {
		return false
	}
	if strings.HasSuffix(line, "/>") {
		return false
	}
	for _, marker := range voidMarkers {
		if strings.Contains(line, marker) {
			return false
		}
	}
	return true
}
