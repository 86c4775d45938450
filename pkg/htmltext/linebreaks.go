package htmltext

import "strings"

// breakPatterns are the tag adjacencies that get a newline inserted
// between the closing bracket and the following tag. Order matters:
// each pattern runs over the output of the previous one.
//
//nolint:gochecknoglobals // Read-only lookup table.
var breakPatterns = []struct {
	old string
	new string
}{
	{"></div>", ">\n</div>"},
	{"></a>", ">\n</a>"},
	{"><div", ">\n<div"},
	{"><a ", ">\n<a "},
	{"><svg", ">\n<svg"},
	{"></svg>", ">\n</svg>"},
	{"><button", ">\n<button"},
	{"></button>", ">\n</button>"},
}

// InsertLineBreaks splits adjacent tags onto separate lines for the
// fixed whitelist of tag names (div, a, svg, button).
//
// Only whitespace is inserted: stripping all whitespace from input and
// output yields identical strings.
func InsertLineBreaks(s string) string {
	for _, p := range breakPatterns {
		s = strings.ReplaceAll(s, p.old, p.new)
	}
	return s
}

// CollapseSpaces reduces every run of two or more spaces to a single
// space. Newlines and tabs are left alone.
func CollapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	spaces := 0
	for _, r := range s {
		if r == ' ' {
			spaces++
			continue
		}
		if spaces > 0 {
			b.WriteByte(' ')
			spaces = 0
		}
		b.WriteRune(r)
	}
	if spaces > 0 {
		b.WriteByte(' ')
	}

	return b.String()
}
