// Package contentkind detects whether input content plausibly is HTML
// before the repair passes run. It uses go-enry's classifier backed by
// cheap structural checks. Detection is advisory: a non-HTML verdict
// produces a warning, never a refusal to process.
package contentkind

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the detected content kind.
type Kind string

const (
	// KindHTML means the content looks like HTML markup.
	KindHTML Kind = "html"

	// KindText means detection found no HTML structure.
	KindText Kind = "text"
)

// classifierCandidates are the languages offered to the enry
// classifier. Keeping the set small makes classification stable for
// the markup-vs-prose distinction we care about.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"HTML", "XML", "Markdown", "Text", "JSON", "YAML", "CSS", "JavaScript",
}

// htmlMarkers are substrings that strongly indicate HTML even when the
// file is a fragment the classifier can't place.
//
//nolint:gochecknoglobals // Read-only lookup table.
var htmlMarkers = []string{
	"<!doctype html", "<html", "<div", "<span", "<body", "<head",
	"<svg", "<button", "</a>",
}

// Detect classifies content as HTML or plain text.
func Detect(content []byte) Kind {
	if len(content) == 0 {
		return KindText
	}

	// Structural check first: fragments of markup rarely classify
	// cleanly but are exactly what the fixer exists for.
	if looksLikeHTML(content) {
		return KindHTML
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe {
		if strings.EqualFold(lang, "HTML") || strings.EqualFold(lang, "XML") {
			return KindHTML
		}
	}

	return KindText
}

// IsHTML reports whether content detects as HTML.
func IsHTML(content []byte) bool {
	return Detect(content) == KindHTML
}

func looksLikeHTML(content []byte) bool {
	lower := bytes.ToLower(content)
	for _, marker := range htmlMarkers {
		if bytes.Contains(lower, []byte(marker)) {
			return true
		}
	}

	// Over-encoded documents may hide their markup behind entities.
	return bytes.Contains(lower, []byte("&amp;lt;")) || bytes.Contains(lower, []byte("&lt;div"))
}
