// Package htmltext implements the text normalization passes for htmlfix.
// It repairs over-encoded HTML entities, splits runs of adjacent tags onto
// separate lines, and rebuilds indentation from nesting depth.
package htmltext

import "strings"

const (
	// doubleEscapedAmp is one extra level of ampersand encoding.
	// "&amp;amp;" collapses to "&amp;" until only one level remains.
	doubleEscapedAmp = "&amp;amp;"

	// escapedAmp is a single level of ampersand encoding.
	escapedAmp = "&amp;"

	// DefaultMaxEntityIterations bounds the fixed-point collapse loop.
	// Each iteration halves the encoding depth, so even absurdly
	// over-encoded input converges long before this cap.
	DefaultMaxEntityIterations = 64
)

// CollapseEntities removes repeated ampersand encoding from s.
//
// It iterates "&amp;amp;" -> "&amp;" to a fixed point, bounded by
// maxIterations (DefaultMaxEntityIterations when maxIterations <= 0),
// then strips the final "&amp;" -> "&". Input with no escaped
// ampersands is returned unchanged.
func CollapseEntities(s string, maxIterations int) string {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxEntityIterations
	}

	for i := 0; i < maxIterations && strings.Contains(s, doubleEscapedAmp); i++ {
		next := strings.ReplaceAll(s, doubleEscapedAmp, escapedAmp)
		if next == s {
			// Fixed point reached without consuming the budget.
			break
		}
		s = next
	}

	return strings.ReplaceAll(s, escapedAmp, "&")
}
