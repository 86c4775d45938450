package htmltext

import (
	"context"
	"fmt"
)

// Options configures a Normalizer.
type Options struct {
	// IndentWidth is the number of spaces per nesting level.
	// Zero means DefaultIndentWidth.
	IndentWidth int

	// MaxEntityIterations bounds the entity-collapse fixed-point loop.
	// Zero means DefaultMaxEntityIterations.
	MaxEntityIterations int
}

// PassStats records what each pass did, for logging and reporting.
type PassStats struct {
	// BytesIn is the document size before any pass ran.
	BytesIn int

	// BytesAfterEntities is the size after entity collapsing.
	BytesAfterEntities int

	// BytesAfterBreaks is the size after line-break insertion and
	// space collapsing.
	BytesAfterBreaks int

	// BytesOut is the final size after reindenting.
	BytesOut int

	// Lines is the number of lines in the final document.
	Lines int
}

// Normalizer runs the three repair passes over a document in order:
// entity collapsing, structural line-break insertion, indentation
// reconstruction. The passes are pure string transformations; the
// only failure mode is context cancellation.
type Normalizer struct {
	opts Options
}

// New creates a Normalizer with the given options.
func New(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// Normalize transforms content through all passes and returns the
// repaired document with per-pass statistics.
func (n *Normalizer) Normalize(ctx context.Context, content []byte) ([]byte, PassStats, error) {
	stats := PassStats{BytesIn: len(content)}
	doc := string(content)

	if err := checkCancelled(ctx); err != nil {
		return nil, stats, err
	}
	doc = CollapseEntities(doc, n.opts.MaxEntityIterations)
	stats.BytesAfterEntities = len(doc)

	if err := checkCancelled(ctx); err != nil {
		return nil, stats, err
	}
	doc = InsertLineBreaks(doc)
	doc = CollapseSpaces(doc)
	stats.BytesAfterBreaks = len(doc)

	if err := checkCancelled(ctx); err != nil {
		return nil, stats, err
	}
	doc = Reindent(doc, n.opts.IndentWidth)
	stats.BytesOut = len(doc)
	stats.Lines = countLines(doc)

	return []byte(doc), stats, nil
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("normalize: %w", ctx.Err())
	default:
		return nil
	}
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}
