package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/htmlfix/pkg/balance"
	"github.com/yaklabco/htmlfix/pkg/runner"
)

const (
	// defaultTermWidth is used when terminal width cannot be determined.
	defaultTermWidth = 80

	markMatch    = "✓"
	markMismatch = "✗"
)

// FormatBalanceTable renders the per-family tag balance report.
// Each line follows the shape "  <div>: 12 open, 12 close ✓".
func (s *Styles) FormatBalanceTable(report balance.Report) string {
	var b strings.Builder

	b.WriteString(s.Title.Render("Tag balance:"))
	b.WriteByte('\n')

	for _, fam := range report.Families {
		mark := s.Match.Render(markMatch)
		if !fam.Balanced() {
			mark = s.Mismatch.Render(markMismatch)
		}
		fmt.Fprintf(&b, "  %s: %s %s\n",
			s.Tag.Render("<"+fam.Tag+">"),
			s.Count.Render(fmt.Sprintf("%d open, %d close", fam.Open, fam.Close)),
			mark,
		)
	}

	return b.String()
}

// FormatRunSummary formats a fix run outcome as a single line.
// Examples:
//
//	"wrote out.html.fixed (18432 -> 9150 bytes, 240 lines)"
//	"dry run: would write out.html.fixed"
func (s *Styles) FormatRunSummary(result *runner.Result) string {
	if result == nil {
		return ""
	}

	sizes := s.Dim.Render(fmt.Sprintf(" (%d -> %d bytes, %d lines)",
		result.Stats.BytesIn, result.Stats.BytesOut, result.Stats.Lines))

	switch {
	case result.DryRun:
		return s.Bold.Render("dry run:") + " would write " +
			s.FilePath.Render(result.Output) + sizes + "\n"
	case result.Written:
		return s.Success.Render("wrote ") + s.FilePath.Render(result.Output) + sizes + "\n"
	default:
		return s.Dim.Render("unchanged ") + s.FilePath.Render(result.Output) + sizes + "\n"
	}
}

// FormatMismatchSummary formats the closing verdict line for the
// balance diagnostic.
func (s *Styles) FormatMismatchSummary(report balance.Report) string {
	mismatched := report.Mismatched()
	if len(mismatched) == 0 {
		return s.Success.Render("All counted tags balanced.") + "\n"
	}

	tags := make([]string, 0, len(mismatched))
	for _, fam := range mismatched {
		tags = append(tags, "<"+fam.Tag+">")
	}

	word := "families"
	if len(mismatched) == 1 {
		word = "family"
	}

	return s.Failure.Render(fmt.Sprintf("%d tag %s unbalanced: %s",
		len(mismatched), word, strings.Join(tags, ", "))) + "\n"
}

// Divider returns a horizontal rule sized to the terminal, capped at
// defaultTermWidth for very wide windows.
func (s *Styles) Divider(writer *os.File) string {
	width := defaultTermWidth
	if writer != nil {
		if w, _, err := term.GetSize(int(writer.Fd())); err == nil && w > 0 && w < width {
			width = w
		}
	}
	return s.Dim.Render(strings.Repeat("-", width))
}
