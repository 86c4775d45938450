package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/htmlfix/internal/ui/pretty"
	"github.com/yaklabco/htmlfix/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("Nothing to report."))
		return nil
	}

	fmt.Fprintln(r.bw, r.styles.FilePath.Render(result.Input))
	f, _ := r.opts.Writer.(*os.File)
	fmt.Fprintln(r.bw, r.styles.Divider(f))

	if result.NotHTML() {
		fmt.Fprintln(r.bw, r.styles.Warning.Render(
			"warning: input does not look like HTML; fixing anyway"))
	}

	fmt.Fprint(r.bw, r.styles.FormatBalanceTable(result.Balance))
	fmt.Fprint(r.bw, r.styles.FormatMismatchSummary(result.Balance))

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatRunSummary(result))
	}

	return nil
}
