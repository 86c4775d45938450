package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/htmlfix/pkg/runner"
)

// JSONReporter emits the run result as a single JSON document, the
// stable machine-readable interface for CI.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// jsonEnvelope is the top-level JSON output shape.
type jsonEnvelope struct {
	Result   *runner.Result `json:"result"`
	Balanced bool           `json:"balanced"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) error {
	envelope := jsonEnvelope{
		Result:   result,
		Balanced: !result.HasMismatch(),
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelope); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}
