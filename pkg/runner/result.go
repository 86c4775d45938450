package runner

import (
	"github.com/yaklabco/htmlfix/pkg/balance"
	"github.com/yaklabco/htmlfix/pkg/contentkind"
	"github.com/yaklabco/htmlfix/pkg/htmltext"
)

// Result captures everything one fix run produced, for reporting.
type Result struct {
	// Input is the path that was read.
	Input string `json:"input"`

	// Output is the path the repaired document targets. For dry runs
	// it is the path that would have been written.
	Output string `json:"output"`

	// ContentKind is the preflight detection verdict for the input.
	ContentKind contentkind.Kind `json:"content_kind"`

	// Stats records per-pass document sizes.
	Stats htmltext.PassStats `json:"stats"`

	// Balance is the tag-balance diagnostic, computed on the repaired
	// document. It never influences what gets written.
	Balance balance.Report `json:"balance"`

	// Written is true if the output file was actually written.
	Written bool `json:"written"`

	// BackupCreated is true if an in-place rewrite created a sidecar
	// backup.
	BackupCreated bool `json:"backup_created"`

	// DryRun is true if the run was a dry run.
	DryRun bool `json:"dry_run"`
}

// HasMismatch reports whether any tag family has unbalanced counts.
func (r *Result) HasMismatch() bool {
	if r == nil {
		return false
	}
	return !r.Balance.Balanced()
}

// NotHTML reports whether the preflight flagged the input as not
// looking like HTML.
func (r *Result) NotHTML() bool {
	if r == nil {
		return false
	}
	return r.ContentKind != contentkind.KindHTML
}
