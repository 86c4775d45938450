package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Pass statistics fields.
	FieldBytesIn  = "bytes_in"
	FieldBytesOut = "bytes_out"
	FieldLines    = "lines"

	// Diagnostic fields.
	FieldTag         = "tag"
	FieldOpenCount   = "open"
	FieldCloseCount  = "close"
	FieldContentKind = "content_kind"

	// Run fields.
	FieldDryRun  = "dry_run"
	FieldInPlace = "in_place"
	FieldWritten = "written"
	FieldBackup  = "backup"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
