// Package config defines the configuration types for htmlfix.
// These are pure data structures; loading and merging live in
// internal/configloader.
package config

// OutputFormat specifies how run results are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true for a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// BackupsConfig controls sidecar backups for in-place rewrites.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration for htmlfix.
type Config struct {
	// DefaultInput is used by the fix and check commands when no
	// input path argument is given.
	DefaultInput string `yaml:"default_input"`

	// IndentWidth is the number of spaces per nesting level in the
	// reindent pass. Zero means the built-in default of two.
	IndentWidth int `yaml:"indent_width"`

	// MaxEntityIterations bounds the entity-collapse loop.
	// Zero means the built-in default.
	MaxEntityIterations int `yaml:"max_entity_iterations"`

	// Backups configures backups for --in-place rewrites.
	Backups BackupsConfig `yaml:"backups"`

	// Strict makes tag-balance mismatches affect the exit code.
	Strict bool `yaml:"strict"`

	// CLI-level options, never persisted to config files.

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Output is an explicit output path.
	Output string `yaml:"-"`

	// InPlace rewrites the input file instead of writing a sidecar.
	InPlace bool `yaml:"-"`

	// DryRun reports what would happen without writing anything.
	DryRun bool `yaml:"-"`

	// NoBackups disables backup creation for this run.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with the defaults the fixer ships with.
func NewConfig() *Config {
	return &Config{
		IndentWidth:         2,
		MaxEntityIterations: 0,
		Backups:             BackupsConfig{Enabled: true},
		Format:              FormatText,
	}
}
