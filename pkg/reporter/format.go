package reporter

import "fmt"

// Format identifies an output format.
type Format string

const (
	// FormatText is styled human-readable terminal output.
	FormatText Format = "text"

	// FormatJSON is stable machine-readable output for CI.
	FormatJSON Format = "json"
)

// IsValid returns true for a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q: must be text or json", s)
	}
	return f, nil
}
