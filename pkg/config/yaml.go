package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Fields the file
// omits keep their NewConfig defaults, so a partial config never
// silently disables backups or zeroes the indent width.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Template returns a commented starter configuration file, used by
// the init command.
func Template() []byte {
	return []byte(`# htmlfix configuration
#
# default_input is used when the fix/check commands get no path
# argument.
#default_input: site/index.html

# Spaces per nesting level in the reindent pass.
indent_width: 2

# Upper bound on the entity-collapse fixed-point loop.
# 0 uses the built-in default.
max_entity_iterations: 0

# Sidecar backups (<file>.htmlfix.bak) for --in-place rewrites.
backups:
  enabled: true

# Treat tag-balance mismatches as failures for the exit code.
strict: false
`)
}
