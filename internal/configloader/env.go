package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/htmlfix/pkg/config"
)

// envVarPrefix is the prefix for all htmlfix environment variables.
const envVarPrefix = "HTMLFIX_"

// EnvConfigPath returns the config file path from HTMLFIX_CONFIG, if set.
func EnvConfigPath() string {
	return os.Getenv(envVarPrefix + "CONFIG")
}

// LoadFromEnv applies environment variable overrides to cfg.
// Variables are prefixed with HTMLFIX_ (e.g. HTMLFIX_INDENT_WIDTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "DEFAULT_INPUT"); v != "" {
		cfg.DefaultInput = v
	}

	if v := os.Getenv(envVarPrefix + "INDENT_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sINDENT_WIDTH: %w", envVarPrefix, err)
		}
		cfg.IndentWidth = n
	}

	if v := os.Getenv(envVarPrefix + "MAX_ENTITY_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_ENTITY_ITERATIONS: %w", envVarPrefix, err)
		}
		cfg.MaxEntityIterations = n
	}

	if v := os.Getenv(envVarPrefix + "STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSTRICT: %w", envVarPrefix, err)
		}
		cfg.Strict = b
	}

	if v := os.Getenv(envVarPrefix + "BACKUPS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sBACKUPS_ENABLED: %w", envVarPrefix, err)
		}
		cfg.Backups.Enabled = b
	}

	return nil
}
