// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/drivecfg/internal/logging"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	if lvl := strings.TrimSpace(cfg.Log.Level); lvl != "" {
		if _, ok := logging.ParseLevel(lvl); !ok {
			return fmt.Errorf("log.level %q is not a known level", cfg.Log.Level)
		}
	}

	// ------------------------------------------------------------
	// COMPANION CONTROLLER VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	c := cfg.Companion
	if c == nil {
		return nil
	}

	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("companion: endpoint is required")
	}
	if c.TimeoutMs < 0 {
		return fmt.Errorf("companion: timeout_ms must be >= 0, got %d", c.TimeoutMs)
	}
	if c.UnitID == 0 {
		return fmt.Errorf("companion: unit_id 0 is the broadcast address")
	}

	return nil
}
