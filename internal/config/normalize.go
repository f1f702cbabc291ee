// internal/config/normalize.go
package config

import (
	"strings"

	"github.com/tamzrod/drivecfg/internal/textcodec"
)

// DefaultCompanionTimeoutMs applies when companion.timeout_ms is omitted.
const DefaultCompanionTimeoutMs = 2000

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if strings.TrimSpace(cfg.Tuning.Path) == "" {
		cfg.Tuning.Path = textcodec.DefaultPath
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if c := cfg.Companion; c != nil {
		c.Endpoint = strings.TrimSpace(c.Endpoint)
		if c.TimeoutMs == 0 {
			c.TimeoutMs = DefaultCompanionTimeoutMs
		}
	}
}

// Default returns a normalized config with no file behind it.
func Default() *Config {
	cfg := &Config{}
	Normalize(cfg)
	return cfg
}
