// Package config loads runtime settings for the otpkeeper CLI.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite vault. Empty means the
//     default location under the user's application directory.
//   - RefreshInterval: how often displayed codes are regenerated.
type Config struct {
	DatabaseDSN     string
	RefreshInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = ""
	c.RefreshInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
