package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides dsn and interval", func(t *testing.T) {
		os.Args = []string{"testbin", "-d", "/tmp/vault.db", "-r", "10"}

		var cfg Config
		cfg.LoadDefaults()
		parseFlags(&cfg)

		assert.Equal(t, "/tmp/vault.db", cfg.DatabaseDSN)
		assert.Equal(t, 10*time.Second, cfg.RefreshInterval)
	})

	t.Run("keeps defaults when flags absent", func(t *testing.T) {
		os.Args = []string{"testbin"}

		var cfg Config
		cfg.LoadDefaults()
		parseFlags(&cfg)

		assert.Equal(t, "", cfg.DatabaseDSN)
		assert.Equal(t, 5*time.Second, cfg.RefreshInterval)
	})

	t.Run("unknown flags do not interfere", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "conf.json", "-d", "x.db"}

		var cfg Config
		cfg.LoadDefaults()
		parseFlags(&cfg)

		assert.Equal(t, "x.db", cfg.DatabaseDSN)
	})
}
