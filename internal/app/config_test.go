package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "log format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{name: "output format", mutate: func(c *Config) { c.Format = "html" }},
		{name: "too many workers", mutate: func(c *Config) { c.Workers = 1000 }},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }},
		{name: "listen address", mutate: func(c *Config) { c.Listen = "nowhere" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(cfg)

			assert.ErrorContains(t, cfg.Validate(), "invalid configuration")
		})
	}
}

func TestApplySettings(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s, err := DecodeSettings(strings.NewReader(`
plan: tours/
log_level: debug
format: pretty
workers: 2
timeout: 250ms
verify: true
listen: 0.0.0.0:9090
`), "langtour.yaml")
	require.NoError(t, err)
	cfg := DefaultConfig()

	// --- Act ---
	require.NoError(t, cfg.ApplySettings(s))

	// --- Assert ---
	assert.Equal(t, "tours/", cfg.PlanPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "pretty", cfg.Format)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "0.0.0.0:9090", cfg.Listen)
}

func TestApplySettings_BadTimeout(t *testing.T) {
	t.Parallel()

	err := DefaultConfig().ApplySettings(&Settings{Timeout: "soon"})

	assert.ErrorContains(t, err, `invalid timeout "soon"`)
}
