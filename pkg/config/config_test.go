package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.DefaultDebounceMS, cfg.DebounceMS)
	assert.Equal(t, config.DefaultTabWidth, cfg.TabWidth)
	assert.True(t, cfg.DetectFenceLanguage)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestDebounce(t *testing.T) {
	cfg := config.Default()
	cfg.DebounceMS = 50
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce())

	cfg.DebounceMS = 0
	assert.Equal(t, config.DefaultDebounceMS*time.Millisecond, cfg.Debounce(),
		"zero falls back to the default delay")

	var nilCfg *config.Config
	assert.Equal(t, config.DefaultDebounceMS*time.Millisecond, nilCfg.Debounce())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"defaults", func(*config.Config) {}, false},
		{"negative debounce", func(c *config.Config) { c.DebounceMS = -1 }, true},
		{"zero tab width", func(c *config.Config) { c.TabWidth = 0 }, true},
		{"bad log level", func(c *config.Config) { c.LogLevel = "loud" }, true},
		{"warn level", func(c *config.Config) { c.LogLevel = "warn" }, false},
		{"empty level", func(c *config.Config) { c.LogLevel = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClone(t *testing.T) {
	cfg := config.Default()
	clone := cfg.Clone()
	clone.DebounceMS = 999
	assert.Equal(t, config.DefaultDebounceMS, cfg.DebounceMS)

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.DebounceMS = 30
	cfg.LogLevel = "debug"

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestFromYAML_PartialKeepsDefaults(t *testing.T) {
	parsed, err := config.FromYAML([]byte("debounce_ms: 40\n"))
	require.NoError(t, err)

	assert.Equal(t, 40, parsed.DebounceMS)
	assert.Equal(t, config.DefaultTabWidth, parsed.TabWidth)
	assert.True(t, parsed.DetectFenceLanguage)
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("debounce_ms: [not a number\n"))
	assert.Error(t, err)
}
