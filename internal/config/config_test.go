package config_test

import (
	"strings"
	"testing"

	"github.com/mattfbacon/sneturfahi/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 64, cfg.Pipeline.MaxWordLength)
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(`
output:
  format: json
pipeline:
  allowExperimental: true
`))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Pipeline.AllowExperimental)
	// untouched fields keep their defaults
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadEmptyIsDefault(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	def, err := config.Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	_, err := config.Load(strings.NewReader("output:\n  bogus: true\n"))
	require.Error(t, err)
}

func TestLoadRejectsBadEnum(t *testing.T) {
	_, err := config.Load(strings.NewReader("output:\n  format: xml\n"))
	require.Error(t, err)
}
