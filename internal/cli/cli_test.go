package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/pyramid/internal/expedition"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out, expedition.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, expedition.DefaultSource, cfg.Source)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParseFlagsOverrideBase(t *testing.T) {
	base := expedition.DefaultConfig()
	base.Source = "from-env.json"
	base.Seed = 5

	cfg, _, err := Parse([]string{"-generate", "-seed", "42", "-view", "-log-level", "DEBUG", "-log-format", "json"}, &bytes.Buffer{}, base)
	require.NoError(t, err)
	assert.True(t, cfg.Generate)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.View)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "from-env.json", cfg.Source)
}

func TestParsePositionalMap(t *testing.T) {
	cfg, _, err := Parse([]string{"maps/vault.hcl"}, &bytes.Buffer{}, expedition.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "maps/vault.hcl", cfg.Source)
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out, expedition.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseErrors(t *testing.T) {
	tests := [][]string{
		{"-no-such-flag"},
		{"-log-format", "xml"},
		{"-log-level", "loud"},
		{"a.json", "b.json"},
	}

	for _, args := range tests {
		_, _, err := Parse(args, &bytes.Buffer{}, expedition.DefaultConfig())
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr, "%v", args)
		assert.Equal(t, 2, exitErr.Code)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
