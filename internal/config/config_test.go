package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "android", cfg.Platform)
	assert.Equal(t, "src", cfg.AssetDir)
	assert.Equal(t, 60, cfg.Hz)
	assert.Equal(t, 50*time.Millisecond, cfg.HitTestLatency)
	assert.False(t, cfg.Headless)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ARPLACE_PLATFORM", "ios")
	t.Setenv("ARPLACE_QUERY", "anim=arbol")
	t.Setenv("ARPLACE_HEADLESS", "true")
	t.Setenv("ARPLACE_TICKS", "120")
	t.Setenv("ARPLACE_HITTEST_LATENCY", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ios", cfg.Platform)
	assert.Equal(t, "anim=arbol", cfg.Query)
	assert.True(t, cfg.Headless)
	assert.Equal(t, uint64(120), cfg.Ticks)
	assert.Equal(t, 2*time.Second, cfg.HitTestLatency)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("ARPLACE_HZ", "fast")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestSelectionFromQuery(t *testing.T) {
	tests := map[string]string{
		"anim=reno":          "reno",
		"?anim=arbol&x=1":    "arbol",
		"x=1":                "",
		"":                   "",
		"anim=%zz":           "",
		"anim=reno&anim=xyz": "reno",
	}
	for in, want := range tests {
		assert.Equal(t, want, SelectionFromQuery(in), in)
	}
}
