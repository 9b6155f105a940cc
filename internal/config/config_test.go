package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ABXDASH_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefaultLocation(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "abxdash")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[ui]
default_view = "charts"
alt_screen = false
`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "charts", cfg.UI.DefaultView)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "abx.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[content]
dir = "/srv/abx"
db = "/srv/abx.db"

[ui]
footer_year = 2025

[log]
level = "debug"
file = "/tmp/abx.log"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ContentConfig{Dir: "/srv/abx", DB: "/srv/abx.db"}, cfg.Content)
	assert.Equal(t, 2025, cfg.UI.FooterYear)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, LogConfig{Level: "debug", File: "/tmp/abx.log"}, cfg.Log)
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ndefault_view = \"about\"\n"), 0o644))
	t.Setenv("ABXDASH_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "about", cfg.UI.DefaultView)
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "abx.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))
	t.Setenv("ABXDASH_LOG_LEVEL", "error")
	t.Setenv("ABXDASH_UI_DEFAULT_VIEW", "tables")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "tables", cfg.UI.DefaultView)
}

func TestExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestMalformedFileFails(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
