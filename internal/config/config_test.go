package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrsandeep/mango-marks/internal/tracker"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when no config file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		assert.True(t, cfg.Pipeline.DropUnknown)
		assert.Equal(t, tracker.DefaultNoiseTokens, cfg.Pipeline.NoiseTokens)
		assert.Equal(t, tracker.DefaultKeywords(), cfg.Pipeline.Keywords)
		assert.Equal(t, "kitsu", cfg.Metadata.Provider)
		assert.Equal(t, 20*time.Second, cfg.Metadata.Timeout)
		assert.Equal(t, "https://kitsu.io", cfg.Metadata.Kitsu.BaseURL)
		assert.Equal(t, 2*time.Second, cfg.Bookmarks.Debounce)
		assert.Empty(t, cfg.Bookmarks.WatchFile)
		assert.Equal(t, "1.0.0", cfg.Extension.MinVersion)
	})

	t.Run("Loads from config file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		configContent := `
port: 9999
pipeline:
  drop_unknown: false
  noise_tokens: ["asura scans", "reaper scans"]
  keywords:
    manhwa: ["asura"]
metadata:
  provider: mangadex
  timeout: 5s
bookmarks:
  watch_file: /tmp/bookmarks.json
unknown_setting: "should be ignored"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(configContent), 0644))

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9999, cfg.Port)
		assert.False(t, cfg.Pipeline.DropUnknown)
		assert.Equal(t, []string{"asura scans", "reaper scans"}, cfg.Pipeline.NoiseTokens)
		assert.Equal(t, []string{"asura"}, cfg.Pipeline.Keywords.Manhwa)
		// Keys missing from the file keep their defaults.
		assert.Equal(t, []string{"manhua"}, cfg.Pipeline.Keywords.Manhua)
		assert.Equal(t, "mangadex", cfg.Metadata.Provider)
		assert.Equal(t, 5*time.Second, cfg.Metadata.Timeout)
		assert.Equal(t, "/tmp/bookmarks.json", cfg.Bookmarks.WatchFile)
		assert.Equal(t, 2*time.Second, cfg.Bookmarks.Debounce)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("MANGO_MARKS_PORT", "7070")
		t.Setenv("MANGO_MARKS_METADATA_PROVIDER", "none")
		t.Setenv("MANGO_MARKS_EXTENSION_MIN_VERSION", "2.1.0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Port)
		assert.Equal(t, "none", cfg.Metadata.Provider)
		assert.Equal(t, "2.1.0", cfg.Extension.MinVersion)
	})

	t.Run("Explicit file must exist", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})
}
