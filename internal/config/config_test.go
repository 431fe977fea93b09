package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Data.Dir)
	assert.Equal(t, "wishlist", cfg.Data.Slot)
	assert.False(t, cfg.Data.Ephemeral)
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.Equal(t, 2*time.Second, cfg.UI.NoticeTTL)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "file", cfg.Logger.Output)
	assert.Equal(t, filepath.Join(".", "wishlist.log"), cfg.LogPath())
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WISHLIST_DATA_DIR", "/tmp/wishes")
	t.Setenv("WISHLIST_THEME", "NEON")
	t.Setenv("WISHLIST_NOTICE_TTL", "500ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/wishes", cfg.Data.Dir)
	assert.Equal(t, "neon", cfg.UI.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.NoticeTTL)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WISHLIST_SLOT", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("slot", "", "")
	flags.String("data-dir", "", "")
	require.NoError(t, flags.Parse([]string{"--slot", "from-flag"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Data.Slot)
	assert.Equal(t, ".", cfg.Data.Dir)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "wishlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  slot: gifts\nui:\n  theme: mono\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "gifts", cfg.Data.Slot)
	assert.Equal(t, "mono", cfg.UI.Theme)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"empty slot":     {"WISHLIST_SLOT": "  "},
		"slot with path": {"WISHLIST_SLOT": "../etc/passwd"},
		"unknown theme":  {"WISHLIST_THEME": "sepia"},
		"zero ttl":       {"WISHLIST_NOTICE_TTL": "0s"},
		"bad log output": {"LOG_OUTPUT": "syslog"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load("", nil)
			assert.Error(t, err)
		})
	}
}
