package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "Victor_CV.pdf", cfg.Server.CVFilename)
	require.Equal(t, 200, cfg.Background.Particles)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "portfolio.yml")

	cfg := DefaultConfig()
	cfg.Server.Port = 9090
	cfg.Server.ShutdownTimeout = 3 * time.Second
	cfg.Log.Format = "console"
	cfg.Background.ReducedMotion = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 4000\nlog:\n  level: debug\n"), 0644))

	t.Setenv("PORT", "")
	t.Setenv("PORTFOLIO_SERVER__STATIC_DIR", "/srv/site")
	t.Setenv("PORTFOLIO_ANALYTICS__ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4000, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/srv/site", cfg.Server.StaticDir)
	require.False(t, cfg.Analytics.Enabled)

	t.Setenv("PORT", "8081")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Server.Port)
	require.Equal(t, ":8081", cfg.Addr())

	t.Setenv("PORT", "eighty")
	_, err = Load(path)
	require.ErrorContains(t, err, "invalid PORT")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "invalid server.port"},
		{"no static dir", func(c *Config) { c.Server.StaticDir = "" }, "static_dir"},
		{"no cv", func(c *Config) { c.Server.CVPath = "" }, "cv_path"},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"no dsn", func(c *Config) { c.Analytics.DSN = "" }, "analytics.dsn"},
		{"negative particles", func(c *Config) { c.Background.Particles = -1 }, "particles"},
		{"zero link distance", func(c *Config) { c.Background.LinkDistance = 0 }, "link_distance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			require.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}

	cfg := DefaultConfig()
	cfg.Analytics.Enabled = false
	cfg.Analytics.DSN = ""
	require.NoError(t, cfg.Validate())
}
