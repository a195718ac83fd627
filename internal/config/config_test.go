package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"BUSROUTE_FILE", "DATABASE_URL", "BUSROUTE_LOG_FORMAT", "BUSROUTE_DEBUG"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "route.csv", cfg.RouteFile)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.Debug)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yml := "route_file: /var/lib/busroute/main.csv\nlog_format: json\ndebug: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/busroute/main.csv", cfg.RouteFile)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Debug)
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yml := "route_file: from-file.csv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644))

	t.Setenv("BUSROUTE_FILE", "from-env.csv")
	t.Setenv("DATABASE_URL", "postgres://localhost/busroute")
	t.Setenv("BUSROUTE_DEBUG", "YES")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", cfg.RouteFile)
	assert.Equal(t, "postgres://localhost/busroute", cfg.DatabaseURL)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BUSROUTE_LOG_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
}

func TestGet(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", Get("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("SOME_OTHER_KEY", "fallback"))
}
