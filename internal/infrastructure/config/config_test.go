package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/shopfloor-inc/shopfloor/internal/shared/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: mysql
  host: db.internal
  database: shop
logger:
  level: debug
  format: json
`)

	cfg, err := Load("", path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.GetAddr())
	assert.Equal(t, sharedConfig.DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("SHOPFLOOR_SERVER_PORT", "7070")
	t.Setenv("SHOPFLOOR_DATABASE_PATH", "/tmp/override.db")

	cfg, err := Load("", path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
	assert.Equal(t, "/tmp/override.db", cfg.Database.GetDSN())
}

func TestLoad_EnvSetsServerMode(t *testing.T) {
	path := writeConfig(t, "server:\n  mode: debug\n")

	cfg, err := Load("production", path)

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Server.Mode)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "unsupported driver", content: "database:\n  driver: oracle\n", wantErr: "unsupported database driver"},
		{name: "sqlite without path", content: "database:\n  driver: sqlite\n  path: \"\"\n", wantErr: "database.path is required"},
		{name: "bad port", content: "server:\n  port: 70000\n", wantErr: "invalid server.port"},
		{name: "malformed yaml", content: "server: [\n", wantErr: "failed to read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", writeConfig(t, tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("", "")

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "shopfloor.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logger.Level)
}
