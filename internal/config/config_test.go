package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "file:rockguard.db", cfg.DBSource)
	assert.Equal(t, 13, cfg.MapZoom)
	assert.Equal(t, 40, cfg.HeatRadius)
	assert.Equal(t, 19, cfg.TileMaxZoom)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 10000, cfg.MaxSessions)
	assert.Equal(t, "© OpenStreetMap contributors", cfg.TileAttribution)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := writeEnv(t, "SERVER_ADDRESS=:9090\nDB_SOURCE=postgres://u:p@localhost:5432/rockguard\nSESSION_TTL=5m\n")
	t.Setenv("MAP_ZOOM", "10")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "postgres://u:p@localhost:5432/rockguard", cfg.DBSource)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 10, cfg.MapZoom)
}

func TestLoadConfig_InvalidZoom(t *testing.T) {
	dir := writeEnv(t, "MAP_ZOOM=25\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidMaxSessions(t *testing.T) {
	dir := writeEnv(t, "MAX_SESSIONS=0\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
