package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "4w", cfg.DefaultRange)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_InvalidDefaultRange(t *testing.T) {
	t.Setenv("DEFAULT_RANGE", "2y")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("DEFAULT_RANGE", "12m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "12m", cfg.DefaultRange)
}

func TestLoadLookups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookups.yaml")
	data := `peer_groups:
  WFP: [UNDP, UNICEF, UNHCR]
category_names:
  digital_technology: Digital & Technology
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	lookups, err := LoadLookups(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"UNDP", "UNICEF", "UNHCR"}, lookups.PeerGroups["WFP"])
	assert.Equal(t, "Digital & Technology", lookups.CategoryNames["digital_technology"])
}

func TestLoadLookups_EmptyPathAndErrors(t *testing.T) {
	lookups, err := LoadLookups("")
	require.NoError(t, err)
	assert.Nil(t, lookups.PeerGroups)

	_, err = LoadLookups(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("peer_groups: [not, a, map]"), 0o644))
	_, err = LoadLookups(bad)
	assert.Error(t, err)
}
