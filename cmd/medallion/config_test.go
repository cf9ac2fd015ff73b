package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// setConfigDir points the CLI at a fresh config directory and restores the
// previous flag state when the test ends.
func setConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := flags
	flags.configDir = dir
	t.Cleanup(func() { flags = prev })
	return dir
}

func TestLoadConfigRoundtripsInitWrittenMappings(t *testing.T) {
	dir := setConfigDir(t)
	require.NoError(t, writeConfigIfMissing(filepath.Join(dir, "config.yaml")))

	cfg, err := loadConfig()
	require.NoError(t, err)

	// Viper lowercases map keys on read; the loaded tables must still match.
	code := func(s string) *string { return &s }
	assert.Equal(t, "Male", types.Lookup(cfg.Mappings.Gender, code("M")))
	assert.Equal(t, "Married", types.Lookup(cfg.Mappings.MaritalStatus, code("M")))
	assert.Equal(t, "Road", types.Lookup(cfg.Mappings.ProductLine, code("R")))
	assert.Equal(t, "USA", types.Lookup(cfg.Mappings.Country, code("US")))
	assert.Equal(t, "Germany", types.Lookup(cfg.Mappings.Country, code("de")))
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	setConfigDir(t)

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultDataDir, cfg.DataDir)
	assert.Equal(t, defaultSourceDir, cfg.Sources.Dir)
	assert.Equal(t, types.DefaultSourceFiles(), cfg.Sources.Files)
	assert.Equal(t, types.DefaultMappings(), cfg.Mappings)
}

func TestLoadConfigDataDirFlagOverride(t *testing.T) {
	dir := setConfigDir(t)
	require.NoError(t, writeConfigIfMissing(filepath.Join(dir, "config.yaml")))
	flags.dataDir = "/tmp/override-db"

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override-db", cfg.DataDir)
}
