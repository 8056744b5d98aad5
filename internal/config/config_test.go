package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/kindling/internal/engine"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_MissingFile tests that defaults apply without a config file.
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Mode)
	assert.Equal(t, "text", cfg.Format)
	assert.NotEmpty(t, cfg.DBPath)
}

// TestLoad_PartialFile tests that omitted fields keep their defaults.
func TestLoad_PartialFile(t *testing.T) {
	path := writeConfig(t, "mode: development\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, "text", cfg.Format, "default kept")
}

// TestLoad_FullFile tests a complete config.
func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, "db_path: /tmp/kindling-test.db\nmode: development\nformat: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kindling-test.db", cfg.DBPath)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, engine.ModeDevelopment, cfg.EngineMode())
}

// TestLoad_InvalidMode tests schema rejection of unknown modes.
func TestLoad_InvalidMode(t *testing.T) {
	path := writeConfig(t, "mode: staging\n")

	_, err := Load(path)
	assert.Error(t, err)
}

// TestLoad_InvalidYAML tests rejection of malformed files.
func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "mode: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}

// TestValidate_EmptyDBPath tests the non-empty path constraint.
func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := Default()
	cfg.DBPath = ""
	assert.Error(t, cfg.Validate())
}

// TestEngineMode_Production tests the default mapping.
func TestEngineMode_Production(t *testing.T) {
	assert.Equal(t, engine.ModeProduction, Default().EngineMode())
}
