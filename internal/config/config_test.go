package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Empty(t, cfg.GitHubURL)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_dir: /tmp/reports
github_url: https://github.com/user/repo/blob/main
filters:
  severities: [error, warning]
  not_error_ids: [unusedFunction]
  file_pattern: "src/*"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, "https://github.com/user/repo/blob/main", cfg.GitHubURL)
	assert.Equal(t, []string{"error", "warning"}, cfg.Filters.Severities)
	assert.Equal(t, []string{"unusedFunction"}, cfg.Filters.NotErrorIDs)
	assert.Equal(t, "src/*", cfg.Filters.FilePattern)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.OutputDir = ""
	assert.Error(t, cfg.Validate())
}
