package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Install.BinDir)
	assert.Empty(t, cfg.Install.StartupFile)
	assert.Empty(t, cfg.Install.SourceDir)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadUserFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[install]
bin_dir = "/opt/merkabah/bin"

[output]
color = "never"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/merkabah/bin", cfg.Install.BinDir)
	assert.Equal(t, "never", cfg.Output.Color)
	// Untouched keys keep their defaults
	assert.Empty(t, cfg.Install.StartupFile)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[install]\nbin_dir = \"/from/file\"\n"), 0644))

	t.Setenv("MERKABAH_INSTALL_BIN_DIR", "/from/env")
	t.Setenv("MERKABAH_INSTALL_COLOR", "always")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Install.BinDir)
	assert.Equal(t, "always", cfg.Output.Color)
}

func TestLoadIgnoresUnknownEnvVars(t *testing.T) {
	t.Setenv("MERKABAH_INSTALL_NO_SUCH_KEY", "value")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[install\nbroken"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestGenerateTOMLRoundTrips(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	out, err := GenerateTOML(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[install]")
	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "color = 'auto'")
}
