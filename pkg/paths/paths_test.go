package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesDefaultsFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	p, err := New(Options{})
	require.NoError(t, err)

	assert.Equal(t, home, p.Home())
	assert.Equal(t, filepath.Join(home, "bin"), p.BinDir())
	assert.Equal(t, filepath.Join(home, ".bashrc"), p.StartupFile())
	assert.NotEmpty(t, p.SourceDir())
}

func TestNewHonorsOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	p, err := New(Options{
		BinDir:      "/opt/merkabah/bin",
		StartupFile: "/etc/profile.d/merkabah.sh",
		SourceDir:   "/srv/payloads",
	})
	require.NoError(t, err)

	assert.Equal(t, "/opt/merkabah/bin", p.BinDir())
	assert.Equal(t, "/etc/profile.d/merkabah.sh", p.StartupFile())
	assert.Equal(t, "/srv/payloads", p.SourceDir())
	// Home is still derived even when every target is overridden
	assert.Equal(t, home, p.Home())
}

func TestDefaultConfigFile(t *testing.T) {
	cfg := DefaultConfigFile()
	assert.Contains(t, cfg, "merkabah-install")
	assert.Equal(t, "config.toml", filepath.Base(cfg))
}
