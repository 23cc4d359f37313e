// Package testutil provides isolated test environments for installer tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/merkabah-engine/merkabah-install/pkg/filesystem"
	"github.com/merkabah-engine/merkabah-install/pkg/manifest"
	"github.com/merkabah-engine/merkabah-install/pkg/paths"
	"github.com/merkabah-engine/merkabah-install/pkg/types"
)

// TestEnvironment provides an in-memory filesystem with a fake home
// directory and a payload source directory
type TestEnvironment struct {
	Home      string
	SourceDir string
	FS        types.FS
	Paths     *paths.Paths

	t *testing.T
}

// NewTestEnvironment creates an isolated environment. HOME points at a
// path that only exists on the in-memory filesystem; nothing touches the
// real home directory.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	home := "/test/home"
	sourceDir := "/test/dist"
	t.Setenv(paths.EnvHome, home)

	p, err := paths.New(paths.Options{SourceDir: sourceDir})
	if err != nil {
		t.Fatalf("failed to create paths: %v", err)
	}

	fs := filesystem.NewMemory()
	if err := fs.MkdirAll(sourceDir, 0755); err != nil {
		t.Fatalf("failed to create source dir: %v", err)
	}

	return &TestEnvironment{
		Home:      home,
		SourceDir: sourceDir,
		FS:        fs,
		Paths:     p,
		t:         t,
	}
}

// BinDir returns the payload destination directory
func (e *TestEnvironment) BinDir() string {
	return e.Paths.BinDir()
}

// StartupFile returns the startup file path
func (e *TestEnvironment) StartupFile() string {
	return e.Paths.StartupFile()
}

// WriteSource places a payload source file with the given content
func (e *TestEnvironment) WriteSource(name, content string) {
	e.t.Helper()
	if err := e.FS.WriteFile(filepath.Join(e.SourceDir, name), []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write source %s: %v", name, err)
	}
}

// WriteAllSources seeds a source file for every payload in the manifest.
// Content is derived from the source name so placement tests can verify
// byte-identical copies.
func (e *TestEnvironment) WriteAllSources(m *manifest.Manifest) {
	e.t.Helper()
	for _, spec := range m.Payloads {
		e.WriteSource(spec.Source, SourceContent(spec.Source))
	}
}

// SourceContent returns the deterministic content used by WriteAllSources
func SourceContent(sourceName string) string {
	return "#!/usr/bin/env python3\n# " + sourceName + "\n"
}
