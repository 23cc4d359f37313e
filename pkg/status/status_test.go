package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merkabah-engine/merkabah-install/pkg/installer"
	"github.com/merkabah-engine/merkabah-install/pkg/manifest"
	"github.com/merkabah-engine/merkabah-install/pkg/testutil"
)

func TestCheckMissing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	m, err := manifest.Default()
	require.NoError(t, err)

	report := Check(env.FS, env.Paths, m)

	assert.Equal(t, VerdictMissing, report.Verdict)
	assert.False(t, report.PathEntryPresent)
	require.Len(t, report.Components, 4)
	for _, comp := range report.Components {
		assert.False(t, comp.Installed)
		assert.False(t, comp.Executable)
	}
}

func TestCheckComplete(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	m, err := manifest.Default()
	require.NoError(t, err)
	env.WriteAllSources(m)

	_, err = installer.New(env.FS, env.Paths, m).Run(false)
	require.NoError(t, err)

	report := Check(env.FS, env.Paths, m)

	assert.Equal(t, VerdictComplete, report.Verdict)
	assert.True(t, report.PathEntryPresent)
	for _, comp := range report.Components {
		assert.True(t, comp.Installed, "%s should be installed", comp.Command)
		assert.True(t, comp.Executable, "%s should be executable", comp.Command)
	}
}

func TestCheckPartial(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	m, err := manifest.Default()
	require.NoError(t, err)

	// Only the first payload is in place and there is no PATH entry
	require.NoError(t, env.FS.MkdirAll(env.BinDir(), 0755))
	first := report0Path(env, m)
	require.NoError(t, env.FS.WriteFile(first, []byte("#!/usr/bin/env python3\n"), 0755))
	require.NoError(t, env.FS.Chmod(first, 0755))

	report := Check(env.FS, env.Paths, m)

	assert.Equal(t, VerdictPartial, report.Verdict)
	assert.True(t, report.Components[0].Installed)
	assert.False(t, report.Components[1].Installed)
}

func report0Path(env *testutil.TestEnvironment, m *manifest.Manifest) string {
	return env.BinDir() + "/" + m.Payloads[0].Command
}
