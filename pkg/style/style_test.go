package style

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merkabah-engine/merkabah-install/pkg/manifest"
	"github.com/merkabah-engine/merkabah-install/pkg/status"
	"github.com/merkabah-engine/merkabah-install/pkg/types"
)

func init() {
	// Deterministic output regardless of the test terminal
	pterm.DisableColor()
}

func TestRenderOperations(t *testing.T) {
	ops := []types.Operation{
		{Kind: types.OperationDirCreate, Description: "Created directory /home/u/bin", Changed: true},
		{Kind: types.OperationPathEntry, Description: "PATH entry already present in /home/u/.bashrc"},
	}

	out := RenderOperations(ops, false)
	assert.Contains(t, out, "✓ Created directory /home/u/bin")
	assert.Contains(t, out, "· PATH entry already present")
}

func TestRenderOperationsDryRun(t *testing.T) {
	ops := []types.Operation{
		{Kind: types.OperationPayload, Description: "Would install merkabah-dashboard", Changed: true},
	}

	out := RenderOperations(ops, true)
	assert.Contains(t, out, "→ Would install merkabah-dashboard")
}

func TestRenderSummaryListsEveryCommand(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	out := RenderSummary(m, "/home/u/bin", "Restart your shell")
	for _, spec := range m.Payloads {
		assert.Contains(t, out, spec.Command)
		assert.Contains(t, out, spec.Usage)
	}
	assert.Contains(t, out, "Restart your shell")
}

func TestRenderStatus(t *testing.T) {
	report := &status.Report{
		Components: []status.Component{
			{Command: "merkabah-dashboard", Installed: true, Executable: true},
			{Command: "merkabah-joinity", Installed: true},
			{Command: "merkabah-extract"},
		},
		StartupFile: "/home/u/.bashrc",
		Verdict:     status.VerdictPartial,
	}

	out := RenderStatus(report)
	assert.Contains(t, out, "✓ merkabah-dashboard")
	assert.Contains(t, out, "! merkabah-joinity (not executable)")
	assert.Contains(t, out, "✗ merkabah-extract (not installed)")
	assert.Contains(t, out, "PATH entry missing")
	assert.Contains(t, out, "PARTIAL")
}
