// Package status inspects an installation without modifying it. It reports
// per-payload presence and executability, PATH entry presence, and an
// overall verdict.
package status

import (
	"path/filepath"

	"github.com/merkabah-engine/merkabah-install/pkg/logging"
	"github.com/merkabah-engine/merkabah-install/pkg/manifest"
	"github.com/merkabah-engine/merkabah-install/pkg/shell"
	"github.com/merkabah-engine/merkabah-install/pkg/types"
)

// Verdict summarizes the overall installation state
type Verdict string

const (
	// VerdictComplete means every component is installed and the PATH entry present
	VerdictComplete Verdict = "COMPLETE"
	// VerdictPartial means some but not all components are in place
	VerdictPartial Verdict = "PARTIAL"
	// VerdictMissing means nothing is installed
	VerdictMissing Verdict = "MISSING"
)

// Component is the state of a single installed command
type Component struct {
	Command    string
	Path       string
	Installed  bool
	Executable bool
}

// Report is the result of a status check
type Report struct {
	Components       []Component
	PathEntryPresent bool
	StartupFile      string
	BinDir           string
	Verdict          Verdict
}

// Check inspects the filesystem and builds a Report. It never modifies
// anything and never fails the process: unreadable state reads as missing.
func Check(fs types.FS, paths types.Pather, m *manifest.Manifest) *Report {
	logger := logging.GetLogger("status")

	report := &Report{
		StartupFile: paths.StartupFile(),
		BinDir:      paths.BinDir(),
	}

	installed := 0
	for _, spec := range m.Payloads {
		comp := Component{
			Command: spec.Command,
			Path:    filepath.Join(paths.BinDir(), spec.Command),
		}
		if info, err := fs.Stat(comp.Path); err == nil && !info.IsDir() {
			comp.Installed = true
			comp.Executable = info.Mode()&0100 != 0
			installed++
		}
		report.Components = append(report.Components, comp)
	}

	if data, err := fs.ReadFile(paths.StartupFile()); err == nil {
		report.PathEntryPresent = shell.ContainsEntry(string(data), shell.PathEntryLine)
	}

	switch {
	case installed == len(m.Payloads) && report.PathEntryPresent:
		report.Verdict = VerdictComplete
	case installed == 0 && !report.PathEntryPresent:
		report.Verdict = VerdictMissing
	default:
		report.Verdict = VerdictPartial
	}

	logger.Debug().
		Int("installed", installed).
		Bool("pathEntry", report.PathEntryPresent).
		Str("verdict", string(report.Verdict)).
		Msg("Status check complete")

	return report
}
