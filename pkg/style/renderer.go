package style

import (
	"fmt"
	"strings"

	"github.com/merkabah-engine/merkabah-install/pkg/manifest"
	"github.com/merkabah-engine/merkabah-install/pkg/status"
	"github.com/merkabah-engine/merkabah-install/pkg/types"
)

// RenderBanner renders the opening banner
func RenderBanner(version string) string {
	return TitleStyle.Sprint("Merkabah Engine installer") + " " + MutedStyle.Sprint(version)
}

// RenderOperations renders one line per completed operation
func RenderOperations(ops []types.Operation, dryRun bool) string {
	var result strings.Builder
	for _, op := range ops {
		result.WriteString(renderOperation(op, dryRun) + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

func renderOperation(op types.Operation, dryRun bool) string {
	mark := SuccessStyle.Sprint("✓")
	if dryRun {
		mark = WarnStyle.Sprint("→")
	}
	if !op.Changed {
		mark = MutedStyle.Sprint("·")
		return fmt.Sprintf("  %s %s", mark, MutedStyle.Sprint(op.Description))
	}
	return fmt.Sprintf("  %s %s", mark, op.Description)
}

// RenderSummary renders the closing panel listing the installed commands
// with their usage lines, plus the shell activation hint
func RenderSummary(m *manifest.Manifest, binDir, hint string) string {
	var body strings.Builder
	body.WriteString(panelTitleStyle.Render("Installation complete") + "\n\n")
	body.WriteString(fmt.Sprintf("Installed to %s:\n\n", binDir))

	for _, spec := range m.Payloads {
		body.WriteString(fmt.Sprintf("  %s  %s\n", commandStyle.Render(spec.Command), spec.Summary))
		body.WriteString(fmt.Sprintf("      %s\n", MutedStyle.Sprint("$ "+spec.Usage)))
	}

	body.WriteString("\n" + hint)
	return panelStyle.Render(strings.TrimRight(body.String(), "\n"))
}

// RenderError renders a fatal error line
func RenderError(err error) string {
	return ErrorStyle.Sprint(fmt.Sprintf("Error: %v", err))
}

// RenderStatus renders a status report
func RenderStatus(report *status.Report) string {
	var result strings.Builder
	result.WriteString(TitleStyle.Sprint("Merkabah Engine installation status") + "\n\n")

	for _, comp := range report.Components {
		result.WriteString("  " + renderComponent(comp) + "\n")
	}

	result.WriteString("\n")
	if report.PathEntryPresent {
		result.WriteString(fmt.Sprintf("  %s PATH entry present in %s\n",
			SuccessStyle.Sprint("✓"), report.StartupFile))
	} else {
		result.WriteString(fmt.Sprintf("  %s PATH entry missing from %s\n",
			ErrorStyle.Sprint("✗"), report.StartupFile))
	}

	result.WriteString("\n  " + renderVerdict(report.Verdict))
	return result.String()
}

func renderComponent(comp status.Component) string {
	switch {
	case comp.Installed && comp.Executable:
		return fmt.Sprintf("%s %s", SuccessStyle.Sprint("✓"), comp.Command)
	case comp.Installed:
		return fmt.Sprintf("%s %s %s", WarnStyle.Sprint("!"), comp.Command,
			MutedStyle.Sprint("(not executable)"))
	default:
		return fmt.Sprintf("%s %s %s", ErrorStyle.Sprint("✗"), comp.Command,
			MutedStyle.Sprint("(not installed)"))
	}
}

func renderVerdict(v status.Verdict) string {
	switch v {
	case status.VerdictComplete:
		return SuccessStyle.Sprint(string(v))
	case status.VerdictPartial:
		return WarnStyle.Sprint(string(v))
	default:
		return ErrorStyle.Sprint(string(v))
	}
}
