// Package style renders the installer's terminal output: progress banners,
// per-step results, the final summary panel, and status reports.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// pterm styles for line-oriented output
var (
	TitleStyle   = pterm.NewStyle(pterm.Bold)
	MutedStyle   = pterm.NewStyle(pterm.FgGray)
	SuccessStyle = pterm.NewStyle(pterm.FgGreen)
	ErrorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	WarnStyle    = pterm.NewStyle(pterm.FgYellow)
)

// lipgloss styles for the summary panel
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	commandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))
)

// ApplyColorMode configures color output. Mode is one of auto, always,
// never; auto disables color when stdout is not a terminal.
func ApplyColorMode(mode string) {
	switch mode {
	case "always":
		pterm.EnableColor()
	case "never":
		disableColor()
	default:
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			disableColor()
		}
	}
}

func disableColor() {
	pterm.DisableColor()
	lipgloss.SetColorProfile(termenv.Ascii)
}
