// Package cli renders the non-interactive commands: balance box, tables,
// progress while syncing and one-line status messages.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette shared with the interactive screen.
var (
	PrimaryColor = lipgloss.Color("#2563EB")
	DepositColor = lipgloss.Color("#059669")
	ExpenseColor = lipgloss.Color("#E11D48")
	WarningColor = lipgloss.Color("#F59E0B")
	InfoColor    = lipgloss.Color("#95E1D3")
	SubtleColor  = lipgloss.Color("#666666")
)

var (
	// SuccessStyle colors deposits and completed operations.
	SuccessStyle = foreground(DepositColor)
	// ErrorStyle colors expenses and failures.
	ErrorStyle   = foreground(ExpenseColor)
	WarningStyle = foreground(WarningColor)
	InfoStyle    = foreground(InfoColor)
	SubtleStyle  = foreground(SubtleColor)

	// HeaderStyle is used for table column headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	// BoxStyle frames the balance.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 2)
)

func foreground(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// FormatSuccess prefixes message with a check mark.
func FormatSuccess(message string) string {
	return SuccessStyle.Render("✓ " + message)
}

// FormatError prefixes message with a cross.
func FormatError(message string) string {
	return ErrorStyle.Render("✗ " + message)
}

// FormatWarning prefixes message with a warning sign.
func FormatWarning(message string) string {
	return WarningStyle.Render("⚠️ " + message)
}

// FormatInfo prefixes message with an info sign.
func FormatInfo(message string) string {
	return InfoStyle.Render("ℹ️ " + message)
}
