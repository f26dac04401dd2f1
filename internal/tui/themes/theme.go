// Package themes defines the lipgloss styles of the ledger TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Bold         lipgloss.Style
	Muted        lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	BalanceCard  lipgloss.Style
	BalanceLabel lipgloss.Style
	BalanceValue lipgloss.Style
	Deposit      lipgloss.Style
	Expense      lipgloss.Style
	Row          lipgloss.Style
	Avatar       lipgloss.Style
	MemberCard   lipgloss.Style
	Banner       lipgloss.Style
	Overlay      lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	KindSelected lipgloss.Style
	KindIdle     lipgloss.Style
	FormError    lipgloss.Style
	Help         lipgloss.Style
	Primary      lipgloss.Color
	Success      lipgloss.Color
	Error        lipgloss.Color
	Border       lipgloss.Color
	Subtle       lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#2563eb"),
	Success: lipgloss.Color("#059669"),
	Error:   lipgloss.Color("#e11d48"),
	Border:  lipgloss.Color("#404040"),
	Subtle:  lipgloss.Color("#9ca3af"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ca3af")),

	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2563eb")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#2563eb")).
		Padding(0, 2),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ca3af")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 2),

	BalanceCard: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4338ca")).
		Background(lipgloss.Color("#1e3a8a")).
		Padding(1, 3),
	BalanceLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#c7d2fe")),
	BalanceValue: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")),

	Deposit: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#059669")),
	Expense: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e11d48")),
	Row: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),

	Avatar: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2563eb")).
		Background(lipgloss.Color("#dbeafe")).
		Padding(0, 1),
	MemberCard: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),

	Banner: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#dc2626")).
		Padding(0, 2),
	Overlay: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("#2563eb")).
		Padding(1, 3),
	Field: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	FieldFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#2563eb")).
		Padding(0, 1),
	KindSelected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#111827")).
		Background(lipgloss.Color("#fafafa")).
		Padding(0, 2),
	KindIdle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ca3af")).
		Padding(0, 2),
	FormError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e11d48")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
}
