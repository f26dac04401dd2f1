package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	NextTab         key.Binding
	TabTransactions key.Binding
	TabTeam         key.Binding
	ScrollUp        key.Binding
	ScrollDown      key.Binding

	// Actions
	NewTransaction key.Binding
	Refresh        key.Binding
	DismissError   key.Binding

	// Form
	Submit key.Binding
	Cancel key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch view"),
		),
		TabTransactions: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "transactions"),
		),
		TabTeam: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "team"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "scroll down"),
		),

		NewTransaction: key.NewBinding(
			key.WithKeys("n", "+"),
			key.WithHelp("n", "new entry"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),
		DismissError: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss error"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewTransaction, k.NextTab, k.Refresh, k.DismissError, k.Quit}
}

// FormHelp returns key bindings shown under the add-transaction form.
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
