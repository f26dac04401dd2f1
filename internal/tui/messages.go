package tui

import "github.com/Veraticus/caisse/internal/ledger"

// Async operation messages.
type refreshDoneMsg struct {
	err      error
	snapshot ledger.Snapshot
}

type submitDoneMsg struct {
	err error
}

// bannerExpiredMsg clears the banner with the given sequence number.
type bannerExpiredMsg struct {
	seq int
}

// Tab is the active view.
type Tab int

// Tabs.
const (
	TabTransactions Tab = iota
	TabTeam
)
