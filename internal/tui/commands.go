package tui

import (
	"time"

	"github.com/Veraticus/caisse/internal/common"
	"github.com/Veraticus/caisse/internal/ledger"
	"github.com/Veraticus/caisse/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// refresh re-reads both tables.
func (m Model) refresh() tea.Cmd {
	store := m.config.Store
	ctx := m.ctx
	return func() tea.Msg {
		snapshot, err := ledger.Sync(ctx, store)
		if err != nil {
			common.LogError(err, "Failed to refresh ledger", nil)
		} else {
			common.LogDebug("Ledger refreshed", common.Fields{
				"members":      len(snapshot.Members),
				"transactions": len(snapshot.Transactions),
			})
		}
		return refreshDoneMsg{snapshot: snapshot, err: err}
	}
}

// submit writes one new transaction.
func (m Model) submit(draft model.Draft) tea.Cmd {
	store := m.config.Store
	ctx := m.ctx
	return func() tea.Msg {
		err := store.CreateTransaction(ctx, draft)
		if err != nil {
			common.LogError(err, "Failed to save transaction", common.Fields{
				"kind":   draft.Kind.String(),
				"amount": draft.Amount.String(),
			})
		}
		return submitDoneMsg{err: err}
	}
}

// expireBanner schedules the removal of the banner seq.
func (m Model) expireBanner(seq int) tea.Cmd {
	if m.config.ErrorTTL <= 0 {
		return nil
	}
	return tea.Tick(m.config.ErrorTTL, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}
