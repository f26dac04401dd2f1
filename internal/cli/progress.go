package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/caisse/internal/ledger"
	"github.com/Veraticus/caisse/internal/model"
	"github.com/schollz/progressbar/v3"
)

// progressStore reports each completed table read on a progress bar.
type progressStore struct {
	ledger.Store
	bar *progressbar.ProgressBar
}

func (p progressStore) FetchMembers(ctx context.Context) ([]model.Member, error) {
	members, err := p.Store.FetchMembers(ctx)
	if err == nil {
		p.step()
	}
	return members, err
}

func (p progressStore) FetchTransactions(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := p.Store.FetchTransactions(ctx)
	if err == nil {
		p.step()
	}
	return transactions, err
}

func (p progressStore) step() {
	if err := p.bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// SyncWithProgress runs ledger.Sync while drawing a two-step progress bar on
// w, one step per table.
func SyncWithProgress(ctx context.Context, store ledger.Store, w io.Writer) (ledger.Snapshot, error) {
	bar := progressbar.NewOptions(2,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription("[cyan]Syncing cash box...[reset]"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	defer func() {
		if err := bar.Finish(); err != nil {
			slog.Warn("Failed to finish progress bar", "error", err)
		}
	}()

	snapshot, err := ledger.Sync(ctx, progressStore{Store: store, bar: bar})
	if err != nil {
		return ledger.Snapshot{}, fmt.Errorf("sync failed: %w", err)
	}
	return snapshot, nil
}
