// Package ledger holds the application state of the shared cash box: the
// current snapshot of the team and transactions, the add-transaction flow and
// the shared error banner.
package ledger

import (
	"context"
	"fmt"

	"github.com/Veraticus/caisse/internal/model"
	"github.com/shopspring/decimal"
)

// Store is the remote record store holding the team and transactions tables.
type Store interface {
	FetchMembers(ctx context.Context) ([]model.Member, error)
	FetchTransactions(ctx context.Context) ([]model.Transaction, error)
	CreateTransaction(ctx context.Context, draft model.Draft) error
}

// Snapshot is the full contents of both tables at one refresh.
type Snapshot struct {
	Members      []model.Member
	Transactions []model.Transaction
}

// Balance returns the aggregate balance of the snapshot.
func (s Snapshot) Balance() decimal.Decimal {
	return model.ComputeBalance(s.Transactions)
}

// Sync reads the team table and then the transactions table. It returns no
// partial snapshot: either both tables are read or an error is returned.
func Sync(ctx context.Context, store Store) (Snapshot, error) {
	members, err := store.FetchMembers(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to sync members: %w", err)
	}

	transactions, err := store.FetchTransactions(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to sync transactions: %w", err)
	}

	return Snapshot{
		Members:      members,
		Transactions: transactions,
	}, nil
}
