package ledger

import (
	"context"
	"fmt"
	"testing"

	"github.com/Veraticus/caisse/internal/common"
	"github.com/Veraticus/caisse/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *fakeStore {
	return &fakeStore{
		members: []model.Member{{ID: "m1", Name: "Alice"}},
		transactions: []model.Transaction{{
			ID:     "t1",
			Kind:   model.KindDeposit,
			Amount: decimal.NewFromInt(100),
			Reason: "Caisse",
			User:   "Alice",
		}},
	}
}

func TestSync(t *testing.T) {
	store := seededStore()

	snap, err := Sync(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, []string{"members", "transactions"}, store.calls)
	assert.Equal(t, store.members, snap.Members)
	assert.Equal(t, store.transactions, snap.Transactions)
	assert.Equal(t, "100.00 €", model.FormatMoney(snap.Balance(), "€"))
}

func TestSync_Idempotent(t *testing.T) {
	store := seededStore()

	first, err := Sync(context.Background(), store)
	require.NoError(t, err)
	second, err := Sync(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSync_Failures(t *testing.T) {
	t.Run("members failure skips transactions", func(t *testing.T) {
		store := seededStore()
		store.membersErr = fmt.Errorf("%w: dial tcp", common.ErrConnection)

		snap, err := Sync(context.Background(), store)
		require.ErrorIs(t, err, common.ErrConnection)
		assert.Equal(t, Snapshot{}, snap)
		assert.Equal(t, []string{"members"}, store.calls)
	})

	t.Run("transactions failure returns no partial snapshot", func(t *testing.T) {
		store := seededStore()
		store.transactionsErr = fmt.Errorf("%w: 500", common.ErrConnection)

		snap, err := Sync(context.Background(), store)
		require.ErrorIs(t, err, common.ErrConnection)
		assert.Empty(t, snap.Members)
		assert.Equal(t, []string{"members", "transactions"}, store.calls)
	})
}
