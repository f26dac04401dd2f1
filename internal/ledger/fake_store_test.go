package ledger

import (
	"context"
	"sync"

	"github.com/Veraticus/caisse/internal/model"
)

// fakeStore is an in-memory Store that counts calls.
type fakeStore struct {
	membersErr      error
	transactionsErr error
	createErr       error
	members         []model.Member
	transactions    []model.Transaction
	created         []model.Draft
	calls           []string
	mu              sync.Mutex
}

func (f *fakeStore) FetchMembers(context.Context) ([]model.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "members")
	if f.membersErr != nil {
		return nil, f.membersErr
	}
	return append([]model.Member(nil), f.members...), nil
}

func (f *fakeStore) FetchTransactions(context.Context) ([]model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "transactions")
	if f.transactionsErr != nil {
		return nil, f.transactionsErr
	}
	return append([]model.Transaction(nil), f.transactions...), nil
}

func (f *fakeStore) CreateTransaction(_ context.Context, draft model.Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, draft)
	return nil
}
