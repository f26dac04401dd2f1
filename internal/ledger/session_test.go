package ledger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Veraticus/caisse/internal/common"
	"github.com/Veraticus/caisse/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledForm() Form {
	return Form{Kind: model.KindExpense, Amount: "25.50", Reason: "Snacks", User: "Alice"}
}

func TestSession_Disabled(t *testing.T) {
	s := NewSession(false)

	assert.False(t, s.Loading())
	assert.False(t, s.BeginRefresh())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Members())
	assert.Empty(t, s.Transactions())
	assert.True(t, s.Balance().IsZero())

	require.True(t, s.OpenForm())
	s.SetForm(filledForm())
	_, err := s.Submit()
	require.ErrorIs(t, err, ErrStoreNotEnabled)
	assert.Equal(t, PhaseEditing, s.Phase())
}

func TestSession_RefreshReplacesSnapshot(t *testing.T) {
	s := NewSession(true)
	assert.True(t, s.Loading())

	require.True(t, s.BeginRefresh())
	snap := Snapshot{Members: []model.Member{{ID: "m1", Name: "Alice"}}}
	assert.False(t, s.EndRefresh(snap, nil))
	assert.False(t, s.Loading())
	assert.Equal(t, snap, s.Snapshot())

	require.True(t, s.BeginRefresh())
	assert.False(t, s.EndRefresh(Snapshot{}, nil))
	assert.Empty(t, s.Members())
}

func TestSession_FailedRefreshKeepsLastKnownGood(t *testing.T) {
	s := NewSession(true)
	snap := Snapshot{Members: []model.Member{{ID: "m1", Name: "Alice"}}}

	require.True(t, s.BeginRefresh())
	s.EndRefresh(snap, nil)

	require.True(t, s.BeginRefresh())
	s.EndRefresh(Snapshot{}, fmt.Errorf("%w: timeout", common.ErrConnection))

	assert.Equal(t, snap, s.Snapshot())
	banner, ok := s.Banner()
	require.True(t, ok)
	assert.Equal(t, common.ConnectionErrorMessage, banner.Message)
	assert.False(t, s.Loading())
}

func TestSession_RefreshSingleFlight(t *testing.T) {
	s := NewSession(true)

	require.True(t, s.BeginRefresh())
	assert.False(t, s.BeginRefresh())
	assert.False(t, s.BeginRefresh())

	// The queued follow-up starts once, however many triggers overlapped.
	assert.True(t, s.EndRefresh(Snapshot{}, nil))
	assert.True(t, s.Loading())
	assert.False(t, s.EndRefresh(Snapshot{}, nil))
	assert.True(t, s.BeginRefresh())
}

func TestSession_AddTransactionFlow(t *testing.T) {
	s := NewSession(true)
	assert.Equal(t, PhaseClosed, s.Phase())

	_, err := s.Submit()
	require.ErrorIs(t, err, ErrFormClosed)

	require.True(t, s.OpenForm())
	assert.False(t, s.OpenForm())
	assert.Equal(t, PhaseEditing, s.Phase())

	s.SetForm(Form{Kind: model.KindExpense, Amount: "25.50"})
	_, err = s.Submit()
	require.ErrorIs(t, err, ErrReasonRequired)
	assert.Equal(t, PhaseEditing, s.Phase())
	assert.ErrorIs(t, s.FormError(), ErrReasonRequired)

	s.SetForm(filledForm())
	assert.NoError(t, s.FormError())

	draft, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, PhaseSubmitting, s.Phase())
	assert.Equal(t, "Snacks", draft.Reason)

	_, err = s.Submit()
	require.ErrorIs(t, err, ErrSubmitInFlight)
	assert.False(t, s.CancelForm())

	s.SubmitSucceeded()
	assert.Equal(t, PhaseClosed, s.Phase())
	assert.True(t, s.Form().IsEmpty())
	assert.Equal(t, model.KindExpense, s.Form().Kind)
}

func TestSession_SubmitFailedKeepsFields(t *testing.T) {
	s := NewSession(true)
	require.True(t, s.OpenForm())
	s.SetForm(filledForm())

	_, err := s.Submit()
	require.NoError(t, err)

	s.SubmitFailed(fmt.Errorf("%w: 422", common.ErrSave))
	assert.Equal(t, PhaseEditing, s.Phase())
	assert.Equal(t, filledForm(), s.Form())

	banner, ok := s.Banner()
	require.True(t, ok)
	assert.Equal(t, common.SaveErrorMessage, banner.Message)
}

func TestSession_CancelClearsFields(t *testing.T) {
	s := NewSession(true)
	require.True(t, s.OpenForm())
	s.SetForm(filledForm())

	require.True(t, s.CancelForm())
	assert.Equal(t, PhaseClosed, s.Phase())
	assert.True(t, s.Form().IsEmpty())

	// Fields set while closed are ignored.
	s.SetForm(filledForm())
	assert.True(t, s.Form().IsEmpty())
}

func TestSession_Banner(t *testing.T) {
	s := NewSession(true)

	_, ok := s.Banner()
	assert.False(t, ok)

	first := s.ReportError(errors.New("dial tcp: refused"))
	second := s.ReportError(common.NewUserError("Custom", nil))
	assert.NotEqual(t, first, second)

	banner, ok := s.Banner()
	require.True(t, ok)
	assert.Equal(t, "Custom", banner.Message)

	// An expiry scheduled for an older banner does not clear the newer one.
	assert.False(t, s.ExpireBanner(first))
	_, ok = s.Banner()
	assert.True(t, ok)

	assert.True(t, s.ExpireBanner(second))
	_, ok = s.Banner()
	assert.False(t, ok)

	s.ReportError(common.ErrConnection)
	s.DismissBanner()
	_, ok = s.Banner()
	assert.False(t, ok)
}
