package ledger

import (
	"testing"

	"github.com/Veraticus/caisse/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		wantErr    error
		name       string
		form       Form
		wantAmount string
		wantKind   model.Kind
	}{
		{
			name:       "valid expense",
			form:       Form{Kind: model.KindExpense, Amount: "25.50", Reason: "Snacks", User: "Alice"},
			wantAmount: "25.5",
			wantKind:   model.KindExpense,
		},
		{
			name:       "valid deposit with decimal comma",
			form:       Form{Kind: model.KindDeposit, Amount: " 12,30 ", Reason: "Top up", User: "Bob"},
			wantAmount: "12.3",
			wantKind:   model.KindDeposit,
		},
		{
			name:       "missing kind defaults to expense",
			form:       Form{Amount: "1", Reason: "Pens", User: "Bob"},
			wantAmount: "1",
			wantKind:   model.KindExpense,
		},
		{
			name:    "empty amount",
			form:    Form{Reason: "Snacks", User: "Alice"},
			wantErr: ErrAmountRequired,
		},
		{
			name:    "blank reason",
			form:    Form{Amount: "3", Reason: "   ", User: "Alice"},
			wantErr: ErrReasonRequired,
		},
		{
			name:    "empty user",
			form:    Form{Amount: "3", Reason: "Snacks"},
			wantErr: ErrUserRequired,
		},
		{
			name:    "non-numeric amount",
			form:    Form{Amount: "abc", Reason: "Snacks", User: "Alice"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			form:    Form{Amount: "-4", Reason: "Snacks", User: "Alice"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "zero amount",
			form:    Form{Amount: "0.00", Reason: "Snacks", User: "Alice"},
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := tt.form.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantAmount).Equal(draft.Amount))
			assert.Equal(t, tt.wantKind, draft.Kind)
			require.NoError(t, draft.Validate())
		})
	}
}

func TestNewForm(t *testing.T) {
	f := NewForm()
	assert.Equal(t, model.KindExpense, f.Kind)
	assert.True(t, f.IsEmpty())
}
