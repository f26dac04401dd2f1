package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name         string
		want         string
		transactions []Transaction
	}{
		{
			name:         "empty ledger",
			transactions: nil,
			want:         "0",
		},
		{
			name: "single deposit",
			transactions: []Transaction{
				{ID: "t1", Kind: KindDeposit, Amount: decimal.NewFromInt(100)},
			},
			want: "100",
		},
		{
			name: "deposits minus expenses",
			transactions: []Transaction{
				{ID: "t1", Kind: KindDeposit, Amount: decimal.NewFromInt(100)},
				{ID: "t2", Kind: KindExpense, Amount: decimal.RequireFromString("25.50")},
				{ID: "t3", Kind: KindDeposit, Amount: decimal.RequireFromString("0.10")},
				{ID: "t4", Kind: KindExpense, Amount: decimal.RequireFromString("0.20")},
			},
			want: "74.4",
		},
		{
			name: "missing amount contributes nothing",
			transactions: []Transaction{
				{ID: "t1", Kind: KindDeposit},
				{ID: "t2", Kind: KindExpense},
				{ID: "t3", Kind: KindDeposit, Amount: decimal.NewFromInt(5)},
			},
			want: "5",
		},
		{
			name: "unknown kind is subtracted",
			transactions: []Transaction{
				{ID: "t1", Kind: Kind("refund"), Amount: decimal.NewFromInt(10)},
			},
			want: "-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBalance(tt.transactions)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestComputeBalance_MatchesSumOfKinds(t *testing.T) {
	txns := []Transaction{
		{Kind: KindDeposit, Amount: decimal.RequireFromString("12.34")},
		{Kind: KindExpense, Amount: decimal.RequireFromString("1.01")},
		{Kind: KindExpense, Amount: decimal.RequireFromString("3.33")},
		{Kind: KindDeposit, Amount: decimal.RequireFromString("7")},
	}

	deposits, expenses := decimal.Zero, decimal.Zero
	for _, txn := range txns {
		if txn.Kind == KindDeposit {
			deposits = deposits.Add(txn.Amount)
		} else {
			expenses = expenses.Add(txn.Amount)
		}
	}

	assert.True(t, deposits.Sub(expenses).Equal(ComputeBalance(txns)))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "100.00 €", FormatMoney(decimal.NewFromInt(100), "€"))
	assert.Equal(t, "-25.50 €", FormatMoney(decimal.RequireFromString("-25.5"), "€"))
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero, ""))
}

func TestFormatSigned(t *testing.T) {
	deposit := Transaction{Kind: KindDeposit, Amount: decimal.NewFromInt(100)}
	expense := Transaction{Kind: KindExpense, Amount: decimal.RequireFromString("25.5")}

	assert.Equal(t, "+100.00 €", FormatSigned(deposit, "€"))
	assert.Equal(t, "-25.50 €", FormatSigned(expense, "€"))
}
