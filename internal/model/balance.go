package model

import "github.com/shopspring/decimal"

// ComputeBalance folds transactions left to right from zero, adding deposits
// and subtracting everything else.
func ComputeBalance(transactions []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range transactions {
		balance = balance.Add(t.Signed())
	}
	return balance
}

// FormatMoney renders an amount with two decimals and a currency suffix.
func FormatMoney(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(2)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatSigned renders a transaction amount with an explicit sign.
func FormatSigned(t Transaction, currency string) string {
	sign := "-"
	if t.IsDeposit() {
		sign = "+"
	}
	return sign + FormatMoney(t.Amount, currency)
}
