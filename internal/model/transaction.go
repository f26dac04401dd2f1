// Package model defines the ledger's domain types.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind says which way money moves in a transaction.
type Kind string

// Transaction kinds, using the values stored in the record store.
const (
	KindDeposit Kind = "entree"
	KindExpense Kind = "sortie"
)

// Defaults applied to records with missing fields.
const (
	DefaultReason = "No reason"
	DefaultUser   = "Unknown"
)

// ParseKind maps a stored or user-supplied value to a Kind. Empty and
// unrecognised values are expenses.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindDeposit), "deposit", "in", "+":
		return KindDeposit
	default:
		return KindExpense
	}
}

// ErrUnknownKind is returned by ParseKindStrict for unrecognised names.
var ErrUnknownKind = errors.New("unknown kind")

// ParseKindStrict maps a kind typed by a user. Only the stored values and
// their English names are accepted.
func ParseKindStrict(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindDeposit), "deposit":
		return KindDeposit, nil
	case string(KindExpense), "expense":
		return KindExpense, nil
	default:
		return "", fmt.Errorf("%w %q: use entree (deposit) or sortie (expense)", ErrUnknownKind, s)
	}
}

// String returns the human name of the kind.
func (k Kind) String() string {
	if k == KindDeposit {
		return "deposit"
	}
	return "expense"
}

// Toggle returns the other kind.
func (k Kind) Toggle() Kind {
	if k == KindDeposit {
		return KindExpense
	}
	return KindDeposit
}

// Transaction is a single movement of money in or out of the cash box.
// Transactions are immutable once created.
type Transaction struct {
	OccurredAt time.Time // zero when the store has no usable date
	ID         string
	Reason     string
	User       string
	Kind       Kind
	Amount     decimal.Decimal
}

// IsDeposit reports whether the transaction adds to the balance.
func (t Transaction) IsDeposit() bool {
	return t.Kind == KindDeposit
}

// Signed returns the transaction's contribution to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.IsDeposit() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// HasDate reports whether the occurrence date is known.
func (t Transaction) HasDate() bool {
	return !t.OccurredAt.IsZero()
}

// Draft is a validated transaction that has not been stored yet.
type Draft struct {
	Kind   Kind
	Reason string
	User   string
	Amount decimal.Decimal
}

// Validate checks the invariants every stored transaction must satisfy.
func (d Draft) Validate() error {
	if d.Kind != KindDeposit && d.Kind != KindExpense {
		return fmt.Errorf("invalid kind %q", d.Kind)
	}
	if !d.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", d.Amount)
	}
	if strings.TrimSpace(d.Reason) == "" {
		return errors.New("reason is required")
	}
	if strings.TrimSpace(d.User) == "" {
		return errors.New("user is required")
	}
	return nil
}
