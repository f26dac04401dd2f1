package ledger

import (
	"errors"
	"strings"

	"github.com/Veraticus/caisse/internal/model"
	"github.com/shopspring/decimal"
)

// Form validation errors.
var (
	ErrAmountRequired = errors.New("amount is required")
	ErrReasonRequired = errors.New("reason is required")
	ErrUserRequired   = errors.New("user is required")
	ErrInvalidAmount  = errors.New("amount must be a positive number")
)

// Form holds the transient fields of the add-transaction form. It is
// independent of the stored data.
type Form struct {
	Kind   model.Kind
	Amount string
	Reason string
	User   string
}

// NewForm returns an empty form. New transactions are expenses by default.
func NewForm() Form {
	return Form{Kind: model.KindExpense}
}

// IsEmpty reports whether no text field has been filled in.
func (f Form) IsEmpty() bool {
	return f.Amount == "" && f.Reason == "" && f.User == ""
}

// Validate turns the form into a Draft. Amount, reason and user must be
// present, and the amount must parse as a positive decimal.
func (f Form) Validate() (model.Draft, error) {
	amountText := strings.TrimSpace(f.Amount)
	reason := strings.TrimSpace(f.Reason)
	user := strings.TrimSpace(f.User)

	switch {
	case amountText == "":
		return model.Draft{}, ErrAmountRequired
	case reason == "":
		return model.Draft{}, ErrReasonRequired
	case user == "":
		return model.Draft{}, ErrUserRequired
	}

	// Accept a decimal comma as typed on French keyboards.
	amount, err := decimal.NewFromString(strings.Replace(amountText, ",", ".", 1))
	if err != nil || !amount.IsPositive() {
		return model.Draft{}, ErrInvalidAmount
	}

	kind := f.Kind
	if kind != model.KindDeposit {
		kind = model.KindExpense
	}

	return model.Draft{
		Kind:   kind,
		Amount: amount,
		Reason: reason,
		User:   user,
	}, nil
}
