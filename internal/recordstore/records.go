package recordstore

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Veraticus/caisse/internal/model"
	"github.com/shopspring/decimal"
)

// sortField is the transactions column the store sorts on.
const sortField = "Date"

// isoMillis matches the timestamp format browsers produce for ISO strings.
const isoMillis = "2006-01-02T15:04:05.000Z"

// listResponse is the envelope of a table read. Records is a pointer so a
// body without the array can be told apart from an empty table.
type listResponse[F any] struct {
	Records *[]record[F] `json:"records"`
}

type record[F any] struct {
	ID     string `json:"id"`
	Fields F      `json:"fields"`
}

// memberFields mirrors a row of the team table. Every field is optional.
type memberFields struct {
	Name *string `json:"Nom"`
}

// transactionFields mirrors a row of the transactions table. Every field is
// optional; defaults are applied in toTransaction and nowhere else.
type transactionFields struct {
	Kind   *string          `json:"Type"`
	Amount *decimal.Decimal `json:"Montant"`
	Reason *string          `json:"Motif"`
	User   *string          `json:"Utilisateur"`
	Date   *string          `json:"Date"`
}

func toMember(r record[memberFields]) model.Member {
	m := model.Member{ID: r.ID}
	if r.Fields.Name != nil {
		m.Name = *r.Fields.Name
	}
	return m
}

func toTransaction(r record[transactionFields]) model.Transaction {
	f := r.Fields
	t := model.Transaction{
		ID:     r.ID,
		Kind:   model.KindExpense,
		Amount: decimal.Zero,
		Reason: model.DefaultReason,
		User:   model.DefaultUser,
	}

	if f.Kind != nil {
		t.Kind = model.ParseKind(*f.Kind)
	}
	if f.Amount != nil {
		t.Amount = *f.Amount
	}
	if f.Reason != nil && strings.TrimSpace(*f.Reason) != "" {
		t.Reason = *f.Reason
	}
	if f.User != nil && strings.TrimSpace(*f.User) != "" {
		t.User = *f.User
	}
	if f.Date != nil {
		t.OccurredAt = parseDate(*f.Date)
	}

	return t
}

// parseDate accepts full timestamps and date-only values. Anything else is
// treated as an unknown date.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// createRequest is the body of a record creation.
type createRequest struct {
	Fields createFields `json:"fields"`
}

type createFields struct {
	Reason string      `json:"Motif"`
	Amount json.Number `json:"Montant"`
	Kind   string      `json:"Type"`
	User   string      `json:"Utilisateur"`
	Date   string      `json:"Date"`
}

func newCreateRequest(d model.Draft, now time.Time) createRequest {
	return createRequest{
		Fields: createFields{
			Reason: d.Reason,
			Amount: json.Number(d.Amount.String()),
			Kind:   string(d.Kind),
			User:   d.User,
			Date:   now.UTC().Format(isoMillis),
		},
	}
}
