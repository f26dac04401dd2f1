package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/caisse/internal/model"
	"github.com/shopspring/decimal"
)

// WriteBalance prints the balance box.
func WriteBalance(w io.Writer, balance decimal.Decimal, currency string) error {
	amount := model.FormatMoney(balance, currency)
	style := SuccessStyle
	if balance.IsNegative() {
		style = ErrorStyle
	}

	_, err := fmt.Fprintln(w, BoxStyle.Render(SubtleStyle.Render("Current balance")+"\n"+style.Bold(true).Render(amount)))
	return err
}

// WriteTransactions prints transactions as a table, newest first.
func WriteTransactions(w io.Writer, transactions []model.Transaction, currency string) error {
	if len(transactions) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No transactions."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("Date"),
		HeaderStyle.Render("User"),
		HeaderStyle.Render("Reason"),
		HeaderStyle.Render("Amount")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range transactions {
		date := "unknown date"
		if t.HasDate() {
			date = t.OccurredAt.Local().Format("02/01/2006")
		}

		style := ErrorStyle
		if t.IsDeposit() {
			style = SuccessStyle
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			date,
			t.User,
			t.Reason,
			style.Render(model.FormatSigned(t, currency))); err != nil {
			return fmt.Errorf("failed to write transaction row: %w", err)
		}
	}

	return tw.Flush()
}

// WriteMembers prints the team, one member per line.
func WriteMembers(w io.Writer, members []model.Member) error {
	if len(members) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No team members."))
		return err
	}

	var b strings.Builder
	for _, m := range members {
		fmt.Fprintf(&b, "[%s] %s\n", m.Initial(), m.Name)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
