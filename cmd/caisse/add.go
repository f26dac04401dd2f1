package main

import (
	"fmt"

	"github.com/Veraticus/caisse/internal/cli"
	"github.com/Veraticus/caisse/internal/config"
	"github.com/Veraticus/caisse/internal/ledger"
	"github.com/Veraticus/caisse/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	form := ledger.NewForm()
	var kind string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a deposit or an expense",
		Example: `  caisse add --kind entree --amount 50 --reason "Monthly dues" --user Alice
  caisse add --amount 12,40 --reason Coffee --user Bob`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := model.ParseKindStrict(kind)
			if err != nil {
				return err
			}
			form.Kind = parsed

			draft, err := form.Validate()
			if err != nil {
				return err
			}

			store, err := requireStore()
			if err != nil {
				return err
			}

			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
			stop := interrupts.Watch(cmd.Context(), true)
			err = store.CreateTransaction(cmd.Context(), draft)
			stop()
			if err != nil {
				if interrupts.WasInterrupted() {
					return fmt.Errorf("interrupted while saving, run caisse transactions before retrying: %w", err)
				}
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			currency := config.LoadUIConfig().Currency
			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Saved %s of %s for %s",
				draft.Kind, model.FormatMoney(draft.Amount, currency), draft.User)))

			snap, err := cli.SyncWithProgress(cmd.Context(), store, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("saved, but failed to reload balance: %w", err)
			}
			return cli.WriteBalance(cmd.OutOrStdout(), snap.Balance(), currency)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(model.KindExpense), "entree (deposit) or sortie (expense)")
	cmd.Flags().StringVarP(&form.Amount, "amount", "a", "", "amount, for example 12.50 or 12,50")
	cmd.Flags().StringVarP(&form.Reason, "reason", "r", "", "what the money was for")
	cmd.Flags().StringVarP(&form.User, "user", "u", "", "team member recording the entry")

	return cmd
}
