package main

import (
	"github.com/Veraticus/caisse/internal/cli"
	"github.com/Veraticus/caisse/internal/config"
	"github.com/Veraticus/caisse/internal/ledger"
	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the current balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd)
			if err != nil {
				return err
			}
			return cli.WriteBalance(cmd.OutOrStdout(), snap.Balance(), config.LoadUIConfig().Currency)
		},
	}
}

func transactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx", "history"},
		Short:   "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd)
			if err != nil {
				return err
			}
			currency := config.LoadUIConfig().Currency
			if err := cli.WriteBalance(cmd.OutOrStdout(), snap.Balance(), currency); err != nil {
				return err
			}
			return cli.WriteTransactions(cmd.OutOrStdout(), snap.Transactions, currency)
		},
	}
}

func membersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "members",
		Aliases: []string{"team"},
		Short:   "List team members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd)
			if err != nil {
				return err
			}
			return cli.WriteMembers(cmd.OutOrStdout(), snap.Members)
		},
	}
}

// loadSnapshot syncs the ledger, or returns an empty one when no store is
// configured.
func loadSnapshot(cmd *cobra.Command) (ledger.Snapshot, error) {
	store, err := newStore()
	if err != nil {
		return ledger.Snapshot{}, err
	}
	if store == nil {
		cmd.PrintErrln(cli.FormatInfo("Record store not configured"))
		return ledger.Snapshot{}, nil
	}
	stop := cli.NewInterruptHandler(cmd.ErrOrStderr()).Watch(cmd.Context(), false)
	defer stop()
	return cli.SyncWithProgress(cmd.Context(), store, cmd.ErrOrStderr())
}
