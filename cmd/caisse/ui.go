package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/caisse/internal/config"
	"github.com/Veraticus/caisse/internal/tui"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive cash box screen",
		Long: `Open the full-screen view of the cash box: current balance, the
transaction history, the team, and a form to record a deposit or an expense.`,
		RunE: runUI,
	}
}

func runUI(cmd *cobra.Command, _ []string) error {
	// The screen owns the terminal, so logs go to a file
	logFile, err := openLogFile(config.LogFilePath())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := logFile.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()
	if err := setupLogging(logFile); err != nil {
		return err
	}

	store, err := newStore()
	if err != nil {
		return err
	}

	uiCfg := config.LoadUIConfig()
	opts := []tui.Option{
		tui.WithCurrency(uiCfg.Currency),
		tui.WithErrorTTL(uiCfg.ErrorTTL),
	}
	if store != nil {
		opts = append(opts, tui.WithStore(store))
	} else {
		slog.Warn("Record store not configured, starting with an empty ledger")
	}

	slog.Info("Starting interactive screen")
	return tui.Run(cmd.Context(), opts...)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
