package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/dto"
	"github.com/SscSPs/personal_finance_api/internal/platform/config"
	"github.com/spf13/cobra"
)

var flagProcessDate string

var recurringCmd = &cobra.Command{
	Use:   "recurring",
	Short: "Recurring transaction maintenance",
}

var recurringProcessCmd = &cobra.Command{
	Use:   "process",
	Short: "Materialize due recurring transactions and send reminders for every user",
	Long: "Runs one scheduler pass over the rules of all users as of --date (default today, UTC). " +
		"Rules that fail are reported and left untouched so the next run retries them.",
	Args: cobra.NoArgs,
	RunE: runRecurringProcess,
}

func init() {
	recurringProcessCmd.Flags().StringVar(&flagProcessDate, "date", "", "Processing date (YYYY-MM-DD)")
	recurringCmd.AddCommand(recurringProcessCmd)
	rootCmd.AddCommand(recurringCmd)
}

func runRecurringProcess(cmd *cobra.Command, _ []string) error {
	today, err := dto.ProcessRecurringParams{Date: flagProcessDate}.Today(time.Now())
	if err != nil {
		return fmt.Errorf("invalid --date: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := cmd.Context()
	deps, err := buildRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	res, err := deps.services.Recurring.ProcessDue(ctx, nil, today)
	if err != nil {
		return fmt.Errorf("process recurring transactions: %w", err)
	}

	for _, f := range res.Failed {
		slog.Warn("Recurring rule failed", slog.Int64("rule_id", f.RuleID), slog.String("error", f.Err.Error()))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: generated %d, reminded %d, deactivated %d, failed %d\n",
		today.Format(time.DateOnly), res.Generated, res.Reminded, res.Deactivated, len(res.Failed))
	return nil
}
