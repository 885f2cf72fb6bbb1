package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/infrastructure/cli/helpers"
	"github.com/doeshing/tams-go/internal/ports"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the request journal",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
		newHistoryStatsCommand(container),
		newHistoryRetainCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent portal calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New(ErrInvalidLimit)
			}
			return listHistoryEntries(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show (0 for all)")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(container)
			if err != nil {
				return err
			}
			if !helpers.ConfirmDestructive(cmd.ErrOrStderr(), cmd.InOrStdin(), "Delete every journal entry?", assumeYes) {
				fmt.Fprintln(cmd.OutOrStdout(), MsgAborted)
				return nil
			}
			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgHistoryCleared)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export the journal to a JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(container)
			if err != nil {
				return err
			}
			if err := store.ExportJSON(args[0]); err != nil {
				return fmt.Errorf("failed to export history to %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported journal to %s\n", args[0])
			return nil
		},
	}
}

func newHistoryStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show success rate and failures by kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistoryStats(cmd.OutOrStdout(), container)
		},
	}
}

func newHistoryRetainCommand(container *app.Container) *cobra.Command {
	var retainDays int

	cmd := &cobra.Command{
		Use:   "retain",
		Short: "Prune entries older than N days and update the retention policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if retainDays <= 0 {
				return errors.New(ErrInvalidRetainDays)
			}
			return updateHistoryRetention(cmd.OutOrStdout(), container, retainDays, time.Now())
		},
	}

	cmd.Flags().IntVar(&retainDays, "days", domain.DefaultHistoryRetainDays, "Days to retain history")
	return cmd
}

func historyStore(container *app.Container) (ports.HistoryRepository, error) {
	if container.HistoryStore == nil {
		return nil, errors.New(ErrHistoryStoreUnavailable)
	}
	return container.HistoryStore, nil
}

func listHistoryEntries(out io.Writer, container *app.Container, limit int) error {
	store, err := historyStore(container)
	if err != nil {
		return err
	}

	records, err := store.Records(limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	helpers.NewOutput(out).History(records, time.Now())
	return nil
}

func showHistoryStats(out io.Writer, container *app.Container) error {
	store, err := historyStore(container)
	if err != nil {
		return err
	}

	records, err := store.Records(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve history for analysis: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	stats := helpers.SummariseJournal(records)
	fmt.Fprintf(out, "Calls recorded: %d\nSuccess rate: %.1f%%\n", stats.Total, stats.SuccessRate())

	fmt.Fprintln(out, "By operation:")
	for _, op := range stats.Operations {
		fmt.Fprintf(out, "  %s: %d calls, %d failed\n", op.Operation, op.Calls, op.Failures)
	}

	if len(stats.ByKind) > 0 {
		kinds := make([]string, 0, len(stats.ByKind))
		for kind := range stats.ByKind {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)
		fmt.Fprintln(out, "Failures by kind:")
		for _, kind := range kinds {
			fmt.Fprintf(out, "  %s: %d\n", kind, stats.ByKind[domain.FailureKind(kind)])
		}
	}
	return nil
}

func updateHistoryRetention(out io.Writer, container *app.Container, days int, now time.Time) error {
	store, err := historyStore(container)
	if err != nil {
		return err
	}
	if container.ConfigLoader == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}

	cfg, err := container.ConfigLoader.Stored()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.SetRetentionDays(days); err != nil {
		return err
	}

	removed, err := store.Prune(cfg.RetentionCutoff(now))
	if err != nil {
		return fmt.Errorf("failed to prune old history: %w", err)
	}
	if err := container.ConfigLoader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintf(out, "Retained last %d days of history (%d entries removed).\n", days, removed)
	return nil
}
