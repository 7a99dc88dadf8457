package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"stuckscan/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent verify runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("history is disabled in the configuration")
			}
			if _, err := os.Stat(cfg.History.Path); errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(cmd.OutOrStdout(), "no verify runs recorded yet")
				return nil
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no verify runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					shortRunID(run.RunID),
					run.StartedAt.Local().Format(time.DateTime),
					strconv.Itoa(run.Window),
					fmt.Sprintf("%g", run.Threshold),
					fmt.Sprintf("%d/%d", run.StuckOK, run.StuckNG),
					fmt.Sprintf("%d/%d", run.UnstuckOK, run.UnstuckNG),
					fmt.Sprintf("%.2f%%", run.Accuracy),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]tableColumn{
				{Title: "Run"},
				{Title: "Started"},
				{Title: "Window", Numeric: true},
				{Title: "Threshold", Numeric: true},
				{Title: "Stuck OK/NG", Numeric: true},
				{Title: "Unstuck OK/NG", Numeric: true},
				{Title: "Accuracy", Numeric: true},
			}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
