package cmd

import (
	"errors"
	"fmt"

	"github.com/f3rmion/olelo/internal/history"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently pronounced words",
	Long: `List the words most recently pronounced with olelo, newest first.

History is kept only when history_path is set in config.yaml ('olelo init'
sets it) or through OLELO_HISTORY_PATH.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var (
	historyLimit int
	historyClear bool
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all history")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.HistoryPath == "" {
		return errors.New("history is disabled: set history_path in config.yaml or run 'olelo init'")
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if historyClear {
		n, err := store.Count(ctx)
		if err != nil {
			return err
		}
		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared %d entries\n", n)
		return nil
	}

	entries, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history yet.")
		return nil
	}

	width := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Word))
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s  %-4d %s\n",
			e.LastSeen.Local().Format("2006-01-02 15:04"),
			runewidth.FillRight(e.Word, width),
			e.Hits,
			e.Pronunciation)
	}
	return nil
}
