package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepmap/internal/store"
)

var (
	historyLimit int
	historyPrune time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently generated roadmaps",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show (0 for all)")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "first delete entries older than this, e.g. 720h")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if cfg.History.Path == "" {
		fmt.Fprintln(out, "History is disabled (history.path is empty).")
		return nil
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if historyPrune > 0 {
		if sqlStore, ok := st.(*store.SQLiteStore); ok {
			if err := sqlStore.Cleanup(historyPrune); err != nil {
				return err
			}
			logger.Info("pruned history", "older_than", historyPrune.String())
		}
	}

	entries, err := st.List(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No roadmaps recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-17s %-22s %-30s %-7s %s\n", "Created", "Company", "Role", "Level", "File")
	fmt.Fprintln(out, strings.Repeat("─", 100))
	for _, e := range entries {
		fmt.Fprintf(out, "%-17s %-22s %-30s %-7s %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			clip(e.Company, 22),
			clip(e.Role, 30),
			e.Difficulty,
			e.Path,
		)
	}
	fmt.Fprintf(out, "\nShowing %d roadmap(s)\n", len(entries))
	return nil
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
