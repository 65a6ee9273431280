package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepmap/internal/roadmap"
	"github.com/amishk599/prepmap/internal/tui"
)

var showView bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the latest roadmap as JSON",
	Long:  "Looks up the latest roadmap in the history index, falling back to the newest roadmap_*.json in output.dir.",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showView, "view", false, "open a scrollable viewer instead of printing")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	rm, path, ok, err := latestRoadmap(cfg, st)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "No roadmap found. Generate one first.")
		return nil
	}

	if showView {
		return tui.RunViewer(rm, path)
	}

	data, err := roadmap.Marshal(rm)
	if err != nil {
		return err
	}
	logger.Debug("showing roadmap", "path", path)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
