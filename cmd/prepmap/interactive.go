package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepmap/internal/config"
	"github.com/amishk599/prepmap/internal/model"
	"github.com/amishk599/prepmap/internal/planner"
	"github.com/amishk599/prepmap/internal/report"
	"github.com/amishk599/prepmap/internal/roadmap"
	"github.com/amishk599/prepmap/internal/samples"
	"github.com/amishk599/prepmap/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Menu-driven roadmap generation (default)",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

const (
	menuCustom = iota
	menuSample
	menuLatest
	menuQuit
)

var menuItems = []string{
	"Analyze a job posting",
	"Try a sample job",
	"Show JSON of the latest roadmap",
	"Quit",
}

func runInteractive(cmd *cobra.Command, args []string) error {
	logger := quietLogger(debug)
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reports are printed after the spinner exits, not from inside the pipeline.
	p, err := buildPlanner(ctx, cfg, st, report.NewLogReporter(logger), logger)
	if err != nil {
		return err
	}
	terminal := report.NewTerminalReporter(out)

	for {
		choice, err := tui.RunPicker("PrepMap: interview roadmap generator", menuItems)
		if err != nil {
			return err
		}

		var input model.JobInput
		switch choice {
		case menuCustom:
			in, ok, err := tui.RunJobForm(model.JobInput{})
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			input = in
		case menuSample:
			i, err := tui.RunPicker("Choose a sample job", sampleTitles())
			if err != nil {
				return err
			}
			if i < 0 {
				continue
			}
			input, _ = samples.Get(i + 1)
		case menuLatest:
			if err := printLatest(out, cfg, st); err != nil {
				return err
			}
			continue
		default:
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}

		if err := generateOne(ctx, p, terminal, input, logger); err != nil {
			return err
		}

		again, err := tui.Confirm("Analyze another job?")
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}
	}
}

// generateOne runs the pipeline under a spinner. A cancelled run returns to
// the menu; only setup-level errors end the session.
func generateOne(ctx context.Context, p *planner.Planner, terminal model.Reporter, input model.JobInput, logger *slog.Logger) error {
	res, err := tui.RunLoader(ctx, "Building roadmap for "+input.Company, func(ctx context.Context) (planner.Result, error) {
		return p.Plan(ctx, input)
	})
	switch {
	case errors.Is(err, tui.ErrCancelled):
		return nil
	case errors.Is(err, model.ErrInvalidInput):
		fmt.Fprintf(os.Stderr, "Cannot build roadmap: %v\n", err)
		return nil
	case err != nil:
		return err
	}

	if err := terminal.Report(res.Roadmap, res.Path); err != nil {
		logger.Warn("failed to print roadmap summary", "error", err)
	}
	return nil
}

func printLatest(out io.Writer, cfg *config.Config, st model.RoadmapStore) error {
	rm, path, ok, err := latestRoadmap(cfg, st)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No roadmap found. Generate one first.")
		return nil
	}
	data, err := roadmap.Marshal(rm)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n\n%s\n", path, data)
	return nil
}
