package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepmap/internal/model"
	"github.com/amishk599/prepmap/internal/report"
	"github.com/amishk599/prepmap/internal/samples"
	"github.com/amishk599/prepmap/internal/tui"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [number]",
	Short: "Generate a roadmap for a built-in sample job",
	Long:  "Without an argument a menu lists the samples. An invalid number falls back to the first sample.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func sampleTitles() []string {
	all := samples.All()
	titles := make([]string, len(all))
	for i, in := range all {
		titles[i] = samples.Title(in)
	}
	return titles
}

func runExamples(cmd *cobra.Command, args []string) error {
	logger := setupLogger(os.Stderr, debug)

	var input model.JobInput
	if len(args) == 1 {
		var ok bool
		input, ok = samples.Pick(args[0])
		if !ok {
			logger.Warn("invalid sample number, using the first sample", "choice", args[0])
		}
	} else {
		i, err := tui.RunPicker("Choose a sample job", sampleTitles())
		if err != nil {
			return err
		}
		if i < 0 {
			return nil
		}
		input, _ = samples.Get(i + 1)
	}

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

	p, err := buildPlanner(ctx, cfg, st, report.Multi{
		report.NewLogReporter(logger),
		report.NewTerminalReporter(cmd.OutOrStdout()),
	}, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Using sample: %s\n", samples.Title(input))
	_, err = p.Plan(ctx, input)
	return err
}
