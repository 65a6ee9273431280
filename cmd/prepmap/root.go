package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepmap/internal/ai"
	"github.com/amishk599/prepmap/internal/catalog"
	"github.com/amishk599/prepmap/internal/config"
	"github.com/amishk599/prepmap/internal/extract"
	"github.com/amishk599/prepmap/internal/model"
	"github.com/amishk599/prepmap/internal/planner"
	"github.com/amishk599/prepmap/internal/profile"
	"github.com/amishk599/prepmap/internal/roadmap"
	"github.com/amishk599/prepmap/internal/store"
)

var (
	cfgPath string
	debug   bool
	offline bool
)

var rootCmd = &cobra.Command{
	Use:   "prepmap",
	Short: "Interview prep roadmaps from a job posting",
	Long: "PrepMap reads a company, a role and a job description and writes a JSON " +
		"roadmap: interview rounds, key skills, a study order and a timeline.",
	// Default to `interactive` so that `prepmap` with no args opens the menu.
	RunE:          runInteractive,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: PREPMAP_CONFIG env var or ./prepmap.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "never call the model; catalog and keyword rules only")
}

// historyStore is the roadmap index the commands open and close.
type historyStore interface {
	model.RoadmapStore
	Close() error
}

// loadConfig resolves the config path and parses it, then applies --offline.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if offline {
		cfg.AI.Enabled = false
		cfg.Extraction.Refine = false
	}
	return cfg, nil
}

// setupLogger writes to stderr so stdout stays clean for JSON and summaries.
func setupLogger(w io.Writer, dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// quietLogger is used while a full-screen program owns the terminal.
func quietLogger(dbg bool) *slog.Logger {
	if dbg {
		return setupLogger(os.Stderr, true)
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openStore(cfg *config.Config, logger *slog.Logger) (historyStore, error) {
	if cfg.History.Path == "" {
		logger.Debug("history disabled")
		return store.NewNopStore(), nil
	}
	s, err := store.NewSQLiteStore(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", cfg.History.Path, err)
	}
	return s, nil
}

// buildPlanner wires the pipeline. The model-backed classifier and refiner
// are only created when ai.enabled is set, and then require a key.
func buildPlanner(ctx context.Context, cfg *config.Config, st model.RoadmapStore, reporter model.Reporter, logger *slog.Logger) (*planner.Planner, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	var (
		classifier model.CompanyClassifier
		refiner    model.SkillRefiner
	)
	if cfg.AI.Enabled {
		if err := cfg.CheckCredential(); err != nil {
			return nil, err
		}
		httpClient := &http.Client{Timeout: cfg.AI.Timeout + 10*time.Second}
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL, httpClient)
		if err != nil {
			return nil, err
		}
		classifier = ai.NewLLMCompanyClassifier(provider, ai.ClassifyCompanyTemplate, logger)
		if cfg.Extraction.Refine {
			refiner = ai.NewLLMSkillRefiner(provider, ai.RefineSkillsTemplate, logger)
		}
		logger.Debug("model enabled", "model", cfg.AI.Model, "refine", cfg.Extraction.Refine)
	}

	return planner.New(
		extract.New(cat),
		profile.NewResolver(cat, classifier, cfg.AI.Timeout, logger),
		roadmap.NewAssembler(cat),
		planner.Options{
			Refiner:       refiner,
			RefineTimeout: cfg.AI.Timeout,
			Store:         st,
			Reporter:      reporter,
			OutputDir:     cfg.Output.Dir,
		},
		logger,
	), nil
}

// latestRoadmap finds the newest roadmap: the history index first, then the
// newest roadmap_*.json in the output directory.
func latestRoadmap(cfg *config.Config, st model.RoadmapStore) (rm model.Roadmap, path string, ok bool, err error) {
	entry, found, err := st.Latest()
	if err != nil {
		return model.Roadmap{}, "", false, fmt.Errorf("read history: %w", err)
	}
	if found {
		if _, statErr := os.Stat(entry.Path); statErr == nil {
			path = entry.Path
		}
	}
	if path == "" {
		path, found, err = roadmap.LatestFile(cfg.Output.Dir)
		if err != nil {
			return model.Roadmap{}, "", false, err
		}
		if !found {
			return model.Roadmap{}, "", false, nil
		}
	}

	rm, err = roadmap.Load(path)
	if err != nil {
		return model.Roadmap{}, "", false, err
	}
	return rm, path, true, nil
}
