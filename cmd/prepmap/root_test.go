package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amishk599/prepmap/internal/config"
	"github.com/amishk599/prepmap/internal/model"
	"github.com/amishk599/prepmap/internal/roadmap"
	"github.com/amishk599/prepmap/internal/store"
)

func TestLoadConfig_OfflineDisablesModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prepmap.yaml")
	if err := os.WriteFile(path, []byte("ai:\n  enabled: true\nextraction:\n  refine: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	offline = true
	t.Cleanup(func() { offline = false })

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.AI.Enabled || cfg.Extraction.Refine {
		t.Errorf("offline config still calls the model: %+v", cfg.AI)
	}
	if err := cfg.CheckCredential(); err != nil {
		t.Errorf("offline config needs no key, got %v", err)
	}
}

func TestLatestRoadmap_FallsBackToOutputDir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output.Dir = dir

	if _, _, ok, err := latestRoadmap(cfg, store.NewNopStore()); err != nil || ok {
		t.Fatalf("empty dir: ok=%v err=%v", ok, err)
	}

	rm := model.Roadmap{Company: "Initech", Role: "Engineer", Difficulty: "Medium"}
	path := filepath.Join(dir, roadmap.DefaultFilename(rm, time.Now()))
	if err := roadmap.Save(rm, path); err != nil {
		t.Fatal(err)
	}

	got, gotPath, ok, err := latestRoadmap(cfg, store.NewNopStore())
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if gotPath != path || got.Company != "Initech" {
		t.Errorf("got %q from %s", got.Company, gotPath)
	}
}

func TestLatestRoadmap_PrefersHistory(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output.Dir = dir

	older := model.Roadmap{Company: "Google", Role: "SWE", Difficulty: "Hard"}
	olderPath := filepath.Join(t.TempDir(), "google.json")
	if err := roadmap.Save(older, olderPath); err != nil {
		t.Fatal(err)
	}
	newer := model.Roadmap{Company: "Initech", Role: "Engineer", Difficulty: "Medium"}
	if err := roadmap.Save(newer, filepath.Join(dir, roadmap.DefaultFilename(newer, time.Now()))); err != nil {
		t.Fatal(err)
	}

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if err := st.Record(model.HistoryEntry{Company: "Google", Role: "SWE", Difficulty: "Hard", Path: olderPath}); err != nil {
		t.Fatal(err)
	}

	got, gotPath, ok, err := latestRoadmap(cfg, st)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if gotPath != olderPath || got.Company != "Google" {
		t.Errorf("got %q from %s, want the recorded roadmap", got.Company, gotPath)
	}
}

func TestClip(t *testing.T) {
	if got := clip("Google", 10); got != "Google" {
		t.Errorf("clip short = %q", got)
	}
	if got := clip("Senior Staff Engineer", 8); got != "Senior …" {
		t.Errorf("clip long = %q", got)
	}
}
