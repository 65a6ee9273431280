package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amishk599/prepmap/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prepmap.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	path := writeConfig(t, `
ai:
  enabled: true
  model: gemini-1.5-pro
  base_url: http://localhost:9999
  api_key: "secret"
  timeout: 5s
extraction:
  refine: true
output:
  dir: out
history:
  path: hist.db
catalog_path: my-catalog.yaml
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.AI.Enabled || cfg.AI.Model != "gemini-1.5-pro" || cfg.AI.BaseURL != "http://localhost:9999" {
		t.Errorf("AI = %+v", cfg.AI)
	}
	if cfg.AI.APIKey != "secret" {
		t.Errorf("APIKey = %q, want secret", cfg.AI.APIKey)
	}
	if cfg.AI.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.AI.Timeout)
	}
	if !cfg.Extraction.Refine {
		t.Error("Extraction.Refine = false, want true")
	}
	if cfg.Output.Dir != "out" || cfg.History.Path != "hist.db" || cfg.CatalogPath != "my-catalog.yaml" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.AI.Enabled {
		t.Error("ai.enabled should default to true")
	}
	if cfg.AI.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 20*time.Second {
		t.Errorf("Timeout = %v, want 20s", cfg.AI.Timeout)
	}
	if cfg.Output.Dir != "." || cfg.History.Path != "prepmap.db" {
		t.Errorf("Output/History = %+v / %+v", cfg.Output, cfg.History)
	}
}

func TestLoad_EmptyHistoryPathDisables(t *testing.T) {
	cfg, err := Load(writeConfig(t, "history:\n  path: \"\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.History.Path != "" {
		t.Errorf("History.Path = %q, want empty", cfg.History.Path)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("MY_GEMINI_KEY", "from-env")
	cfg, err := Load(writeConfig(t, "ai:\n  api_key: ${MY_GEMINI_KEY}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want from-env", cfg.AI.APIKey)
	}
}

func TestLoad_APIKeyFallsBackToEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")
	cfg, err := Load(writeConfig(t, "ai:\n  enabled: true\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.AI.APIKey)
	}
}

func TestLoad_ConfigKeyWinsOverEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")
	cfg, err := Load(writeConfig(t, "ai:\n  api_key: file-key\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file-key", cfg.AI.APIKey)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "ai: [broken"))
	if err == nil {
		t.Fatal("Load: expected error for invalid YAML")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	if _, err := Load(writeConfig(t, "ai:\n  timeout: soon\n")); err == nil {
		t.Error("expected error for unparseable timeout")
	}
	if _, err := Load(writeConfig(t, "ai:\n  timeout: 0s\n")); err == nil {
		t.Error("expected error for zero timeout")
	}
}

func TestLoad_RefineRequiresAI(t *testing.T) {
	_, err := Load(writeConfig(t, "ai:\n  enabled: false\nextraction:\n  refine: true\n"))
	if err == nil {
		t.Fatal("expected error when refine is on and ai is off")
	}
}

func TestCheckCredential(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	cfg, err := Load(writeConfig(t, "ai:\n  enabled: true\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.CheckCredential(); !errors.Is(err, model.ErrMissingCredential) {
		t.Errorf("CheckCredential = %v, want ErrMissingCredential", err)
	}

	cfg.AI.Enabled = false
	if err := cfg.CheckCredential(); err != nil {
		t.Errorf("CheckCredential with ai disabled = %v, want nil", err)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(PathEnv, "")
	if p, explicit := ResolvePath(""); p != DefaultPath || explicit {
		t.Errorf("ResolvePath(\"\") = %q, %v", p, explicit)
	}

	t.Setenv(PathEnv, "/etc/prepmap.yaml")
	if p, explicit := ResolvePath(""); p != "/etc/prepmap.yaml" || !explicit {
		t.Errorf("env path = %q, %v", p, explicit)
	}
	if p, _ := ResolvePath("flag.yaml"); p != "flag.yaml" {
		t.Errorf("flag should win, got %q", p)
	}
}

func TestLoadFrom_MissingDefaultUsesDefaults(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Chdir(t.TempDir())

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.AI.Model != "gemini-2.0-flash" {
		t.Errorf("expected defaults, got %+v", cfg.AI)
	}
}

func TestLoadFrom_MissingExplicitFails(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}
