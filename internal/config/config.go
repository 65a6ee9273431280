package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amishk599/prepmap/internal/model"
)

const (
	// DefaultPath is used when neither --config nor PREPMAP_CONFIG is set.
	DefaultPath = "prepmap.yaml"

	// PathEnv names the environment variable holding the config path.
	PathEnv = "PREPMAP_CONFIG"

	// APIKeyEnv is read when ai.api_key is empty.
	APIKeyEnv = "GEMINI_API_KEY"

	defaultModel       = "gemini-2.0-flash"
	defaultAITimeout   = 20 * time.Second
	defaultOutputDir   = "."
	defaultHistoryPath = "prepmap.db"
)

// Config is the root configuration for prepmap.
type Config struct {
	AI          AIConfig
	Extraction  ExtractionConfig
	Output      OutputConfig
	History     HistoryConfig
	CatalogPath string // empty means the built-in catalog
}

// AIConfig controls the Gemini calls for unknown companies and skill refinement.
type AIConfig struct {
	Enabled bool
	Model   string        // Gemini model identifier, e.g. "gemini-2.0-flash"
	BaseURL string        // empty means the SDK default endpoint
	APIKey  string        // expanded from env var by Load, falls back to GEMINI_API_KEY
	Timeout time.Duration // per-call timeout
}

// ExtractionConfig controls skill extraction.
type ExtractionConfig struct {
	Refine bool // one extra model call to refine keyword skills
}

// OutputConfig controls where roadmap files are written.
type OutputConfig struct {
	Dir string
}

// HistoryConfig controls the SQLite history index.
type HistoryConfig struct {
	Path string // empty disables history
}

// rawConfig is used for YAML unmarshaling (snake_case fields, duration as
// string, pointers where absent and zero differ).
type rawConfig struct {
	AI          rawAIConfig         `yaml:"ai"`
	Extraction  rawExtractionConfig `yaml:"extraction"`
	Output      rawOutputConfig     `yaml:"output"`
	History     rawHistoryConfig    `yaml:"history"`
	CatalogPath string              `yaml:"catalog_path"`
}

type rawExtractionConfig struct {
	Refine bool `yaml:"refine"`
}

type rawOutputConfig struct {
	Dir string `yaml:"dir"`
}

type rawHistoryConfig struct {
	Path *string `yaml:"path"`
}

type rawAIConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Timeout string `yaml:"timeout"`
}

// Default returns the built-in configuration with the API key taken from
// the environment.
func Default() *Config {
	cfg := &Config{
		AI: AIConfig{
			Enabled: true,
			Model:   defaultModel,
			Timeout: defaultAITimeout,
		},
		Output:  OutputConfig{Dir: defaultOutputDir},
		History: HistoryConfig{Path: defaultHistoryPath},
	}
	cfg.AI.APIKey = os.Getenv(APIKeyEnv)
	return cfg
}

// ResolvePath picks the config file: the flag value, then PREPMAP_CONFIG,
// then DefaultPath. explicit is false only for DefaultPath.
func ResolvePath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv(PathEnv); env != "" {
		return env, true
	}
	return DefaultPath, false
}

// LoadFrom resolves the config path and loads it. A missing DefaultPath is
// not an error and yields Default(); a missing explicit path is.
func LoadFrom(flagPath string) (*Config, error) {
	path, explicit := ResolvePath(flagPath)
	cfg, err := Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.AI.Enabled != nil {
		cfg.AI.Enabled = *raw.AI.Enabled
	}
	if raw.AI.Model != "" {
		cfg.AI.Model = raw.AI.Model
	}
	cfg.AI.BaseURL = raw.AI.BaseURL
	if raw.AI.APIKey != "" {
		cfg.AI.APIKey = raw.AI.APIKey
	}
	if raw.AI.Timeout != "" {
		cfg.AI.Timeout, err = time.ParseDuration(raw.AI.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse ai.timeout %q: %w", raw.AI.Timeout, err)
		}
	}

	cfg.Extraction.Refine = raw.Extraction.Refine
	if raw.Output.Dir != "" {
		cfg.Output.Dir = raw.Output.Dir
	}
	if raw.History.Path != nil {
		cfg.History.Path = *raw.History.Path
	}
	cfg.CatalogPath = raw.CatalogPath

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be positive, got %v", cfg.AI.Timeout)
	}
	if cfg.AI.Enabled && cfg.AI.Model == "" {
		return fmt.Errorf("ai.model is required when ai.enabled is true")
	}
	if cfg.Extraction.Refine && !cfg.AI.Enabled {
		return fmt.Errorf("extraction.refine requires ai.enabled")
	}
	return nil
}

// CheckCredential fails with model.ErrMissingCredential when the model is
// enabled but no API key is available.
func (c *Config) CheckCredential() error {
	if c.AI.Enabled && c.AI.APIKey == "" {
		return fmt.Errorf("%w: set %s or ai.api_key in the config file, or disable ai.enabled",
			model.ErrMissingCredential, APIKeyEnv)
	}
	return nil
}
