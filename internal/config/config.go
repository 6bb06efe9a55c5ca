package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dshills/commit-format/internal/format"
	"github.com/dshills/commit-format/internal/gitlog"
)

const appName = "commit-format"

// Config represents the commit-format configuration.
type Config struct {
	Mode          string `json:"mode"`
	Backend       string `json:"backend"`
	BaseBranch    string `json:"baseBranch,omitempty"`
	DefaultBranch string `json:"defaultBranch"`
	Format        string `json:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Mode:          format.ModeRaw.String(),
		Backend:       gitlog.BackendExec,
		DefaultBranch: gitlog.FallbackBranch,
		Format:        "markdown",
	}
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName), nil
		}
		return filepath.Join(home, "AppData", "Roaming", appName), nil
	default:
		return filepath.Join(home, ".config", appName), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	mergeOverrides(&cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if _, err := format.ParseMode(c.Mode); err != nil {
		return err
	}
	switch c.Backend {
	case gitlog.BackendExec, gitlog.BackendGoGit:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, gitlog.BackendExec, gitlog.BackendGoGit)
	}
	switch c.Format {
	case "markdown", "json":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}
	return nil
}

func mergeFile(dst *Config, src Config) {
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if src.Backend != "" {
		dst.Backend = src.Backend
	}
	if src.BaseBranch != "" {
		dst.BaseBranch = src.BaseBranch
	}
	if src.DefaultBranch != "" {
		dst.DefaultBranch = src.DefaultBranch
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("COMMIT_FORMAT_MODE"); v != "" {
		if _, err := format.ParseMode(v); err != nil {
			return fmt.Errorf("COMMIT_FORMAT_MODE: %w", err)
		}
		cfg.Mode = v
	}
	if v := os.Getenv("COMMIT_FORMAT_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("COMMIT_FORMAT_BASE_BRANCH"); v != "" {
		cfg.BaseBranch = v
	}
	if v := os.Getenv("COMMIT_FORMAT_DEFAULT_BRANCH"); v != "" {
		cfg.DefaultBranch = v
	}
	if v := os.Getenv("COMMIT_FORMAT_FORMAT"); v != "" {
		cfg.Format = v
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["mode"]; ok && v != "" {
		cfg.Mode = v
	}
	if v, ok := overrides["backend"]; ok && v != "" {
		cfg.Backend = v
	}
	if v, ok := overrides["baseBranch"]; ok && v != "" {
		cfg.BaseBranch = v
	}
	if v, ok := overrides["defaultBranch"]; ok && v != "" {
		cfg.DefaultBranch = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "mode":
		if _, err := format.ParseMode(value); err != nil {
			return err
		}
		cfg.Mode = value
	case "backend":
		cfg.Backend = value
	case "baseBranch":
		cfg.BaseBranch = value
	case "defaultBranch":
		cfg.DefaultBranch = value
	case "format":
		cfg.Format = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return cfg.Validate()
}
