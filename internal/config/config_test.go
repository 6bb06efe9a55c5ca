package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Mode != "raw" {
		t.Errorf("Default mode = %q, want %q", cfg.Mode, "raw")
	}
	if cfg.Backend != "exec" {
		t.Errorf("Default backend = %q, want %q", cfg.Backend, "exec")
	}
	if cfg.DefaultBranch != "main" {
		t.Errorf("Default defaultBranch = %q, want %q", cfg.DefaultBranch, "main")
	}
	if cfg.Format != "markdown" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "markdown")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config is invalid: %v", err)
	}
}

func TestMergeEnv(t *testing.T) {
	t.Setenv("COMMIT_FORMAT_MODE", "paragraph")
	t.Setenv("COMMIT_FORMAT_BACKEND", "gogit")
	t.Setenv("COMMIT_FORMAT_BASE_BRANCH", "develop")
	t.Setenv("COMMIT_FORMAT_DEFAULT_BRANCH", "trunk")
	t.Setenv("COMMIT_FORMAT_FORMAT", "json")

	cfg := Default()
	if err := mergeEnv(&cfg); err != nil {
		t.Fatalf("mergeEnv error: %v", err)
	}

	if cfg.Mode != "paragraph" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "paragraph")
	}
	if cfg.Backend != "gogit" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "gogit")
	}
	if cfg.BaseBranch != "develop" {
		t.Errorf("BaseBranch = %q, want %q", cfg.BaseBranch, "develop")
	}
	if cfg.DefaultBranch != "trunk" {
		t.Errorf("DefaultBranch = %q, want %q", cfg.DefaultBranch, "trunk")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
}

func TestMergeEnv_InvalidMode(t *testing.T) {
	t.Setenv("COMMIT_FORMAT_MODE", "wrap")
	cfg := Default()
	if err := mergeEnv(&cfg); err == nil {
		t.Error("Expected error for invalid COMMIT_FORMAT_MODE")
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	overrides := map[string]string{
		"mode":          "paragraph",
		"backend":       "gogit",
		"baseBranch":    "release",
		"defaultBranch": "trunk",
		"format":        "json",
	}
	mergeOverrides(&cfg, overrides)

	if cfg.Mode != "paragraph" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "paragraph")
	}
	if cfg.Backend != "gogit" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "gogit")
	}
	if cfg.BaseBranch != "release" {
		t.Errorf("BaseBranch = %q, want %q", cfg.BaseBranch, "release")
	}
	if cfg.DefaultBranch != "trunk" {
		t.Errorf("DefaultBranch = %q, want %q", cfg.DefaultBranch, "trunk")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
}

func TestMergeOverrides_Nil(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, nil)
	if cfg != Default() {
		t.Errorf("config changed with nil overrides: %+v", cfg)
	}
}

func TestMergeFile_EmptyFileKeepsDefaults(t *testing.T) {
	dst := Default()
	mergeFile(&dst, Config{})
	if dst != Default() {
		t.Errorf("empty file changed defaults: %+v", dst)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()
	tests := []struct {
		key, value string
		check      func(Config) string
	}{
		{"mode", "paragraph", func(c Config) string { return c.Mode }},
		{"backend", "gogit", func(c Config) string { return c.Backend }},
		{"baseBranch", "develop", func(c Config) string { return c.BaseBranch }},
		{"defaultBranch", "trunk", func(c Config) string { return c.DefaultBranch }},
		{"format", "json", func(c Config) string { return c.Format }},
	}
	for _, tt := range tests {
		if err := SetField(&cfg, tt.key, tt.value); err != nil {
			t.Fatalf("SetField(%q) error: %v", tt.key, err)
		}
		if got := tt.check(cfg); got != tt.value {
			t.Errorf("after SetField(%q), value = %q, want %q", tt.key, got, tt.value)
		}
	}
}

func TestSetField_UnknownKey(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "provider", "openai"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestSetField_InvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"mode":    "wrap",
		"backend": "svn",
		"format":  "html",
	} {
		cfg := Default()
		if err := SetField(&cfg, key, value); err == nil {
			t.Errorf("SetField(%q, %q) should fail", key, value)
		}
	}
}

func TestConfigPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	fileCfg := Config{Mode: "paragraph", BaseBranch: "from-file", Format: "json"}
	if err := Save(fileCfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	t.Setenv("COMMIT_FORMAT_BASE_BRANCH", "from-env")

	cfg, err := Load(map[string]string{"format": "markdown"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Mode != "paragraph" {
		t.Errorf("Mode = %q, want file value %q", cfg.Mode, "paragraph")
	}
	if cfg.BaseBranch != "from-env" {
		t.Errorf("BaseBranch = %q, want env value %q", cfg.BaseBranch, "from-env")
	}
	if cfg.Format != "markdown" {
		t.Errorf("Format = %q, want override %q", cfg.Format, "markdown")
	}
	if cfg.Backend != "exec" {
		t.Errorf("Backend = %q, want default %q", cfg.Backend, "exec")
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg-test/commit-format" {
		t.Errorf("ConfigDir = %q, want %q", dir, "/tmp/xdg-test/commit-format")
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if path != "/tmp/xdg-test/commit-format/config.json" {
		t.Errorf("ConfigPath = %q, want %q", path, "/tmp/xdg-test/commit-format/config.json")
	}
}

func TestLoadFile_NoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	// Should return zero config, not defaults
	if cfg.Mode != "" {
		t.Errorf("Mode should be empty for missing file, got %q", cfg.Mode)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "commit-format")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestLoad_RejectsInvalidFileValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := Save(Config{Backend: "svn"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := Load(nil); err == nil {
		t.Error("Expected error for invalid backend in config file")
	}
}
