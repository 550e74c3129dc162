package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"savescout/internal/config"
	"savescout/internal/launcher"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "savescout", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	wantDB := filepath.Join(tempHome, ".local", "share", "savescout", "titles.db")
	if cfg.Titles.DatabasePath != wantDB {
		t.Fatalf("unexpected title db path: got %q want %q", cfg.Titles.DatabasePath, wantDB)
	}
	if len(cfg.Roots) != 0 {
		t.Fatalf("expected no roots by default, got %v", cfg.Roots)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadDebugEnvironmentEnablesDiagnostics(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SAVESCOUT_DEBUG", "")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Diagnostics.Debug {
		t.Fatal("expected presence of SAVESCOUT_DEBUG to enable diagnostics")
	}
}

func TestLoadCustomPathWithRoots(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(t.TempDir(), "savescout.toml")

	contents := `
[[roots]]
path = "~/heroic"
store = "heroic"

[[roots]]
path = "/games/legendary"
store = "Legendary"

[logging]
level = "TRACE"
format = "json"
`
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if len(cfg.Roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(cfg.Roots))
	}
	if cfg.Roots[0].Path != filepath.Join(tempHome, "heroic") || cfg.Roots[0].Store != launcher.StoreHeroic {
		t.Fatalf("unexpected first root: %+v", cfg.Roots[0])
	}
	if cfg.Roots[1].Store != launcher.StoreLegendary {
		t.Fatalf("expected store name to be matched case-insensitively, got %q", cfg.Roots[1].Store)
	}
	if cfg.Logging.Level != "trace" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	heroic := cfg.HeroicRoots()
	if len(heroic) != 1 || heroic[0].Path != cfg.Roots[0].Path {
		t.Fatalf("unexpected heroic roots: %v", heroic)
	}
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "savescout.toml")
	contents := "[[roots]]\npath = \"/x\"\nstore = \"itch\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil {
		t.Fatal("expected unknown store to fail")
	}
	if !strings.Contains(err.Error(), "itch") {
		t.Fatalf("expected error to name the store, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if len(cfg.Roots) != 1 || cfg.Roots[0].Store != launcher.StoreHeroic {
		t.Fatalf("expected sample to declare one heroic root, got %+v", cfg.Roots)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Roots = []launcher.Root{{Path: "", Store: launcher.StoreHeroic}}
	if err := cfg.Validate(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for empty root path, got %v", err)
	}

	cfg = config.Default()
	cfg.Roots = []launcher.Root{{Path: "/x"}}
	if err := cfg.Validate(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for missing store, got %v", err)
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown level, got %v", err)
	}
}

func TestLoadExpandsLogFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(t.TempDir(), "savescout.toml")
	contents := "[logging]\nfile = \"~/logs/savescout.log\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(tempHome, "logs", "savescout.log"); cfg.Logging.File != want {
		t.Fatalf("unexpected log file: got %q want %q", cfg.Logging.File, want)
	}
}
