package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Output.CSV || !cfg.Output.Plot {
		t.Error("csv and plot output should be enabled by default")
	}
	if cfg.Plot.Levels != DefaultLevels {
		t.Errorf("expected %d levels, got %d", DefaultLevels, cfg.Plot.Levels)
	}
	if cfg.LogLevel() != slog.LevelWarn {
		t.Errorf("expected warn log level, got %s", cfg.LogLevel())
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdf.yaml")
	data := []byte("output:\n  dir: results\n  csv: true\nplot:\n  levels: 12\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Output.Dir != "results" {
		t.Errorf("expected dir results, got %s", cfg.Output.Dir)
	}
	if cfg.Plot.Levels != 12 {
		t.Errorf("expected 12 levels, got %d", cfg.Plot.Levels)
	}
	if cfg.Plot.Width != DefaultPlotWidth {
		t.Errorf("unset width should keep default, got %v", cfg.Plot.Width)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.LogLevel())
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdf.yaml")
	cfg := DefaultConfig()
	cfg.Surface.ZScale = 2.5
	cfg.Output.STL = true
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("loaded config differs:\ngot  %+v\nwant %+v", got, cfg)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("plot: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
