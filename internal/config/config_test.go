package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.IBL.CubemapSize != 1024 {
		t.Errorf("expected cubemap size 1024, got %d", cfg.IBL.CubemapSize)
	}
	if cfg.IBL.PrefilterSize != 128 {
		t.Errorf("expected prefilter size 128, got %d", cfg.IBL.PrefilterSize)
	}
	if cfg.IBL.PrefilterLevels != 5 {
		t.Errorf("expected 5 prefilter levels, got %d", cfg.IBL.PrefilterLevels)
	}
	if cfg.IBL.Extension != "png" {
		t.Errorf("expected png extension, got %q", cfg.IBL.Extension)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Logging.Level)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "ember.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1920
	cfg.IBL.PrefilterLevels = 3
	cfg.Logging.Level = "debug"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Graphics.Width != 1920 {
		t.Errorf("width: got %d, want 1920", loaded.Graphics.Width)
	}
	if loaded.IBL.PrefilterLevels != 3 {
		t.Errorf("prefilter levels: got %d, want 3", loaded.IBL.PrefilterLevels)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("log level: got %q, want debug", loaded.Logging.Level)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Partial file: only graphics.width set. Everything else keeps defaults.
	path := filepath.Join(tempDir, "partial.yaml")
	if err := os.WriteFile(path, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Graphics.Width != 800 {
		t.Errorf("width: got %d, want 800", cfg.Graphics.Width)
	}
	if cfg.IBL.CubemapSize != 1024 {
		t.Errorf("cubemap size should keep default 1024, got %d", cfg.IBL.CubemapSize)
	}
}
