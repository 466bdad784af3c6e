package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Display.Colormap != "viridis" {
		t.Errorf("colormap: got %q", cfg.Display.Colormap)
	}
	if cfg.Display.WindowLow != -100 || cfg.Display.WindowHigh != 1000 {
		t.Errorf("window: got (%v, %v)", cfg.Display.WindowLow, cfg.Display.WindowHigh)
	}
	if cfg.Volume.Opacity != 0.25 {
		t.Errorf("opacity: got %v", cfg.Volume.Opacity)
	}
	if cfg.Display.Volumetric {
		t.Error("volumetric should default to false")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Display.Colormap != "viridis" {
		t.Errorf("missing file should yield defaults, got %q", cfg.Display.Colormap)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxview.yaml")
	body := "display:\n  colormap: jet\n  windowHigh: 255\nvolume:\n  opacity: 0.5\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Display.Colormap != "jet" {
		t.Errorf("colormap: got %q", cfg.Display.Colormap)
	}
	if cfg.Display.WindowHigh != 255 {
		t.Errorf("windowHigh: got %v", cfg.Display.WindowHigh)
	}
	// untouched keys keep their defaults
	if cfg.Display.WindowLow != -100 {
		t.Errorf("windowLow: got %v", cfg.Display.WindowLow)
	}
	if cfg.Volume.Opacity != 0.5 {
		t.Errorf("opacity: got %v", cfg.Volume.Opacity)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "voxview.yaml")

	cfg := DefaultConfig()
	cfg.Display.Colormap = "inferno"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Display.Colormap != "inferno" {
		t.Errorf("round trip: got %q", loaded.Display.Colormap)
	}
}
