package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MOMENTUM_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gesture.SafeZone != 100 || cfg.Gesture.ScrollUpThreshold != 150 {
		t.Fatalf("scroll defaults wrong: %+v", cfg.Gesture)
	}
	if cfg.Gesture.SwipeThreshold != 50 || cfg.Gesture.VelocityThreshold != 0.3 || cfg.Gesture.MaxVerticalMovement != 30 {
		t.Fatalf("swipe defaults wrong: %+v", cfg.Gesture)
	}
	if !cfg.Gesture.ChromeAutoHide {
		t.Fatalf("chrome auto-hide should default on")
	}
	if cfg.Trace.Enabled {
		t.Fatalf("tracing should default off")
	}
	if cfg.Database.Path == "" {
		t.Fatalf("database path must have a default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[gesture]
safe_zone = 40
swipe_threshold = 25

[trace]
enabled = true
keep = 100
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MOMENTUM_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gesture.SafeZone != 40 {
		t.Fatalf("safe_zone = %v, want 40", cfg.Gesture.SafeZone)
	}
	if cfg.Gesture.SwipeThreshold != 25 {
		t.Fatalf("swipe_threshold = %v, want 25", cfg.Gesture.SwipeThreshold)
	}
	if cfg.Gesture.ScrollUpThreshold != 150 {
		t.Fatalf("unset keys must keep defaults, got %v", cfg.Gesture.ScrollUpThreshold)
	}
	if !cfg.Trace.Enabled || cfg.Trace.Keep != 100 {
		t.Fatalf("trace config wrong: %+v", cfg.Trace)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MOMENTUM_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("MOMENTUM_TRACE_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Trace.Enabled {
		t.Fatalf("env override should enable tracing")
	}
}
