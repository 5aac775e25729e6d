package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dampsim.yaml")
	body := []byte(`
sim:
  frames: 120
  smooth_time: 0.5
  target: [1, 2, 3]
logging:
  level: debug
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Sim.Frames != 120 {
		t.Errorf("Sim.Frames = %d, want 120", cfg.Sim.Frames)
	}
	if cfg.Sim.SmoothTime != 0.5 {
		t.Errorf("Sim.SmoothTime = %v, want 0.5", cfg.Sim.SmoothTime)
	}
	if cfg.Sim.Target != [3]float32{1, 2, 3} {
		t.Errorf("Sim.Target = %v, want [1 2 3]", cfg.Sim.Target)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}

	// Untouched fields keep their defaults.
	if want := Default().Sim.TimeStep; cfg.Sim.TimeStep != want {
		t.Errorf("Sim.TimeStep = %v, want default %v", cfg.Sim.TimeStep, want)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dampsim.yaml")
	if err := os.WriteFile(path, []byte("sim:\n  time_step: -1\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Load() accepted a negative time_step")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/dampsim.yaml"); err == nil {
		t.Errorf("Load() with missing explicit path should error")
	}
}
