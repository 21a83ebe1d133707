package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/swinglab-data/swing.report/internal/swing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadTuningConfig_Defaults(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	engine, err := cfg.Engine()
	if err != nil {
		t.Fatalf("default config did not materialize: %v", err)
	}
	if engine != swing.DefaultConfig() {
		t.Errorf("tuning.defaults.json drifted from swing.DefaultConfig():\nfile: %+v\ncode: %+v", engine, swing.DefaultConfig())
	}
}

func TestLoadTuningConfig_PartialOverride(t *testing.T) {
	path := writeConfig(t, `{
		"min_rows_per_swing": 5,
		"bands": {"legs_peak": {"min": 10, "max": 100}},
		"weights": {"body": 0.4}
	}`)

	cfg, err := LoadTuningConfig(path)
	if err != nil {
		t.Fatalf("LoadTuningConfig failed: %v", err)
	}
	engine, err := cfg.Engine()
	if err != nil {
		t.Fatalf("Engine() failed: %v", err)
	}

	if engine.MinRowsPerSwing != 5 {
		t.Errorf("min_rows_per_swing = %d, want 5", engine.MinRowsPerSwing)
	}
	if engine.Bands.LegsPeak != (swing.Band{Min: 10, Max: 100}) {
		t.Errorf("legs_peak band = %+v, want {10 100}", engine.Bands.LegsPeak)
	}
	if engine.Weights.Body != 0.4 {
		t.Errorf("body weight = %v, want 0.4", engine.Weights.Body)
	}
	// Untouched fields keep defaults.
	if engine.BatNoiseFloor != swing.DefaultConfig().BatNoiseFloor {
		t.Errorf("bat_noise_floor drifted to %v", engine.BatNoiseFloor)
	}
}

func TestLoadTuningConfig_InvalidBandFailsFast(t *testing.T) {
	path := writeConfig(t, `{"bands": {"legs_peak": {"min": 300, "max": 100}}}`)
	if _, err := LoadTuningConfig(path); err == nil {
		t.Fatal("expected inverted band to fail at load")
	}
}

func TestLoadTuningConfig_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, `{"bands": {"elbow_peak": {"min": 1, "max": 2}}}`)
	if _, err := LoadTuningConfig(path); err == nil {
		t.Fatal("expected unknown band name to fail at load")
	}

	path = writeConfig(t, `{"weights": {"bicep": 0.5}}`)
	if _, err := LoadTuningConfig(path); err == nil {
		t.Fatal("expected unknown weight name to fail at load")
	}
}

func TestLoadTuningConfig_RejectsNonJSONExtension(t *testing.T) {
	if _, err := LoadTuningConfig("tuning.yaml"); err == nil {
		t.Fatal("expected non-JSON extension to be rejected")
	}
}

func TestLoadTuningConfig_MissingFile(t *testing.T) {
	if _, err := LoadTuningConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected missing file to error")
	}
}
