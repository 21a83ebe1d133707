// Package config loads the engine's tuning table from JSON. The thresholds,
// bands, and weights in the table are tuned empirically and treated as
// locked: changing them is a deliberate, logged decision, never a code
// change.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/swinglab-data/swing.report/internal/swing"
)

// DefaultConfigPath is the path to the canonical tuning defaults file, the
// single source of truth for deployed tuning values.
const DefaultConfigPath = "config/tuning.defaults.json"

// TuningConfig is the JSON schema for the tuning file. Every field is
// optional; fields omitted from the file keep the engine defaults, so
// partial overrides are safe.
type TuningConfig struct {
	WindowStart     *float64 `json:"window_start,omitempty"`
	WindowEnd       *float64 `json:"window_end,omitempty"`
	MinRowsPerSwing *int     `json:"min_rows_per_swing,omitempty"`
	BatNoiseFloor   *float64 `json:"bat_noise_floor,omitempty"`
	MinSwingsForCV  *int     `json:"min_swings_for_cv,omitempty"`
	MaxDrills       *int     `json:"max_drills,omitempty"`

	Bands          map[string]*swing.Band `json:"bands,omitempty"`
	Weights        map[string]*float64    `json:"weights,omitempty"`
	LeakThresholds map[string]*float64    `json:"leak_thresholds,omitempty"`
	ProfileGaps    map[string]*float64    `json:"profile_gaps,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields unset.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads and validates a tuning file. Validation happens once
// here, at load: an invalid band or threshold fails fast instead of surfacing
// as bad math per session.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Materializing runs swing.Config.Validate, so a bad table never loads.
	if _, err := cfg.Engine(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults, searching upward from
// the working directory. Intended for test setup; panics on failure.
func MustLoadDefaultConfig() *TuningConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/<pkg>/
		"../../../" + DefaultConfigPath, // from cmd/tools/<pkg>/
	}
	for _, path := range candidates {
		if cfg, err := LoadTuningConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Engine materializes the tuning file over swing.DefaultConfig and validates
// the result.
func (c *TuningConfig) Engine() (swing.Config, error) {
	out := swing.DefaultConfig()

	if c.WindowStart != nil {
		out.WindowStart = *c.WindowStart
	}
	if c.WindowEnd != nil {
		out.WindowEnd = *c.WindowEnd
	}
	if c.MinRowsPerSwing != nil {
		out.MinRowsPerSwing = *c.MinRowsPerSwing
	}
	if c.BatNoiseFloor != nil {
		out.BatNoiseFloor = *c.BatNoiseFloor
	}
	if c.MinSwingsForCV != nil {
		out.MinSwingsForCV = *c.MinSwingsForCV
	}
	if c.MaxDrills != nil {
		out.MaxDrills = *c.MaxDrills
	}

	for name, band := range c.Bands {
		if band == nil {
			continue
		}
		target, ok := bandField(&out.Bands, name)
		if !ok {
			return swing.Config{}, fmt.Errorf("unknown band %q in tuning config", name)
		}
		*target = *band
	}

	for name, w := range c.Weights {
		if w == nil {
			continue
		}
		switch name {
		case "body":
			out.Weights.Body = *w
		case "bat":
			out.Weights.Bat = *w
		case "brain":
			out.Weights.Brain = *w
		case "ball":
			out.Weights.Ball = *w
		default:
			return swing.Config{}, fmt.Errorf("unknown weight %q in tuning config", name)
		}
	}

	for name, th := range c.LeakThresholds {
		if th == nil {
			continue
		}
		switch name {
		case "no_bat_delivery":
			out.Leak.NoBatDelivery = *th
		case "late_legs":
			out.Leak.LateLegs = *th
		case "torso_bypass":
			out.Leak.TorsoBypass = *th
		case "early_arms":
			out.Leak.EarlyArms = *th
		case "clean_transfer":
			out.Leak.CleanTransfer = *th
		default:
			return swing.Config{}, fmt.Errorf("unknown leak threshold %q in tuning config", name)
		}
	}

	for name, gap := range c.ProfileGaps {
		if gap == nil {
			continue
		}
		switch name {
		case "spinner":
			out.ProfileGaps.Spinner = *gap
		case "whipper":
			out.ProfileGaps.Whipper = *gap
		case "slingshotter":
			out.ProfileGaps.Slingshotter = *gap
		default:
			return swing.Config{}, fmt.Errorf("unknown profile gap %q in tuning config", name)
		}
	}

	if err := out.Validate(); err != nil {
		return swing.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return out, nil
}

func bandField(b *swing.Bands, name string) (*swing.Band, bool) {
	switch name {
	case "legs_peak":
		return &b.LegsPeak, true
	case "torso_peak":
		return &b.TorsoPeak, true
	case "arms_peak":
		return &b.ArmsPeak, true
	case "bat_peak":
		return &b.BatPeak, true
	case "legs_to_torso":
		return &b.LegsToTorso, true
	case "torso_to_arms":
		return &b.TorsoToArms, true
	case "total_efficiency":
		return &b.TotalEfficiency, true
	case "legs_cv":
		return &b.LegsCV, true
	case "torso_cv":
		return &b.TorsoCV, true
	case "arms_cv":
		return &b.ArmsCV, true
	case "bat_cv":
		return &b.BatCV, true
	default:
		return nil, false
	}
}
