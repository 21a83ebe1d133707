package swing

import "fmt"

// Band is a [Min,Max] range used by the rescaling primitive. Values at or
// below Min map to the bottom of the 20-80 scale, values at or above Max to
// the top.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate rejects degenerate bands at load time so per-row math never has to.
func (b Band) Validate(name string) error {
	if b.Min >= b.Max {
		return fmt.Errorf("band %s: min %v must be below max %v", name, b.Min, b.Max)
	}
	return nil
}

// Weights are the composite blend. They are tuned empirically and treated as
// locked; changing them is a deliberate, logged decision.
type Weights struct {
	Body  float64 `json:"body"`
	Bat   float64 `json:"bat"`
	Brain float64 `json:"brain"`
	Ball  float64 `json:"ball"`
}

// Bands holds every rescaling band keyed by the metric it scales.
type Bands struct {
	LegsPeak        Band `json:"legs_peak"`
	TorsoPeak       Band `json:"torso_peak"`
	ArmsPeak        Band `json:"arms_peak"`
	BatPeak         Band `json:"bat_peak"`
	LegsToTorso     Band `json:"legs_to_torso"`
	TorsoToArms     Band `json:"torso_to_arms"`
	TotalEfficiency Band `json:"total_efficiency"`
	LegsCV          Band `json:"legs_cv"`
	TorsoCV         Band `json:"torso_cv"`
	ArmsCV          Band `json:"arms_cv"`
	BatCV           Band `json:"bat_cv"`
}

// LeakThresholds are the fractions the leak cascade compares against,
// evaluated in cascade priority order.
type LeakThresholds struct {
	NoBatDelivery float64 `json:"no_bat_delivery"` // rule 1: fraction of swings lacking bat energy
	LateLegs      float64 `json:"late_legs"`       // rule 2: legs peak after arms peak
	TorsoBypass   float64 `json:"torso_bypass"`    // rule 3: arms peak before torso peak
	EarlyArms     float64 `json:"early_arms"`      // rule 4: proper-sequence fraction below this
	CleanTransfer float64 `json:"clean_transfer"`  // rule 5: proper-sequence fraction at or above this
}

// ProfileGaps band the mean legs-to-arms peak-time gap (seconds) into motor
// profiles. Gaps under Spinner classify as spinner, under Whipper as whipper,
// under Slingshotter as slingshotter, anything wider as titan.
type ProfileGaps struct {
	Spinner      float64 `json:"spinner"`
	Whipper      float64 `json:"whipper"`
	Slingshotter float64 `json:"slingshotter"`
}

// Config is the engine's single constants table: action window, density
// floor, rescale bands, composite weights, and cascade thresholds. All values
// are tuned empirically; the engine never mutates a Config.
type Config struct {
	// Action window, seconds relative to the reference event.
	WindowStart float64 `json:"window_start"`
	WindowEnd   float64 `json:"window_end"`

	// MinRowsPerSwing discards swings with too few in-window samples for
	// reliable peak detection.
	MinRowsPerSwing int `json:"min_rows_per_swing"`

	// BatNoiseFloor is the energy above which bat instrumentation counts as
	// credible.
	BatNoiseFloor float64 `json:"bat_noise_floor"`

	// MinSwingsForCV is the sample size below which variability scores fall
	// back to the scale midpoint.
	MinSwingsForCV int `json:"min_swings_for_cv"`

	Bands       Bands          `json:"bands"`
	Weights     Weights        `json:"weights"`
	Leak        LeakThresholds `json:"leak_thresholds"`
	ProfileGaps ProfileGaps    `json:"profile_gaps"`

	// MaxDrills caps drill prescriptions per session.
	MaxDrills int `json:"max_drills"`
}

// DefaultConfig returns the locked tuning table. These values mirror
// config/tuning.defaults.json; the JSON file is the source of truth for
// deployments, this copy keeps the engine usable without one.
func DefaultConfig() Config {
	return Config{
		WindowStart:     -0.5,
		WindowEnd:       0.1,
		MinRowsPerSwing: 10,
		BatNoiseFloor:   10,
		MinSwingsForCV:  3,
		Bands: Bands{
			LegsPeak:        Band{Min: 50, Max: 350},
			TorsoPeak:       Band{Min: 30, Max: 200},
			ArmsPeak:        Band{Min: 40, Max: 250},
			BatPeak:         Band{Min: 100, Max: 500},
			LegsToTorso:     Band{Min: 0.2, Max: 0.8},
			TorsoToArms:     Band{Min: 0.6, Max: 2.2},
			TotalEfficiency: Band{Min: 0.3, Max: 0.8},
			LegsCV:          Band{Min: 0.05, Max: 0.5},
			TorsoCV:         Band{Min: 0.05, Max: 0.5},
			ArmsCV:          Band{Min: 0.05, Max: 0.5},
			BatCV:           Band{Min: 0.05, Max: 0.5},
		},
		Weights: Weights{Body: 0.35, Bat: 0.30, Brain: 0.20, Ball: 0.15},
		Leak: LeakThresholds{
			NoBatDelivery: 0.5,
			LateLegs:      0.5,
			TorsoBypass:   0.5,
			EarlyArms:     0.4,
			CleanTransfer: 0.8,
		},
		ProfileGaps: ProfileGaps{Spinner: 0.04, Whipper: 0.08, Slingshotter: 0.15},
		MaxDrills:   3,
	}
}

// Validate checks the table once at load. Anything invalid fails fast here
// rather than surfacing as bad math per session.
func (c Config) Validate() error {
	if c.WindowStart >= c.WindowEnd {
		return fmt.Errorf("action window start %v must be before end %v", c.WindowStart, c.WindowEnd)
	}
	if c.MinRowsPerSwing < 1 {
		return fmt.Errorf("min_rows_per_swing must be positive, got %d", c.MinRowsPerSwing)
	}
	if c.BatNoiseFloor < 0 {
		return fmt.Errorf("bat_noise_floor must be non-negative, got %v", c.BatNoiseFloor)
	}
	if c.MinSwingsForCV < 2 {
		return fmt.Errorf("min_swings_for_cv must be at least 2, got %d", c.MinSwingsForCV)
	}

	bandChecks := []struct {
		name string
		band Band
	}{
		{"legs_peak", c.Bands.LegsPeak},
		{"torso_peak", c.Bands.TorsoPeak},
		{"arms_peak", c.Bands.ArmsPeak},
		{"bat_peak", c.Bands.BatPeak},
		{"legs_to_torso", c.Bands.LegsToTorso},
		{"torso_to_arms", c.Bands.TorsoToArms},
		{"total_efficiency", c.Bands.TotalEfficiency},
		{"legs_cv", c.Bands.LegsCV},
		{"torso_cv", c.Bands.TorsoCV},
		{"arms_cv", c.Bands.ArmsCV},
		{"bat_cv", c.Bands.BatCV},
	}
	for _, bc := range bandChecks {
		if err := bc.band.Validate(bc.name); err != nil {
			return err
		}
	}

	for name, w := range map[string]float64{
		"body": c.Weights.Body, "bat": c.Weights.Bat,
		"brain": c.Weights.Brain, "ball": c.Weights.Ball,
	} {
		if w <= 0 {
			return fmt.Errorf("weight %s must be positive, got %v", name, w)
		}
	}

	for name, th := range map[string]float64{
		"no_bat_delivery": c.Leak.NoBatDelivery,
		"late_legs":       c.Leak.LateLegs,
		"torso_bypass":    c.Leak.TorsoBypass,
		"early_arms":      c.Leak.EarlyArms,
		"clean_transfer":  c.Leak.CleanTransfer,
	} {
		if th < 0 || th > 1 {
			return fmt.Errorf("leak threshold %s must be within [0,1], got %v", name, th)
		}
	}

	if !(c.ProfileGaps.Spinner < c.ProfileGaps.Whipper && c.ProfileGaps.Whipper < c.ProfileGaps.Slingshotter) {
		return fmt.Errorf("profile gaps must be strictly increasing: spinner %v, whipper %v, slingshotter %v",
			c.ProfileGaps.Spinner, c.ProfileGaps.Whipper, c.ProfileGaps.Slingshotter)
	}

	if c.MaxDrills < 1 {
		return fmt.Errorf("max_drills must be positive, got %d", c.MaxDrills)
	}
	return nil
}
