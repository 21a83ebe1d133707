// Package swing converts per-frame kinetic-energy exports from a bat-sensor
// motion-capture session into bounded 20-80 scores, a dominant energy-leak
// classification, and a motor-profile label. The pipeline is strictly
// feed-forward: parse -> segment -> extract -> aggregate -> score/classify.
// Every stage is a pure transformation so each can be tested in isolation,
// and scoring the same rows twice produces an identical result.
package swing

// Segment identifies a body region tracked by the motion-capture export.
type Segment string

const (
	SegmentLegs  Segment = "legs"
	SegmentTorso Segment = "torso"
	SegmentArms  Segment = "arms"
	SegmentBat   Segment = "bat"
	SegmentTotal Segment = "total"
)

// Segments lists all tracked segments in canonical order.
var Segments = []Segment{SegmentLegs, SegmentTorso, SegmentArms, SegmentBat, SegmentTotal}

// MotionRow is one sampled instant of a swing. Rows for the same SwingID are
// not assumed to arrive sorted; segmentation windows and sorts them itself.
type MotionRow struct {
	SwingID    string              `json:"swing_id"`
	TimeOffset float64             `json:"time_offset"` // seconds relative to the reference event
	HasTime    bool                `json:"-"`           // false when the export omitted the time column value
	Energy     map[Segment]float64 `json:"segment_energy"`
	Extra      map[string]string   `json:"extra,omitempty"` // passthrough for non-numeric columns
}

// EnergyAt returns the row's energy for a segment, 0 when absent.
func (r MotionRow) EnergyAt(seg Segment) float64 {
	if r.Energy == nil {
		return 0
	}
	return r.Energy[seg]
}

// SwingFeature holds the per-swing features derived by the extractor.
// It is immutable once created.
type SwingFeature struct {
	SwingID string `json:"swing_id"`

	PeakEnergy map[Segment]float64 `json:"peak_energy"`
	PeakTime   map[Segment]float64 `json:"peak_time"`

	LegsToTorso     float64 `json:"legs_to_torso"`
	TorsoToArms     float64 `json:"torso_to_arms"`
	TotalEfficiency float64 `json:"total_efficiency"`

	// HasBatData is false when the swing lacks credible bat instrumentation;
	// TotalEfficiency is 0 in that case.
	HasBatData bool `json:"has_bat_data"`

	// ProperSequence is true when legs peak no later than torso and torso no
	// later than arms. Simultaneous peaks count as proper.
	ProperSequence bool `json:"proper_sequence"`
}

// DataQuality labels how trustworthy session aggregates are, based solely on
// how many usable swings the session contains.
type DataQuality string

const (
	QualityInsufficient DataQuality = "insufficient"
	QualityLimited      DataQuality = "limited"
	QualityFair         DataQuality = "fair"
	QualityGood         DataQuality = "good"
	QualityExcellent    DataQuality = "excellent"
)

// SessionFeatureSet aggregates all SwingFeatures of one session. It is the
// sole input to the scorer and classifiers, and is echoed back on ScoreResult
// for auditability.
type SessionFeatureSet struct {
	SwingCount int `json:"swing_count"`

	MeanPeak map[Segment]float64 `json:"mean_peak"`
	// PeakCV is the population coefficient of variation of each segment's
	// peak energy across swings. 0 when the mean is 0 or fewer than 2 swings
	// are present.
	PeakCV map[Segment]float64 `json:"peak_cv"`

	MeanLegsToTorso     float64 `json:"mean_legs_to_torso"`
	MeanTorsoToArms     float64 `json:"mean_torso_to_arms"`
	MeanTotalEfficiency float64 `json:"mean_total_efficiency"`

	// CredibleBat is true when at least one swing shows bat energy above the
	// configured noise floor. Sessions without bat sensors score on an
	// upper-body proxy instead of bat metrics.
	CredibleBat bool `json:"credible_bat"`

	// Swing-level pattern fractions consumed by the leak cascade.
	NoBatFraction          float64 `json:"no_bat_fraction"`
	LateLegsFraction       float64 `json:"late_legs_fraction"`
	TorsoBypassFraction    float64 `json:"torso_bypass_fraction"`
	ProperSequenceFraction float64 `json:"proper_sequence_fraction"`

	// MeanLegsArmsGap is the mean absolute gap between legs and arms peak
	// times, in seconds. Drives the motor-profile bands.
	MeanLegsArmsGap float64 `json:"mean_legs_arms_gap"`

	DataQuality DataQuality `json:"data_quality"`
}

// Category names one of the four B sub-scores.
type Category string

const (
	CategoryBrain Category = "brain"
	CategoryBody  Category = "body"
	CategoryBat   Category = "bat"
	CategoryBall  Category = "ball"
)

// Categories lists the sub-score categories in weakest-tie-break order.
var Categories = []Category{CategoryBrain, CategoryBody, CategoryBat, CategoryBall}

// LeakType names a dominant energy-transfer failure pattern.
type LeakType string

const (
	LeakInsufficientData LeakType = "insufficient_data"
	LeakNoBatDelivery    LeakType = "no_bat_delivery"
	LeakLateLegs         LeakType = "late_legs"
	LeakTorsoBypass      LeakType = "torso_bypass"
	LeakEarlyArms        LeakType = "early_arms"
	LeakCleanTransfer    LeakType = "clean_transfer"
	LeakMixedPattern     LeakType = "mixed_pattern"
)

// LeakResult is a classified leak with its fixed caption and corrective cue.
type LeakResult struct {
	Type        LeakType `json:"type"`
	Caption     string   `json:"caption"`
	Instruction string   `json:"instruction"`
}

// MotorProfile is a coarse timing-style classification.
type MotorProfile string

const (
	ProfileSpinner      MotorProfile = "spinner"
	ProfileWhipper      MotorProfile = "whipper"
	ProfileSlingshotter MotorProfile = "slingshotter"
	ProfileTitan        MotorProfile = "titan"
	ProfileUnknown      MotorProfile = "unknown"
)

// ScoreResult is the engine's sole output. RawMetrics carries the aggregates
// the scores were derived from so a stored result can be audited, and
// re-scoring RawMetrics with the same config reproduces the sub-scores.
type ScoreResult struct {
	Brain int `json:"brain"`
	Body  int `json:"body"`
	Bat   int `json:"bat"`
	Ball  int `json:"ball"`

	Composite int `json:"composite"`

	WeakestCategory Category     `json:"weakest_category"`
	Leak            LeakResult   `json:"leak"`
	MotorProfile    MotorProfile `json:"motor_profile"`

	RawMetrics SessionFeatureSet `json:"raw_metrics"`
}

// Score returns the sub-score for a category.
func (r *ScoreResult) Score(c Category) int {
	switch c {
	case CategoryBrain:
		return r.Brain
	case CategoryBody:
		return r.Body
	case CategoryBat:
		return r.Bat
	case CategoryBall:
		return r.Ball
	}
	return 0
}
