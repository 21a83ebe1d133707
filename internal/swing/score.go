package swing

import "math"

// Scale bounds of the scouting-style 20-80 scale, where 50 is average.
const (
	ScaleMin = 20
	ScaleMax = 80
	// ScaleMidpoint is the fallback for variability scores when the sample
	// size is too small for CV to mean anything.
	ScaleMidpoint = 50
)

// Rescale maps a raw value onto the bounded 20-80 scale: linear position in
// the band, clamped to [0,1], optionally inverted for metrics where lower is
// better, then 20 + round(fraction*60). Every sub-score is built from this
// one primitive so all four Bs share a deterministic, monotone transform.
func Rescale(value float64, band Band, invert bool) int {
	frac := (value - band.Min) / (band.Max - band.Min)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if invert {
		frac = 1 - frac
	}
	return int(math.Round(float64(ScaleMin) + frac*float64(ScaleMax-ScaleMin)))
}

func roundScore(v float64) int {
	return int(math.Round(v))
}

// bodyScore blends a ground-flow term (legs peak) with a core-flow term
// (torso peak and legs->torso transfer).
func bodyScore(fs SessionFeatureSet, cfg Config) int {
	ground := float64(Rescale(fs.MeanPeak[SegmentLegs], cfg.Bands.LegsPeak, false))
	core := (float64(Rescale(fs.MeanPeak[SegmentTorso], cfg.Bands.TorsoPeak, false)) +
		float64(Rescale(fs.MeanLegsToTorso, cfg.Bands.LegsToTorso, false))) / 2
	return roundScore((ground + core) / 2)
}

// batScore blends upper flow, bat delivery, and efficiency. Sessions without
// credible bat instrumentation score on the upper-flow proxy alone rather
// than being punished for absent sensors.
func batScore(fs SessionFeatureSet, cfg Config) int {
	upper := (float64(Rescale(fs.MeanPeak[SegmentArms], cfg.Bands.ArmsPeak, false)) +
		float64(Rescale(fs.MeanTorsoToArms, cfg.Bands.TorsoToArms, false))) / 2
	if !fs.CredibleBat {
		return roundScore(upper)
	}
	delivery := float64(Rescale(fs.MeanPeak[SegmentBat], cfg.Bands.BatPeak, false))
	efficiency := float64(Rescale(fs.MeanTotalEfficiency, cfg.Bands.TotalEfficiency, false))
	return roundScore((upper + delivery + efficiency) / 3)
}

// brainScore rewards low swing-to-swing variability in the lower half of the
// chain. Below MinSwingsForCV the CVs are statistical noise, so the score
// defaults to the scale midpoint.
func brainScore(fs SessionFeatureSet, cfg Config) int {
	if fs.SwingCount < cfg.MinSwingsForCV {
		return ScaleMidpoint
	}
	legs := float64(Rescale(fs.PeakCV[SegmentLegs], cfg.Bands.LegsCV, true))
	torso := float64(Rescale(fs.PeakCV[SegmentTorso], cfg.Bands.TorsoCV, true))
	return roundScore((legs + torso) / 2)
}

// ballScore rewards repeatable delivery: bat-peak variability when bat data
// is credible, arms-peak variability otherwise.
func ballScore(fs SessionFeatureSet, cfg Config) int {
	if fs.SwingCount < cfg.MinSwingsForCV {
		return ScaleMidpoint
	}
	if fs.CredibleBat {
		return Rescale(fs.PeakCV[SegmentBat], cfg.Bands.BatCV, true)
	}
	return Rescale(fs.PeakCV[SegmentArms], cfg.Bands.ArmsCV, true)
}

// ScoreFeatures maps a SessionFeatureSet onto the four B sub-scores, the
// weighted composite, and the weakest category. A zero-swing session
// short-circuits to an all-zero result with the insufficient-data leak; the
// rescaling math never runs on empty aggregates.
//
// Feeding a result's RawMetrics back through ScoreFeatures with the same
// config reproduces the sub-scores exactly.
func ScoreFeatures(fs SessionFeatureSet, cfg Config) ScoreResult {
	if fs.SwingCount == 0 {
		return ScoreResult{
			Leak:         ClassifyLeak(fs, cfg),
			MotorProfile: ProfileUnknown,
			RawMetrics:   fs,
		}
	}

	res := ScoreResult{
		Brain:        brainScore(fs, cfg),
		Body:         bodyScore(fs, cfg),
		Bat:          batScore(fs, cfg),
		Ball:         ballScore(fs, cfg),
		Leak:         ClassifyLeak(fs, cfg),
		MotorProfile: ClassifyMotorProfile(fs, cfg),
		RawMetrics:   fs,
	}

	res.Composite = roundScore(
		cfg.Weights.Body*float64(res.Body) +
			cfg.Weights.Bat*float64(res.Bat) +
			cfg.Weights.Brain*float64(res.Brain) +
			cfg.Weights.Ball*float64(res.Ball))

	// Ties resolve to the first minimum in fixed category order
	// (brain, body, bat, ball).
	res.WeakestCategory = Categories[0]
	for _, c := range Categories[1:] {
		if res.Score(c) < res.Score(res.WeakestCategory) {
			res.WeakestCategory = c
		}
	}

	return res
}
