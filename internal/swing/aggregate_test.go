package swing

import (
	"math"
	"testing"
)

// feature builds a SwingFeature directly, bypassing row synthesis, for
// aggregate- and score-level tests.
func feature(legs, torso, arms, bat, total float64, times map[Segment]float64, hasBat, proper bool) SwingFeature {
	f := SwingFeature{
		PeakEnergy: map[Segment]float64{
			SegmentLegs: legs, SegmentTorso: torso, SegmentArms: arms,
			SegmentBat: bat, SegmentTotal: total,
		},
		PeakTime:       times,
		HasBatData:     hasBat,
		ProperSequence: proper,
	}
	if legs > 0 {
		f.LegsToTorso = torso / legs
	}
	if torso > 0 {
		f.TorsoToArms = arms / torso
	}
	if hasBat && total > 0 {
		f.TotalEfficiency = bat / total
	}
	return f
}

func scenarioTimes() map[Segment]float64 {
	return map[Segment]float64{
		SegmentLegs: -0.30, SegmentTorso: -0.26, SegmentArms: -0.20,
		SegmentBat: -0.15, SegmentTotal: -0.20,
	}
}

// scenarioFeatures is the three-swing reference session: clean sequence,
// credible bat, tight variability.
func scenarioFeatures() []SwingFeature {
	return []SwingFeature{
		feature(200, 100, 150, 300, 550, scenarioTimes(), true, true),
		feature(220, 110, 140, 310, 580, scenarioTimes(), true, true),
		feature(210, 105, 145, 305, 565, scenarioTimes(), true, true),
	}
}

func TestAggregate_MeansAndCVs(t *testing.T) {
	cfg := DefaultConfig()
	fs := Aggregate(scenarioFeatures(), cfg)

	if fs.SwingCount != 3 {
		t.Fatalf("expected 3 swings, got %d", fs.SwingCount)
	}
	if got, want := fs.MeanPeak[SegmentLegs], 210.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("mean legs peak = %v, want %v", got, want)
	}
	if got, want := fs.MeanLegsToTorso, 0.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("mean legs_to_torso = %v, want %v", got, want)
	}

	// Population std dev of {200,220,210} is sqrt(200/3); CV over mean 210.
	wantCV := math.Sqrt(200.0/3.0) / 210.0
	if got := fs.PeakCV[SegmentLegs]; math.Abs(got-wantCV) > 1e-9 {
		t.Errorf("legs CV = %v, want %v", got, wantCV)
	}

	if !fs.CredibleBat {
		t.Error("expected credible bat data")
	}
	if fs.ProperSequenceFraction != 1.0 {
		t.Errorf("expected proper fraction 1.0, got %v", fs.ProperSequenceFraction)
	}
	if got, want := fs.MeanLegsArmsGap, 0.1; math.Abs(got-want) > 1e-9 {
		t.Errorf("mean legs-arms gap = %v, want %v", got, want)
	}
	if fs.DataQuality != QualityFair {
		t.Errorf("expected fair quality at 3 swings, got %q", fs.DataQuality)
	}
}

func TestAggregate_CVDegradesBelowTwoSwings(t *testing.T) {
	cfg := DefaultConfig()
	fs := Aggregate(scenarioFeatures()[:1], cfg)
	for _, seg := range Segments {
		if fs.PeakCV[seg] != 0 {
			t.Errorf("segment %s: expected CV 0 with one swing, got %v", seg, fs.PeakCV[seg])
		}
	}
}

func TestAggregate_CVZeroWhenMeanZero(t *testing.T) {
	cfg := DefaultConfig()
	features := []SwingFeature{
		feature(0, 100, 150, 300, 550, scenarioTimes(), true, true),
		feature(0, 110, 140, 310, 580, scenarioTimes(), true, true),
	}
	fs := Aggregate(features, cfg)
	if got := fs.PeakCV[SegmentLegs]; got != 0 || math.IsNaN(got) {
		t.Errorf("expected CV 0 (not NaN) with zero mean, got %v", got)
	}
}

func TestAggregate_EmptySession(t *testing.T) {
	cfg := DefaultConfig()
	fs := Aggregate(nil, cfg)
	if fs.SwingCount != 0 {
		t.Fatalf("expected zero swings, got %d", fs.SwingCount)
	}
	if fs.DataQuality != QualityInsufficient {
		t.Errorf("expected insufficient quality, got %q", fs.DataQuality)
	}
	if fs.CredibleBat {
		t.Error("empty session must not claim credible bat data")
	}
}

func TestAggregate_NoBatFraction(t *testing.T) {
	cfg := DefaultConfig()
	features := []SwingFeature{
		feature(200, 100, 150, 0, 550, scenarioTimes(), false, true),
		feature(210, 105, 145, 0, 560, scenarioTimes(), false, true),
		feature(220, 110, 140, 300, 580, scenarioTimes(), true, true),
	}
	fs := Aggregate(features, cfg)
	if got, want := fs.NoBatFraction, 2.0/3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("no-bat fraction = %v, want %v", got, want)
	}
	// One credible swing is enough to tag the session.
	if !fs.CredibleBat {
		t.Error("session with one instrumented swing should count as credible")
	}
}

func TestQualityForCount(t *testing.T) {
	cases := []struct {
		n    int
		want DataQuality
	}{
		{0, QualityInsufficient},
		{1, QualityLimited},
		{2, QualityLimited},
		{3, QualityFair},
		{4, QualityFair},
		{5, QualityGood},
		{9, QualityGood},
		{10, QualityExcellent},
		{25, QualityExcellent},
	}
	for _, c := range cases {
		if got := qualityForCount(c.n); got != c.want {
			t.Errorf("qualityForCount(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
