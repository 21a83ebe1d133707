package swing

import (
	"strconv"
	"testing"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// swingTimes are the sample instants used by synthetic swings, all inside the
// default action window.
var swingTimes = []float64{
	-0.46, -0.42, -0.38, -0.34, -0.30, -0.26,
	-0.22, -0.18, -0.14, -0.10, -0.06, -0.02,
}

// makeSwingRows builds a dense synthetic swing: every segment holds half its
// peak at every sample except the one at its peak time, which carries the
// full peak. Peak times must be members of swingTimes.
func makeSwingRows(t *testing.T, swingID string, peaks map[Segment]float64, peakTimes map[Segment]float64) []MotionRow {
	t.Helper()

	onGrid := func(ts float64) bool {
		for _, st := range swingTimes {
			if st == ts {
				return true
			}
		}
		return false
	}
	for seg, ts := range peakTimes {
		if !onGrid(ts) {
			t.Fatalf("peak time %v for segment %s is not on the sample grid", ts, seg)
		}
	}

	rows := make([]MotionRow, 0, len(swingTimes))
	for _, ts := range swingTimes {
		energy := make(map[Segment]float64, len(peaks))
		for seg, peak := range peaks {
			if peakTimes[seg] == ts {
				energy[seg] = peak
			} else {
				energy[seg] = peak / 2
			}
		}
		rows = append(rows, MotionRow{
			SwingID:    swingID,
			TimeOffset: ts,
			HasTime:    true,
			Energy:     energy,
		})
	}
	return rows
}

// properPeakTimes returns peak times with a clean ground-up sequence and a
// legs-to-arms gap of 0.2s.
func properPeakTimes() map[Segment]float64 {
	return map[Segment]float64{
		SegmentLegs:  -0.30,
		SegmentTorso: -0.26,
		SegmentArms:  -0.10,
		SegmentBat:   -0.06,
		SegmentTotal: -0.10,
	}
}

// fullPeaks returns a plausible well-instrumented peak set.
func fullPeaks(legs, torso, arms, bat, total float64) map[Segment]float64 {
	return map[Segment]float64{
		SegmentLegs:  legs,
		SegmentTorso: torso,
		SegmentArms:  arms,
		SegmentBat:   bat,
		SegmentTotal: total,
	}
}
