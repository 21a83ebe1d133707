package db

import (
	"path/filepath"
	"testing"

	"github.com/swinglab-data/swing.report/internal/swing"
)

// newTestDB opens a throwaway sqlite database for one test.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// newTestEngine builds an engine on the default constants table.
func newTestEngine(t *testing.T) *swing.Engine {
	t.Helper()
	e, err := swing.NewEngine(swing.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

// testScoreResult builds a plausible stored result for persistence tests.
func testScoreResult(t *testing.T) swing.ScoreResult {
	t.Helper()
	cfg := swing.DefaultConfig()
	fs := swing.SessionFeatureSet{
		SwingCount: 5,
		MeanPeak: map[swing.Segment]float64{
			swing.SegmentLegs: 210, swing.SegmentTorso: 105, swing.SegmentArms: 145,
			swing.SegmentBat: 305, swing.SegmentTotal: 565,
		},
		PeakCV: map[swing.Segment]float64{
			swing.SegmentLegs: 0.08, swing.SegmentTorso: 0.07, swing.SegmentArms: 0.09,
			swing.SegmentBat: 0.06, swing.SegmentTotal: 0.05,
		},
		MeanLegsToTorso:        0.5,
		MeanTorsoToArms:        1.4,
		MeanTotalEfficiency:    0.54,
		CredibleBat:            true,
		ProperSequenceFraction: 0.9,
		DataQuality:            swing.QualityGood,
	}
	return swing.ScoreFeatures(fs, cfg)
}
