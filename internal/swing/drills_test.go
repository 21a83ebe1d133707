package swing

import (
	"errors"
	"testing"
)

// tableDrillSource is an in-memory prescription table for tests.
type tableDrillSource struct {
	entries []drillEntry
	err     error
	queries [][3]string
}

type drillEntry struct {
	leak    LeakType
	profile MotorProfile
	weakest Category
	drill   Drill
}

func (s *tableDrillSource) Drills(leak LeakType, profile MotorProfile, weakest Category) ([]Drill, error) {
	s.queries = append(s.queries, [3]string{string(leak), string(profile), string(weakest)})
	if s.err != nil {
		return nil, s.err
	}
	var out []Drill
	for _, e := range s.entries {
		if e.leak == leak && e.profile == profile && e.weakest == weakest {
			out = append(out, e.drill)
		}
	}
	return out, nil
}

func TestRecommendDrills_ExactMatchWins(t *testing.T) {
	cfg := DefaultConfig()
	src := &tableDrillSource{entries: []drillEntry{
		{LeakEarlyArms, ProfileWhipper, CategoryBody, Drill{Name: "step-behind", Priority: 1}},
		{LeakEarlyArms, "", CategoryBody, Drill{Name: "generic", Priority: 2}},
	}}
	res := &ScoreResult{
		Leak:            LeakInfo(LeakEarlyArms),
		MotorProfile:    ProfileWhipper,
		WeakestCategory: CategoryBody,
	}

	drills, err := RecommendDrills(src, res, cfg)
	if err != nil {
		t.Fatalf("RecommendDrills failed: %v", err)
	}
	if len(drills) != 1 || drills[0].Name != "step-behind" {
		t.Fatalf("expected the exact-key drill, got %+v", drills)
	}
}

func TestRecommendDrills_RelaxesKey(t *testing.T) {
	cfg := DefaultConfig()
	src := &tableDrillSource{entries: []drillEntry{
		{LeakLateLegs, "", "", Drill{Name: "hip lead", Priority: 1}},
	}}
	res := &ScoreResult{
		Leak:            LeakInfo(LeakLateLegs),
		MotorProfile:    ProfileTitan,
		WeakestCategory: CategoryBrain,
	}

	drills, err := RecommendDrills(src, res, cfg)
	if err != nil {
		t.Fatalf("RecommendDrills failed: %v", err)
	}
	if len(drills) != 1 || drills[0].Name != "hip lead" {
		t.Fatalf("expected relaxed lookup to find the leak-only drill, got %+v", drills)
	}
	if len(src.queries) != 3 {
		t.Errorf("expected 3 progressively relaxed queries, got %d", len(src.queries))
	}
}

func TestRecommendDrills_CapsResults(t *testing.T) {
	cfg := DefaultConfig()
	src := &tableDrillSource{}
	for i := 0; i < 5; i++ {
		src.entries = append(src.entries, drillEntry{
			LeakTorsoBypass, ProfileSpinner, CategoryBat,
			Drill{Name: "drill", Priority: i},
		})
	}
	res := &ScoreResult{
		Leak:            LeakInfo(LeakTorsoBypass),
		MotorProfile:    ProfileSpinner,
		WeakestCategory: CategoryBat,
	}

	drills, err := RecommendDrills(src, res, cfg)
	if err != nil {
		t.Fatalf("RecommendDrills failed: %v", err)
	}
	if len(drills) != cfg.MaxDrills {
		t.Fatalf("expected %d drills, got %d", cfg.MaxDrills, len(drills))
	}
}

func TestRecommendDrills_InsufficientDataGetsNone(t *testing.T) {
	cfg := DefaultConfig()
	src := &tableDrillSource{entries: []drillEntry{
		{LeakInsufficientData, "", "", Drill{Name: "should not appear"}},
	}}
	res := &ScoreResult{Leak: LeakInfo(LeakInsufficientData)}

	drills, err := RecommendDrills(src, res, cfg)
	if err != nil {
		t.Fatalf("RecommendDrills failed: %v", err)
	}
	if len(drills) != 0 {
		t.Fatalf("expected no drills for an unclassifiable session, got %+v", drills)
	}
	if len(src.queries) != 0 {
		t.Errorf("expected no table queries, got %d", len(src.queries))
	}
}

func TestRecommendDrills_PropagatesSourceError(t *testing.T) {
	cfg := DefaultConfig()
	src := &tableDrillSource{err: errors.New("table offline")}
	res := &ScoreResult{Leak: LeakInfo(LeakEarlyArms)}

	if _, err := RecommendDrills(src, res, cfg); err == nil {
		t.Fatal("expected source error to propagate")
	}
}
