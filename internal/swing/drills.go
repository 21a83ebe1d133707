package swing

import "fmt"

// Drill is one corrective prescription from the external drill table.
type Drill struct {
	Name        string `json:"name"`
	Instruction string `json:"instruction"`
	Priority    int    `json:"priority"`
}

// DrillSource is the prescription-table collaborator. Implementations return
// drills matching the given keys, most specific first; an empty key matches
// any value for that dimension. Results are expected ordered by priority.
type DrillSource interface {
	Drills(leak LeakType, profile MotorProfile, weakest Category) ([]Drill, error)
}

// RecommendDrills looks up corrective drills for a score result, relaxing the
// key from (leak, profile, weakest) to (leak, weakest) to (leak) until
// something matches, and caps the result at cfg.MaxDrills. A session that
// classified as insufficient data gets no prescription.
func RecommendDrills(src DrillSource, res *ScoreResult, cfg Config) ([]Drill, error) {
	if res.Leak.Type == LeakInsufficientData {
		return nil, nil
	}

	keys := []struct {
		profile MotorProfile
		weakest Category
	}{
		{res.MotorProfile, res.WeakestCategory},
		{"", res.WeakestCategory},
		{"", ""},
	}

	for _, k := range keys {
		drills, err := src.Drills(res.Leak.Type, k.profile, k.weakest)
		if err != nil {
			return nil, fmt.Errorf("drill lookup for leak %q: %w", res.Leak.Type, err)
		}
		if len(drills) == 0 {
			continue
		}
		if len(drills) > cfg.MaxDrills {
			drills = drills[:cfg.MaxDrills]
		}
		return drills, nil
	}
	return nil, nil
}
