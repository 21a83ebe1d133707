package swing

// leakText carries the fixed caption and corrective cue for each leak type.
// These strings are presentation, not computation; they never vary with the
// session's numbers.
var leakText = map[LeakType]LeakResult{
	LeakInsufficientData: {
		Type:        LeakInsufficientData,
		Caption:     "Not enough usable swings to classify",
		Instruction: "Record at least one full swing inside the capture window and rescore.",
	},
	LeakNoBatDelivery: {
		Type:        LeakNoBatDelivery,
		Caption:     "Energy never reaches the bat",
		Instruction: "Check bat sensor mounting, then train extension through contact with heavy-bat dry swings.",
	},
	LeakLateLegs: {
		Type:        LeakLateLegs,
		Caption:     "Lower half fires after the hands",
		Instruction: "Lead with the back hip: stride-and-hold drills before any arm action.",
	},
	LeakTorsoBypass: {
		Type:        LeakTorsoBypass,
		Caption:     "Arms fire before the torso loads",
		Instruction: "Separate hips and shoulders: med-ball rotational throws with a deliberate coil.",
	},
	LeakEarlyArms: {
		Type:        LeakEarlyArms,
		Caption:     "Arm-dominant swing, kinetic chain out of order",
		Instruction: "Step-behind drills to force the ground-up sequence before the hands commit.",
	},
	LeakCleanTransfer: {
		Type:        LeakCleanTransfer,
		Caption:     "Energy flows up the chain in order",
		Instruction: "Sequence is clean; shift training load toward output and consistency.",
	},
	LeakMixedPattern: {
		Type:        LeakMixedPattern,
		Caption:     "No single dominant transfer pattern",
		Instruction: "Capture more swings to isolate the dominant pattern before prescribing.",
	},
}

// LeakInfo returns the fixed caption and instruction for a leak type.
func LeakInfo(t LeakType) LeakResult {
	if r, ok := leakText[t]; ok {
		return r
	}
	return leakText[LeakMixedPattern]
}

// ClassifyLeak runs the fixed-priority rule cascade over the session's
// swing-level pattern fractions. The first matching rule wins; later rules
// are not considered even when they would also match. A session with zero
// swings classifies as insufficient data before the cascade runs.
func ClassifyLeak(fs SessionFeatureSet, cfg Config) LeakResult {
	if fs.SwingCount == 0 {
		return LeakInfo(LeakInsufficientData)
	}

	th := cfg.Leak
	switch {
	case fs.NoBatFraction > th.NoBatDelivery:
		return LeakInfo(LeakNoBatDelivery)
	case fs.LateLegsFraction > th.LateLegs:
		return LeakInfo(LeakLateLegs)
	case fs.TorsoBypassFraction > th.TorsoBypass:
		return LeakInfo(LeakTorsoBypass)
	case fs.ProperSequenceFraction < th.EarlyArms:
		return LeakInfo(LeakEarlyArms)
	case fs.ProperSequenceFraction >= th.CleanTransfer:
		// Not a leak: a positive classification.
		return LeakInfo(LeakCleanTransfer)
	default:
		return LeakInfo(LeakMixedPattern)
	}
}
