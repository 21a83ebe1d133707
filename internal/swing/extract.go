package swing

// ExtractFeatures derives one SwingFeature from a swing's windowed rows with
// a single scan: running maxima per segment plus the time offset where each
// maximum first occurred (ties keep the earliest sample).
//
// No score or classification decision is made here; this stage is purely
// feature extraction.
func ExtractFeatures(sw SwingRows, cfg Config) SwingFeature {
	f := SwingFeature{
		SwingID:    sw.SwingID,
		PeakEnergy: make(map[Segment]float64, len(Segments)),
		PeakTime:   make(map[Segment]float64, len(Segments)),
	}

	seen := make(map[Segment]bool, len(Segments))
	for _, row := range sw.Rows {
		for _, seg := range Segments {
			e := row.EnergyAt(seg)
			if !seen[seg] || e > f.PeakEnergy[seg] {
				f.PeakEnergy[seg] = e
				f.PeakTime[seg] = row.TimeOffset
				seen[seg] = true
			}
		}
	}

	legs := f.PeakEnergy[SegmentLegs]
	torso := f.PeakEnergy[SegmentTorso]
	arms := f.PeakEnergy[SegmentArms]
	bat := f.PeakEnergy[SegmentBat]
	total := f.PeakEnergy[SegmentTotal]

	if legs > 0 {
		f.LegsToTorso = torso / legs
	}
	if torso > 0 {
		f.TorsoToArms = arms / torso
	}

	// Efficiency is only meaningful with real bat instrumentation. A bat
	// reading at or under the noise floor marks the swing as uninstrumented
	// rather than scoring a spurious near-zero efficiency.
	if bat > cfg.BatNoiseFloor && total > 0 {
		f.HasBatData = true
		f.TotalEfficiency = bat / total
	}

	// Non-strict: simultaneous peaks count as a proper sequence.
	f.ProperSequence = f.PeakTime[SegmentLegs] <= f.PeakTime[SegmentTorso] &&
		f.PeakTime[SegmentTorso] <= f.PeakTime[SegmentArms]

	return f
}
