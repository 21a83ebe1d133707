package swing

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// qualityForCount maps usable swing count to a data-quality label.
func qualityForCount(n int) DataQuality {
	switch {
	case n < 1:
		return QualityInsufficient
	case n < 3:
		return QualityLimited
	case n < 5:
		return QualityFair
	case n < 10:
		return QualityGood
	default:
		return QualityExcellent
	}
}

// populationCV is the population standard deviation over the mean. It
// degrades to 0 when the mean is 0 or fewer than 2 samples exist; CV is
// undefined below that and must never reach the scorer as NaN.
func populationCV(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := stat.Mean(xs, nil)
	if mean == 0 {
		return 0
	}
	return stat.PopStdDev(xs, nil) / mean
}

// Aggregate combines all SwingFeatures of a session into a SessionFeatureSet:
// per-segment means and coefficients of variation, mean transfer ratios, the
// pattern fractions the leak cascade consumes, and the data-quality label.
// An empty feature list yields a zero-count set with QualityInsufficient.
func Aggregate(features []SwingFeature, cfg Config) SessionFeatureSet {
	fs := SessionFeatureSet{
		SwingCount:  len(features),
		MeanPeak:    make(map[Segment]float64, len(Segments)),
		PeakCV:      make(map[Segment]float64, len(Segments)),
		DataQuality: qualityForCount(len(features)),
	}
	if len(features) == 0 {
		return fs
	}

	n := float64(len(features))

	for _, seg := range Segments {
		peaks := make([]float64, len(features))
		for i, f := range features {
			peaks[i] = f.PeakEnergy[seg]
		}
		fs.MeanPeak[seg] = stat.Mean(peaks, nil)
		fs.PeakCV[seg] = populationCV(peaks)
	}

	var (
		legsToTorso, torsoToArms, efficiency float64
		noBat, lateLegs, bypass, proper      int
		gapSum                               float64
	)
	for _, f := range features {
		legsToTorso += f.LegsToTorso
		torsoToArms += f.TorsoToArms
		efficiency += f.TotalEfficiency

		if f.PeakEnergy[SegmentBat] > cfg.BatNoiseFloor {
			fs.CredibleBat = true
		}
		if !f.HasBatData {
			noBat++
		}

		if f.PeakTime[SegmentLegs] > f.PeakTime[SegmentArms] {
			lateLegs++
		}
		if f.PeakTime[SegmentArms] < f.PeakTime[SegmentTorso] {
			bypass++
		}
		if f.ProperSequence {
			proper++
		}

		gapSum += math.Abs(f.PeakTime[SegmentArms] - f.PeakTime[SegmentLegs])
	}

	fs.MeanLegsToTorso = legsToTorso / n
	fs.MeanTorsoToArms = torsoToArms / n
	fs.MeanTotalEfficiency = efficiency / n

	fs.NoBatFraction = float64(noBat) / n
	fs.LateLegsFraction = float64(lateLegs) / n
	fs.TorsoBypassFraction = float64(bypass) / n
	fs.ProperSequenceFraction = float64(proper) / n
	fs.MeanLegsArmsGap = gapSum / n

	return fs
}
