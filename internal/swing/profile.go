package swing

// ClassifyMotorProfile bands the session's mean legs-to-arms peak-time gap
// into a timing style: a tight gap reads as a rotational "spinner", a
// moderate gap as a "whipper", a wide gap as a "slingshotter", and anything
// wider as a "titan". Zero swings classify as unknown.
func ClassifyMotorProfile(fs SessionFeatureSet, cfg Config) MotorProfile {
	if fs.SwingCount == 0 {
		return ProfileUnknown
	}

	gap := fs.MeanLegsArmsGap
	switch {
	case gap < cfg.ProfileGaps.Spinner:
		return ProfileSpinner
	case gap < cfg.ProfileGaps.Whipper:
		return ProfileWhipper
	case gap < cfg.ProfileGaps.Slingshotter:
		return ProfileSlingshotter
	default:
		return ProfileTitan
	}
}
