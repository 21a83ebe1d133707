package swing

import "testing"

func TestClassifyMotorProfile_GapBands(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		gap  float64
		want MotorProfile
	}{
		{0.00, ProfileSpinner},
		{0.039, ProfileSpinner},
		{0.04, ProfileWhipper}, // band edges belong to the wider profile
		{0.07, ProfileWhipper},
		{0.08, ProfileSlingshotter},
		{0.14, ProfileSlingshotter},
		{0.15, ProfileTitan},
		{0.5, ProfileTitan},
	}
	for _, c := range cases {
		fs := SessionFeatureSet{SwingCount: 5, MeanLegsArmsGap: c.gap}
		if got := ClassifyMotorProfile(fs, cfg); got != c.want {
			t.Errorf("gap %v: profile = %q, want %q", c.gap, got, c.want)
		}
	}
}

func TestClassifyMotorProfile_ZeroSwings(t *testing.T) {
	cfg := DefaultConfig()
	if got := ClassifyMotorProfile(SessionFeatureSet{}, cfg); got != ProfileUnknown {
		t.Errorf("profile = %q, want %q", got, ProfileUnknown)
	}
}
