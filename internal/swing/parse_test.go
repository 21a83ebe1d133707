package swing

import (
	"strings"
	"testing"
)

func TestParseCSV_BasicColumns(t *testing.T) {
	csv := `Swing ID,Time From Max Hand Speed,Legs Kinetic Energy,Torso Kinetic Energy,Arms Kinetic Energy,Bat Kinetic Energy,Total Kinetic Energy
s1,-0.2,100,50,60,200,410
s1,-0.1,120,70,80,250,520`

	rows, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	r := rows[0]
	if r.SwingID != "s1" {
		t.Errorf("expected swing id s1, got %q", r.SwingID)
	}
	if r.TimeOffset != -0.2 {
		t.Errorf("expected time offset -0.2, got %v", r.TimeOffset)
	}
	if got := r.EnergyAt(SegmentLegs); got != 100 {
		t.Errorf("expected legs energy 100, got %v", got)
	}
	if got := r.EnergyAt(SegmentBat); got != 200 {
		t.Errorf("expected bat energy 200, got %v", got)
	}
	if got := r.EnergyAt(SegmentTotal); got != 410 {
		t.Errorf("expected total energy 410, got %v", got)
	}
}

func TestParseCSV_MalformedNumbersDefaultToZero(t *testing.T) {
	csv := `swing_id,time_from_contact,legs_kinetic_energy
s1,-0.2,not-a-number
s1,-0.1,`

	rows, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if got := r.EnergyAt(SegmentLegs); got != 0 {
			t.Errorf("row %d: expected legs energy 0 for malformed value, got %v", i, got)
		}
	}
}

func TestParseCSV_DropsRowsMissingKeyAndTime(t *testing.T) {
	csv := `swing_id,time_from_contact,legs_kinetic_energy
,,100
s1,-0.2,100
,-0.3,100
s2,,100`

	rows, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	// Row 1 lacks both key and time and is dropped. Rows with either survive.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[2].HasTime {
		t.Errorf("expected HasTime=false for row with empty time value")
	}
}

func TestParseCSV_ArmFallbackChain(t *testing.T) {
	// No combined arms column: left+right sum applies.
	split := `swing_id,time_from_contact,left_arm_kinetic_energy,right_arm_kinetic_energy
s1,-0.2,30,40`
	rows, err := ParseCSV(strings.NewReader(split))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if got := rows[0].EnergyAt(SegmentArms); got != 70 {
		t.Errorf("expected summed arm energy 70, got %v", got)
	}

	// Combined column present: it wins over the split columns.
	combined := `swing_id,time_from_contact,arms_kinetic_energy,left_arm_kinetic_energy,right_arm_kinetic_energy
s1,-0.2,65,30,40`
	rows, err = ParseCSV(strings.NewReader(combined))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if got := rows[0].EnergyAt(SegmentArms); got != 65 {
		t.Errorf("expected combined arm energy 65, got %v", got)
	}
}

func TestParseCSV_QuotedFieldsAndExtras(t *testing.T) {
	csv := `swing_id,time_from_contact,legs_kinetic_energy,notes
s1,-0.2,100,"looks good, keep it"`

	rows, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if got := rows[0].Extra["notes"]; got != "looks good, keep it" {
		t.Errorf("expected quoted note to pass through, got %q", got)
	}
}

func TestParseCSV_NegativeEnergyClampedToZero(t *testing.T) {
	csv := `swing_id,time_from_contact,legs_kinetic_energy
s1,-0.2,-15`
	rows, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if got := rows[0].EnergyAt(SegmentLegs); got != 0 {
		t.Errorf("expected negative energy clamped to 0, got %v", got)
	}
}

func TestParseCSV_EmptyInput(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("expected no error on empty input, got %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty slice, got %d rows", len(rows))
	}

	// Header only is also fine.
	rows, err = ParseCSV(strings.NewReader("swing_id,time_from_contact\n"))
	if err != nil {
		t.Fatalf("expected no error on header-only input, got %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty slice for header-only input, got %d rows", len(rows))
	}
}
