// Command gen-swings generates a synthetic session CSV for testing the
// scoring pipeline. Output is deterministic for a given seed.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
)

// segment energy model: peak amplitude in joules and peak time in seconds
// before the reference event, jittered per swing.
var segments = []struct {
	name     string
	peak     float64
	peakTime float64
}{
	{"legs", 210, -0.30},
	{"torso", 105, -0.24},
	{"arms", 145, -0.12},
	{"bat", 305, -0.06},
}

func main() {
	output := flag.String("o", "session.csv", "output path")
	swings := flag.Int("n", 10, "number of swings")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(*seed))

	fmt.Fprintln(f, "swing_id,time_from_impact,legs_kinetic_energy,torso_kinetic_energy,arms_kinetic_energy,bat_kinetic_energy,total_kinetic_energy")
	for s := 1; s <= *swings; s++ {
		ampJitter := 1 + 0.2*(rng.Float64()-0.5)
		timeJitter := 0.02 * (rng.Float64() - 0.5)

		for i := 0; i <= 30; i++ {
			t := -0.6 + float64(i)*0.025
			total := 0.0
			fmt.Fprintf(f, "swing-%03d,%.3f", s, t)
			for _, seg := range segments {
				e := seg.peak * ampJitter * bell(t, seg.peakTime+timeJitter, 0.12)
				total += e
				fmt.Fprintf(f, ",%.2f", e)
			}
			fmt.Fprintf(f, ",%.2f\n", total)
		}
	}

	log.Printf("✓ Created: %s (%d swings)", *output, *swings)
}

// bell is a unit gaussian envelope centred on peak with the given width.
func bell(t, peak, width float64) float64 {
	d := (t - peak) / width
	return math.Exp(-0.5 * d * d)
}
