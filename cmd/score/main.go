// Command score runs the scoring engine over one session CSV and prints the
// result as JSON. Optional flags emit an HTML or PNG report alongside.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/swinglab-data/swing.report/internal/config"
	"github.com/swinglab-data/swing.report/internal/report"
	"github.com/swinglab-data/swing.report/internal/swing"
)

func main() {
	input := flag.String("i", "", "session CSV to score (required)")
	configFile := flag.String("config", "", "tuning config JSON (defaults to the built-in table)")
	htmlOut := flag.String("html", "", "write an HTML report to this path")
	pngOut := flag.String("png", "", "write a peak-energy PNG plot to this path")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	tuning := config.MustLoadDefaultConfig()
	if *configFile != "" {
		var err error
		tuning, err = config.LoadTuningConfig(*configFile)
		if err != nil {
			log.Fatalf("failed to load tuning config: %v", err)
		}
	}
	cfg, err := tuning.Engine()
	if err != nil {
		log.Fatalf("invalid tuning config: %v", err)
	}
	engine, err := swing.NewEngine(cfg)
	if err != nil {
		log.Fatalf("failed to build scoring engine: %v", err)
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("failed to open session CSV: %v", err)
	}
	defer f.Close()

	rows, err := swing.ParseCSV(f)
	if err != nil {
		log.Fatalf("failed to parse session CSV: %v", err)
	}
	features := engine.Features(rows)
	result := engine.ScoreRows(rows)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("failed to encode result: %v", err)
	}

	if *htmlOut != "" {
		out, err := os.Create(*htmlOut)
		if err != nil {
			log.Fatalf("failed to create HTML report: %v", err)
		}
		if err := report.RenderSessionHTML(out, *input, result, features); err != nil {
			log.Fatalf("failed to render HTML report: %v", err)
		}
		out.Close()
		log.Printf("✓ Created: %s", *htmlOut)
	}

	if *pngOut != "" {
		if err := report.SavePeakPlot(*pngOut, *input, features); err != nil {
			log.Fatalf("failed to render PNG plot: %v", err)
		}
		log.Printf("✓ Created: %s", *pngOut)
	}
}
