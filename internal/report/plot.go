package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/swinglab-data/swing.report/internal/swing"
)

// segmentColors keeps a stable color per segment across reports.
var segmentColors = map[swing.Segment]color.Color{
	swing.SegmentLegs:  color.RGBA{R: 31, G: 119, B: 180, A: 255},
	swing.SegmentTorso: color.RGBA{R: 255, G: 127, B: 14, A: 255},
	swing.SegmentArms:  color.RGBA{R: 44, G: 160, B: 44, A: 255},
	swing.SegmentBat:   color.RGBA{R: 214, G: 39, B: 40, A: 255},
}

// SavePeakPlot writes a PNG of per-swing peak energies, one line per segment
// over swing index.
func SavePeakPlot(path, sessionID string, features []swing.SwingFeature) error {
	if len(features) == 0 {
		return fmt.Errorf("no swings to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Session %s - Peak Kinetic Energy", sessionID)
	p.X.Label.Text = "Swing"
	p.Y.Label.Text = "Energy (J)"

	for _, seg := range chartSegments {
		pts := make(plotter.XYs, 0, len(features))
		for i, f := range features {
			// Skip segments the export never carried (all-zero peaks).
			if f.PeakEnergy[seg] > 0 {
				pts = append(pts, plotter.XY{X: float64(i + 1), Y: f.PeakEnergy[seg]})
			}
		}
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("segment %s: %w", seg, err)
		}
		line.Color = segmentColors[seg]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(string(seg), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save peak plot: %w", err)
	}
	return nil
}
