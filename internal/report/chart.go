// Package report renders session score reports as HTML charts and PNG plots.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/swinglab-data/swing.report/internal/swing"
)

// chartSegments is the plotted segment order, ground up.
var chartSegments = []swing.Segment{
	swing.SegmentLegs,
	swing.SegmentTorso,
	swing.SegmentArms,
	swing.SegmentBat,
}

// RenderSessionHTML writes an HTML report page for one scored session: a bar
// chart of the four category scores and a line chart of per-swing peak
// energies by segment.
func RenderSessionHTML(w io.Writer, sessionID string, res swing.ScoreResult, features []swing.SwingFeature) error {
	page := components.NewPage()
	page.AddCharts(scoreBar(sessionID, res), peakLines(features))
	return page.Render(w)
}

// scoreBar builds the category score bar chart on the 20-80 scale.
func scoreBar(sessionID string, res swing.ScoreResult) *charts.Bar {
	labels := make([]string, 0, len(swing.Categories))
	values := make([]opts.BarData, 0, len(swing.Categories))
	for _, c := range swing.Categories {
		labels = append(labels, string(c))
		values = append(values, opts.BarData{Value: res.Score(c)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Session %s", sessionID),
			Subtitle: fmt.Sprintf("composite %d, weakest %s, leak %s, profile %s",
				res.Composite, res.WeakestCategory, res.Leak.Type, res.MotorProfile),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Min: swing.ScaleMin, Max: swing.ScaleMax}),
	)
	bar.SetXAxis(labels).
		AddSeries("score", values,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}

// peakLines builds the per-swing peak energy line chart, one series per segment.
func peakLines(features []swing.SwingFeature) *charts.Line {
	x := make([]string, len(features))
	for i, f := range features {
		x[i] = f.SwingID
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Peak Kinetic Energy",
			Subtitle: fmt.Sprintf("%d swings", len(features)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Joules"}),
	)
	line.SetXAxis(x)
	for _, seg := range chartSegments {
		data := make([]opts.LineData, len(features))
		for i, f := range features {
			data[i] = opts.LineData{Value: f.PeakEnergy[seg]}
		}
		line.AddSeries(string(seg), data)
	}
	return line
}
