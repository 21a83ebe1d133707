package swing

import (
	"fmt"
	"io"
)

// Engine is the scoring pipeline bound to one validated constants table. It
// is stateless per invocation and safe for concurrent use; all tunables live
// in the Config and the Config is never mutated.
type Engine struct {
	cfg Config
}

// NewEngine validates the constants table once and returns an engine. An
// invalid table (degenerate band, bad threshold) fails here, at startup,
// never per row.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the constants table the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Features runs the front half of the pipeline: segment the rows into
// windowed swings and extract one SwingFeature per surviving swing. Exposed
// separately so callers (reports, tooling) can inspect per-swing features.
func (e *Engine) Features(rows []MotionRow) []SwingFeature {
	swings := SegmentSwings(rows, e.cfg)
	features := make([]SwingFeature, 0, len(swings))
	for _, sw := range swings {
		features = append(features, ExtractFeatures(sw, e.cfg))
	}
	return features
}

// ScoreRows runs the full pipeline over pre-parsed rows. Identical rows (in
// any order) always produce an identical ScoreResult. A session with zero
// usable swings returns a well-formed insufficient-data result, never an
// error.
func (e *Engine) ScoreRows(rows []MotionRow) ScoreResult {
	features := e.Features(rows)
	fs := Aggregate(features, e.cfg)
	return ScoreFeatures(fs, e.cfg)
}

// ScoreCSV parses a raw motion-capture export and scores it.
func (e *Engine) ScoreCSV(r io.Reader) (ScoreResult, error) {
	rows, err := ParseCSV(r)
	if err != nil {
		return ScoreResult{}, fmt.Errorf("failed to parse session rows: %w", err)
	}
	return e.ScoreRows(rows), nil
}
