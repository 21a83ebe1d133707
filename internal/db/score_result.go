package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/swinglab-data/swing.report/internal/swing"
)

// StoredScoreResult is a swing.ScoreResult at rest, keyed by session id. The
// raw aggregated metrics are stored as JSON alongside the scores so a result
// can be audited or rescored after a tuning change.
type StoredScoreResult struct {
	SessionID string            `json:"session_id"`
	RunID     string            `json:"run_id"`
	Result    swing.ScoreResult `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// UpsertScoreResult stores a score result for a session, overwriting any
// previous result. Deterministic engine plus upsert keyed on session id makes
// re-delivery idempotent.
func (db *DB) UpsertScoreResult(sessionID, runID string, res *swing.ScoreResult) error {
	raw, err := json.Marshal(res.RawMetrics)
	if err != nil {
		return fmt.Errorf("failed to marshal raw metrics: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO score_results (
			session_id, run_id, brain, body, bat, ball, composite,
			weakest_category, leak_type, leak_caption, leak_instruction,
			motor_profile, swing_count, data_quality, raw_metrics
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			run_id = excluded.run_id,
			brain = excluded.brain,
			body = excluded.body,
			bat = excluded.bat,
			ball = excluded.ball,
			composite = excluded.composite,
			weakest_category = excluded.weakest_category,
			leak_type = excluded.leak_type,
			leak_caption = excluded.leak_caption,
			leak_instruction = excluded.leak_instruction,
			motor_profile = excluded.motor_profile,
			swing_count = excluded.swing_count,
			data_quality = excluded.data_quality,
			raw_metrics = excluded.raw_metrics,
			updated_at = CURRENT_TIMESTAMP
	`,
		sessionID, runID,
		res.Brain, res.Body, res.Bat, res.Ball, res.Composite,
		string(res.WeakestCategory), string(res.Leak.Type),
		res.Leak.Caption, res.Leak.Instruction,
		string(res.MotorProfile),
		res.RawMetrics.SwingCount, string(res.RawMetrics.DataQuality),
		string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert score result for %s: %w", sessionID, err)
	}
	return nil
}

// GetScoreResult loads the stored result for a session, sql.ErrNoRows when
// the session has never been scored.
func (db *DB) GetScoreResult(sessionID string) (*StoredScoreResult, error) {
	stored := &StoredScoreResult{SessionID: sessionID}
	var (
		weakest, leakType, caption, instruction, profile string
		raw                                              string
	)

	// swing_count and data_quality are denormalized copies for SQL-side
	// filtering; reads rebuild the full metrics from the JSON column.
	err := db.QueryRow(`
		SELECT run_id, brain, body, bat, ball, composite,
			weakest_category, leak_type, leak_caption, leak_instruction,
			motor_profile, raw_metrics, created_at, updated_at
		FROM score_results WHERE session_id = ?
	`, sessionID).Scan(
		&stored.RunID,
		&stored.Result.Brain, &stored.Result.Body, &stored.Result.Bat, &stored.Result.Ball,
		&stored.Result.Composite,
		&weakest, &leakType, &caption, &instruction,
		&profile, &raw,
		&stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	stored.Result.WeakestCategory = swing.Category(weakest)
	stored.Result.Leak = swing.LeakResult{
		Type:        swing.LeakType(leakType),
		Caption:     caption,
		Instruction: instruction,
	}
	stored.Result.MotorProfile = swing.MotorProfile(profile)

	if err := json.Unmarshal([]byte(raw), &stored.Result.RawMetrics); err != nil {
		return nil, fmt.Errorf("corrupt raw metrics for session %s: %w", sessionID, err)
	}

	return stored, nil
}
