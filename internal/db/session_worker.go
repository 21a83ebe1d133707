package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/swinglab-data/swing.report/internal/monitoring"
	"github.com/swinglab-data/swing.report/internal/swing"
)

// DefaultBatchLimit bounds concurrent session processing. The limit exists to
// cap outbound I/O against the row source, not because the engine needs
// coordination; the engine itself is stateless and safe to run in parallel.
const DefaultBatchLimit = 10

// RowSource supplies a session's motion rows, typically a capture-provider
// client or a stored file. Timeouts and retries belong to the source, not to
// the pure scoring computation.
type RowSource interface {
	SessionRows(ctx context.Context, sessionID string) ([]swing.MotionRow, error)
}

// SessionWorker scores batches of sessions and upserts the results. Because
// results are keyed by session id and the engine is deterministic,
// re-processing a session is a safe overwrite.
type SessionWorker struct {
	DB     *DB
	Engine *swing.Engine
	Source RowSource
	Limit  int
}

func NewSessionWorker(db *DB, engine *swing.Engine, source RowSource) *SessionWorker {
	return &SessionWorker{DB: db, Engine: engine, Source: source, Limit: DefaultBatchLimit}
}

// SessionOutcome records what happened to one session in a batch.
type SessionOutcome struct {
	SessionID string `json:"session_id"`
	Composite int    `json:"composite"`
	Err       string `json:"error,omitempty"`
}

// BatchResult summarizes one ProcessBatch run.
type BatchResult struct {
	RunID    string           `json:"run_id"`
	Scored   int              `json:"scored"`
	Failed   int              `json:"failed"`
	Outcomes []SessionOutcome `json:"outcomes"`
}

// ProcessBatch fetches, scores, and stores every session id, at most Limit at
// a time. A failing session is recorded and skipped; it never aborts the
// rest of the batch. Outcomes preserve the input order.
func (w *SessionWorker) ProcessBatch(ctx context.Context, sessionIDs []string) (*BatchResult, error) {
	if w.Source == nil {
		return nil, fmt.Errorf("session worker has no row source")
	}

	limit := w.Limit
	if limit <= 0 {
		limit = DefaultBatchLimit
	}

	result := &BatchResult{
		RunID:    uuid.NewString(),
		Outcomes: make([]SessionOutcome, len(sessionIDs)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, sessionID := range sessionIDs {
		g.Go(func() error {
			outcome := w.processOne(gctx, sessionID, result.RunID)
			mu.Lock()
			result.Outcomes[i] = outcome
			if outcome.Err == "" {
				result.Scored++
			} else {
				result.Failed++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	monitoring.Logf("batch %s: scored %d sessions, %d failed", result.RunID, result.Scored, result.Failed)
	return result, nil
}

func (w *SessionWorker) processOne(ctx context.Context, sessionID, runID string) SessionOutcome {
	outcome := SessionOutcome{SessionID: sessionID}

	rows, err := w.Source.SessionRows(ctx, sessionID)
	if err != nil {
		outcome.Err = fmt.Sprintf("fetch rows: %v", err)
		return outcome
	}

	res := w.Engine.ScoreRows(rows)
	if err := w.DB.UpsertScoreResult(sessionID, runID, &res); err != nil {
		outcome.Err = fmt.Sprintf("store result: %v", err)
		return outcome
	}

	outcome.Composite = res.Composite
	return outcome
}
