package db

import (
	"errors"
	"fmt"
	"time"
)

// Session is one recorded hitting session. The engine itself is stateless;
// sessions exist so score results have a stable key and provenance.
type Session struct {
	SessionID  string     `json:"session_id"`
	Player     string     `json:"player"`
	Source     string     `json:"source"` // capture provider or file name
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// UpsertSession creates or refreshes a session record.
func (db *DB) UpsertSession(s *Session) error {
	if s.SessionID == "" {
		return errors.New("session id is required")
	}
	_, err := db.Exec(`
		INSERT INTO sessions (session_id, player, source, recorded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			player = excluded.player,
			source = excluded.source,
			recorded_at = excluded.recorded_at
	`, s.SessionID, s.Player, s.Source, s.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert session %s: %w", s.SessionID, err)
	}
	return nil
}

// GetSession loads one session, sql.ErrNoRows when absent.
func (db *DB) GetSession(sessionID string) (*Session, error) {
	s := &Session{}
	err := db.QueryRow(`
		SELECT session_id, player, source, recorded_at, created_at
		FROM sessions WHERE session_id = ?
	`, sessionID).Scan(&s.SessionID, &s.Player, &s.Source, &s.RecordedAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListSessions returns sessions newest-first, capped at limit.
func (db *DB) ListSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT session_id, player, source, recorded_at, created_at
		FROM sessions ORDER BY created_at DESC, session_id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.SessionID, &s.Player, &s.Source, &s.RecordedAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
