// Package api exposes the scoring engine and stored results over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/swinglab-data/swing.report/internal/db"
	"github.com/swinglab-data/swing.report/internal/httputil"
	"github.com/swinglab-data/swing.report/internal/monitoring"
	"github.com/swinglab-data/swing.report/internal/swing"
)

// ANSI escape codes for cyan and reset
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

// maxUploadBytes caps the CSV body accepted on a score request.
const maxUploadBytes = 32 << 20

type Server struct {
	db     *db.DB
	engine *swing.Engine
}

func NewServer(database *db.DB, engine *swing.Engine) *Server {
	return &Server{
		db:     database,
		engine: engine,
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// LoggingMiddleware logs method, path, query, status, and duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		monitoring.Logf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sessions", s.listSessions)
	mux.HandleFunc("/api/sessions/", s.handleSessions)
	mux.HandleFunc("/api/config", s.showConfig)
	return mux
}

// handleSessions dispatches /api/sessions/{id}/{resource} requests.
func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[0] == "" {
		httputil.NotFound(w, "unknown session resource")
		return
	}
	sessionID, resource := parts[0], parts[1]

	switch resource {
	case "score":
		switch r.Method {
		case http.MethodPost:
			s.scoreSession(w, r, sessionID)
		case http.MethodGet:
			s.getScore(w, sessionID)
		default:
			httputil.MethodNotAllowed(w)
		}
	case "drills":
		if r.Method != http.MethodGet {
			httputil.MethodNotAllowed(w)
			return
		}
		s.getDrills(w, sessionID)
	default:
		httputil.NotFound(w, fmt.Sprintf("unknown session resource %q", resource))
	}
}

// scoreSession scores the rows in the request body and stores the result.
// The body is a CSV export by default, or pre-parsed rows when the request
// carries a JSON content type.
func (s *Server) scoreSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	defer r.Body.Close()
	body := http.MaxBytesReader(w, r.Body, maxUploadBytes)

	var result swing.ScoreResult
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var rows []swing.MotionRow
		if err := json.NewDecoder(body).Decode(&rows); err != nil {
			httputil.BadRequest(w, fmt.Sprintf("failed to decode session rows: %v", err))
			return
		}
		// Pre-parsed rows always carry their time offset explicitly.
		for i := range rows {
			rows[i].HasTime = true
		}
		result = s.engine.ScoreRows(rows)
	} else {
		var err error
		result, err = s.engine.ScoreCSV(body)
		if err != nil {
			httputil.BadRequest(w, fmt.Sprintf("failed to parse session data: %v", err))
			return
		}
	}

	if err := s.db.UpsertSession(&db.Session{SessionID: sessionID}); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to record session: %v", err))
		return
	}
	if err := s.db.UpsertScoreResult(sessionID, "", &result); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to store score: %v", err))
		return
	}

	httputil.WriteJSONOK(w, result)
}

func (s *Server) getScore(w http.ResponseWriter, sessionID string) {
	stored, err := s.db.GetScoreResult(sessionID)
	if err != nil {
		httputil.NotFound(w, fmt.Sprintf("no score for session %s", sessionID))
		return
	}
	httputil.WriteJSONOK(w, stored)
}

func (s *Server) getDrills(w http.ResponseWriter, sessionID string) {
	stored, err := s.db.GetScoreResult(sessionID)
	if err != nil {
		httputil.NotFound(w, fmt.Sprintf("no score for session %s", sessionID))
		return
	}

	drills, err := swing.RecommendDrills(s.db.DrillSource(), &stored.Result, s.engine.Config())
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to look up drills: %v", err))
		return
	}
	if drills == nil {
		drills = []swing.Drill{}
	}
	httputil.WriteJSONOK(w, drills)
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 {
			httputil.BadRequest(w, "invalid 'limit' parameter")
			return
		}
		limit = parsed
	}

	sessions, err := s.db.ListSessions(limit)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to list sessions: %v", err))
		return
	}
	httputil.WriteJSONOK(w, sessions)
}

// showConfig reports the active tuning table so scores are auditable.
func (s *Server) showConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSONOK(w, s.engine.Config())
}
