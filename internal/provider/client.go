// Package provider fetches raw capture data from a swing capture service.
//
// A capture service exposes per-session CSV exports of the sensor rows
// recorded during a hitting session. CaptureClient pulls those exports so
// batch scoring can run against sessions that were captured elsewhere.
package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/swinglab-data/swing.report/internal/swing"
)

// DefaultTimeout bounds a single export fetch.
const DefaultTimeout = 30 * time.Second

// maxExportBytes caps how much CSV we will read from a single export.
// A full session is a few hundred KB; anything past this is a bad export.
const maxExportBytes = 32 << 20

// CaptureClient fetches session motion rows from a capture service over HTTP.
// It satisfies the row source shape used by the batch session worker.
type CaptureClient struct {
	baseURL string
	client  *http.Client
}

// NewCaptureClient creates a client for the capture service at baseURL.
// A nil http.Client gets a default with DefaultTimeout.
func NewCaptureClient(baseURL string, c *http.Client) *CaptureClient {
	if c == nil {
		c = &http.Client{Timeout: DefaultTimeout}
	}
	return &CaptureClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  c,
	}
}

// SessionRows downloads the CSV export for sessionID and parses it into
// motion rows. Callers segment and score the rows themselves.
func (c *CaptureClient) SessionRows(ctx context.Context, sessionID string) ([]swing.MotionRow, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("empty session id")
	}
	url := fmt.Sprintf("%s/sessions/%s/export.csv", c.baseURL, sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building export request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching export for session %s: %w", sessionID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("session %s not found on capture service", sessionID)
	default:
		// Read a little of the body so the error is diagnosable.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("capture service returned %d for session %s: %s",
			resp.StatusCode, sessionID, strings.TrimSpace(string(snippet)))
	}

	rows, err := swing.ParseCSV(io.LimitReader(resp.Body, maxExportBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing export for session %s: %w", sessionID, err)
	}
	return rows, nil
}
