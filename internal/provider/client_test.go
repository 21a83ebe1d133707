package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `swing_id,time_from_impact,legs_kinetic_energy,torso_kinetic_energy,arms_kinetic_energy,bat_kinetic_energy,total_kinetic_energy
s1,-0.40,100,50,30,20,200
s1,-0.30,200,80,40,60,380
s1,-0.20,150,120,90,110,470
`

func TestSessionRows(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sampleExport))
	}))
	defer srv.Close()

	c := NewCaptureClient(srv.URL+"/", nil)
	rows, err := c.SessionRows(context.Background(), "sess-42")
	require.NoError(t, err)

	assert.Equal(t, "/sessions/sess-42/export.csv", gotPath)
	assert.Equal(t, "text/csv", gotAccept)
	require.Len(t, rows, 3)
	assert.Equal(t, "s1", rows[0].SwingID)
	assert.Equal(t, 200.0, rows[1].Energy["legs"])
}

func TestSessionRowsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewCaptureClient(srv.URL, nil)
	_, err := c.SessionRows(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSessionRowsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "capture backend offline", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewCaptureClient(srv.URL, nil)
	_, err := c.SessionRows(context.Background(), "sess-1")
	require.Error(t, err)
	// The error should carry the status and a body snippet for diagnosis.
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "offline")
}

func TestSessionRowsEmptyID(t *testing.T) {
	c := NewCaptureClient("http://localhost:0", nil)
	_, err := c.SessionRows(context.Background(), "")
	require.Error(t, err)
}

func TestSessionRowsContextCancel(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCaptureClient(srv.URL, nil)
	_, err := c.SessionRows(ctx, "sess-1")
	require.Error(t, err)
}
