package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReporter struct {
	ready    bool
	progress int
}

func (f *fakeReporter) CheckReadiness(context.Context) error {
	if !f.ready {
		return errors.New("scan has not processed any posts yet")
	}
	return nil
}

func (f *fakeReporter) Progress() int { return f.progress }

func newTestServer(reporter *fakeReporter) *Server {
	return NewServer(":0", reporter, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func get(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec, body
}

func TestHealthz(t *testing.T) {
	rec, body := get(t, newTestServer(&fakeReporter{}), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyz(t *testing.T) {
	t.Run("not ready before first post", func(t *testing.T) {
		rec, body := get(t, newTestServer(&fakeReporter{}), "/readyz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "not ready", body["status"])
		assert.Contains(t, body["error"], "not processed")
	})

	t.Run("ready once scanning", func(t *testing.T) {
		rec, body := get(t, newTestServer(&fakeReporter{ready: true}), "/readyz")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", body["status"])
	})
}

func TestProgress(t *testing.T) {
	rec, body := get(t, newTestServer(&fakeReporter{progress: 40}), "/progress")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(40), body["percent"])
}
