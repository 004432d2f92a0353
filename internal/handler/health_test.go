package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	msg, _ := body["error"].(string)
	return msg
}

func TestHealth_OK(t *testing.T) {
	h := New(&mockDB{}, NewOriginPolicy(nil))
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h.startedAt = started
	h.now = func() time.Time { return started.Add(90 * time.Second) }

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "OK" {
		t.Errorf("expected status=OK, got %q", resp.Status)
	}
	if resp.Message != "LoanBaazar backend is running" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Timestamp != "2024-01-01T00:01:30Z" {
		t.Errorf("unexpected timestamp %q", resp.Timestamp)
	}
	if resp.Uptime != 90 {
		t.Errorf("expected uptime=90, got %v", resp.Uptime)
	}
}

func TestHealth_Unhealthy(t *testing.T) {
	h := New(&mockDB{
		pingFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}, NewOriginPolicy(nil))

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("expected status=unhealthy, got %q", resp.Status)
	}
}
