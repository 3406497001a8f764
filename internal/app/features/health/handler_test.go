package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/evidencehub/internal/app/features/health"
	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"go.uber.org/zap"
)

func TestServe(t *testing.T) {
	store, err := evidencestore.New(evidencestore.Seed(), time.Hour)
	if err != nil {
		t.Fatalf("evidence store: %v", err)
	}
	handler := health.NewHandler(store, time.Now().Add(-2*time.Minute), zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var response struct {
		Status        string `json:"status"`
		UptimeSeconds int64  `json:"uptime_seconds"`
		SeedRecords   int    `json:"seed_records"`
		Visitors      int    `json:"visitors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("status: got %q, want %q", response.Status, "ok")
	}
	if response.SeedRecords != store.SeedCount() {
		t.Errorf("seed_records: got %d, want %d", response.SeedRecords, store.SeedCount())
	}
	if response.UptimeSeconds < 100 {
		t.Errorf("uptime_seconds: got %d, want >= 100", response.UptimeSeconds)
	}
}

func TestServeCountsVisitors(t *testing.T) {
	store, err := evidencestore.New(evidencestore.Seed(), time.Hour)
	if err != nil {
		t.Fatalf("evidence store: %v", err)
	}
	if _, err := store.Append("v1", models.EvidenceRecord{
		Title: "x", Section: models.SectionIntro, Week: 1, Type: models.EvidenceTypeDoc,
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	handler := health.NewHandler(store, time.Now(), zap.NewNop())
	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	var response struct {
		Visitors int `json:"visitors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Visitors != 1 {
		t.Errorf("visitors: got %d, want 1", response.Visitors)
	}
}
