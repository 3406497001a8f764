// internal/app/features/deliverables/handler_test.go
package deliverables_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/evidencehub/internal/app/features/deliverables"
	uierrors "github.com/dalemusser/evidencehub/internal/app/features/errors"
	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	"github.com/dalemusser/evidencehub/internal/app/system/ratelimit"
	"github.com/dalemusser/evidencehub/internal/app/system/visitor"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*deliverables.Handler, *evidencestore.Store) {
	t.Helper()
	store, err := evidencestore.New(evidencestore.Seed(), time.Hour)
	if err != nil {
		t.Fatalf("evidence store: %v", err)
	}
	logger := zap.NewNop()
	return deliverables.NewHandler(store, 1<<20, ratelimit.New(100, time.Minute), logger, uierrors.NewErrorLogger(logger)), store
}

func postForm(t *testing.T, fields map[string]string, fileName string, fileData []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(fileData); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/deliverables/new", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandleCreate_WithLink(t *testing.T) {
	h, store := newTestHandler(t)

	req := postForm(t, map[string]string{
		"title":       "JLPT N5 Resource List",
		"description": "Curated links for exam prep",
		"section":     models.SectionLanguage,
		"type":        models.EvidenceTypeLink,
		"week":        "13",
		"tags":        "jlpt, resources",
		"link":        "https://jlpt.jp/e/",
	}, "", nil)
	req = visitor.WithTestVisitor(req, "v1")
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	records := store.Records("v1")
	last := records[len(records)-1]
	if last.Title != "JLPT N5 Resource List" || last.Source.URL != "https://jlpt.jp/e/" {
		t.Errorf("created record = %+v", last)
	}
	if last.Week != 13 || len(last.Tags) != 2 {
		t.Errorf("week/tags not parsed: %+v", last)
	}
	if last.Source.Ephemeral {
		t.Error("link source marked ephemeral")
	}
	if len(store.Records("someone-else")) != store.SeedCount() {
		t.Error("upload leaked to another visitor")
	}
}

func TestHandleCreate_WithFile(t *testing.T) {
	h, store := newTestHandler(t)

	req := postForm(t, map[string]string{
		"title":   "Grammar Notes Scan",
		"section": models.SectionLanguage,
		"type":    models.EvidenceTypeDoc,
		"week":    "6",
	}, "notes.pdf", []byte("%PDF-1.4 test"))
	req = visitor.WithTestVisitor(req, "v1")
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	records := store.Records("v1")
	last := records[len(records)-1]
	if !last.Source.Ephemeral {
		t.Error("file upload not marked ephemeral")
	}
	if !strings.HasPrefix(last.Source.URL, "/deliverables/blob/") {
		t.Errorf("source URL = %q", last.Source.URL)
	}

	b, ok := store.Blob("v1", last.ID)
	if !ok {
		t.Fatal("blob not stored")
	}
	if b.Name != "notes.pdf" || string(b.Data) != "%PDF-1.4 test" {
		t.Errorf("blob = %+v", b)
	}
}

func TestHandleCreate_LinkWinsOverFile(t *testing.T) {
	h, store := newTestHandler(t)

	req := postForm(t, map[string]string{
		"title":   "Both Provided",
		"section": models.SectionCulture,
		"type":    models.EvidenceTypeDoc,
		"week":    "7",
		"link":    "https://example.com/doc.pdf",
	}, "local.pdf", []byte("data"))
	req = visitor.WithTestVisitor(req, "v1")
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	records := store.Records("v1")
	last := records[len(records)-1]
	if last.Source.URL != "https://example.com/doc.pdf" || last.Source.Ephemeral {
		t.Errorf("expected link to win, got %+v", last.Source)
	}
}

func TestHandleCreate_DefaultsApplied(t *testing.T) {
	h, store := newTestHandler(t)

	req := postForm(t, map[string]string{"title": "Bare Minimum"}, "", nil)
	req = visitor.WithTestVisitor(req, "v1")
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	records := store.Records("v1")
	last := records[len(records)-1]
	if last.Section != models.DefaultSection || last.Type != models.DefaultEvidenceType || last.Week != models.MinWeek {
		t.Errorf("defaults not applied: %+v", last)
	}
}

func TestHandleCreate_RejectsMissingTitle(t *testing.T) {
	h, store := newTestHandler(t)

	req := postForm(t, map[string]string{
		"title":   "   ",
		"section": models.SectionIntro,
		"type":    models.EvidenceTypeDoc,
		"week":    "1",
	}, "", nil)
	req = visitor.WithTestVisitor(req, "v1")
	rec := httptest.NewRecorder()

	// Re-rendering the form needs the template engine, which tests don't boot.
	func() {
		defer func() { recover() }()
		h.HandleCreate(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Fatal("empty title was accepted")
	}
	if len(store.Records("v1")) != store.SeedCount() {
		t.Error("invalid submission changed the catalog")
	}
}

func TestHandleCreate_RejectsOversizedFile(t *testing.T) {
	h, store := newTestHandler(t)

	big := bytes.Repeat([]byte("x"), (1<<20)+1)
	req := postForm(t, map[string]string{
		"title":   "Huge File",
		"section": models.SectionIntro,
		"type":    models.EvidenceTypeDoc,
		"week":    "1",
	}, "huge.bin", big)
	req = visitor.WithTestVisitor(req, "v1")
	rec := httptest.NewRecorder()

	func() {
		defer func() { recover() }()
		h.HandleCreate(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Fatal("oversized file was accepted")
	}
	if len(store.Records("v1")) != store.SeedCount() {
		t.Error("oversized submission changed the catalog")
	}
}

func TestServeBlob(t *testing.T) {
	h, store := newTestHandler(t)

	store.PutBlob("v1", "u-blob", evidencestore.Blob{
		Name:        "photo.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})

	router := deliverables.Routes(h)

	req := httptest.NewRequest(http.MethodGet, "/blob/u-blob", nil)
	req = visitor.WithTestVisitor(req, "v1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "png-bytes" {
		t.Errorf("body = %q", body)
	}

	// Another visitor gets a 404, not the blob.
	req = httptest.NewRequest(http.MethodGet, "/blob/u-blob", nil)
	req = visitor.WithTestVisitor(req, "v2")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("other visitor got status %d, want 404", rec.Code)
	}
}

func TestServeListFilters(t *testing.T) {
	// ServeList renders templates, so exercise the underlying pipeline the
	// way the handler wires it: verbatim query text, "all" sentinels.
	_, store := newTestHandler(t)

	records := store.Records("v1")
	got := evidencestore.Filter(records, evidencestore.Criteria{
		Text:    "HIRAGANA",
		Section: "all",
		Type:    "all",
	})
	if len(got) != 1 || got[0].ID != "s3" {
		t.Fatalf("seed hiragana filter = %+v", got)
	}
}

func TestHandleCreate_RateLimited(t *testing.T) {
	store, err := evidencestore.New(evidencestore.Seed(), time.Hour)
	if err != nil {
		t.Fatalf("evidence store: %v", err)
	}
	logger := zap.NewNop()
	h := deliverables.NewHandler(store, 1<<20, ratelimit.New(1, time.Minute), logger, uierrors.NewErrorLogger(logger))

	submit := func() {
		req := postForm(t, map[string]string{
			"title":   "Vocabulary List",
			"section": models.SectionLanguage,
			"type":    models.EvidenceTypeLink,
			"week":    "5",
			"link":    "https://example.com/vocab",
		}, "", nil)
		req = visitor.WithTestVisitor(req, "v-limited")
		rec := httptest.NewRecorder()
		func() {
			defer func() { recover() }() // form re-render needs a booted template engine
			h.HandleCreate(rec, req)
		}()
	}

	submit()
	if got := len(store.Records("v-limited")) - store.SeedCount(); got != 1 {
		t.Fatalf("first submission should append, got %d visitor records", got)
	}

	submit()
	if got := len(store.Records("v-limited")) - store.SeedCount(); got != 1 {
		t.Errorf("second submission should be rate limited, got %d visitor records", got)
	}
}
