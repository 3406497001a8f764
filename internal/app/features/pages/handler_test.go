// internal/app/features/pages/handler_test.go
package pages

import (
	"strings"
	"testing"
)

func TestAllPagesAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range allPages() {
		if p.Slug == "" || p.Title == "" {
			t.Errorf("page %+v missing slug or title", p)
		}
		if seen[p.Slug] {
			t.Errorf("duplicate page slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if len(p.Sections) == 0 {
			t.Errorf("page %q has no sections", p.Slug)
		}
		for _, s := range p.Sections {
			if s.Heading == "" || s.Body == "" {
				t.Errorf("page %q has an empty section", p.Slug)
			}
		}
	}
	for _, want := range []string{"intro", "contract", "reflection"} {
		if !seen[want] {
			t.Errorf("page %q is missing", want)
		}
	}
}

func TestPageContentIsSanitized(t *testing.T) {
	for _, p := range allPages() {
		for _, s := range p.Sections {
			if strings.Contains(string(s.Body), "<script") {
				t.Errorf("page %q section %q contains script", p.Slug, s.Heading)
			}
		}
	}
}

func TestNewHandlerIndexesPages(t *testing.T) {
	h := NewHandler(nil)
	if _, ok := h.pages["intro"]; !ok {
		t.Fatal("intro page not indexed")
	}
	if _, ok := h.pages["nope"]; ok {
		t.Fatal("unexpected page indexed")
	}
}
