// internal/app/features/deliverables/list.go
package deliverables

import (
	"net/http"
	"net/url"

	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/evidencehub/internal/app/system/visitor"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// filterOption is one entry in a filter control.
type filterOption struct {
	Value string
	Label string
}

type listData struct {
	viewdata.BaseVM
	Q       string
	Section string
	Type    string
	View    string

	Sections []filterOption
	Types    []filterOption

	Cards   []cardVM
	Summary evidencestore.Summary
	Shown   int
}

func sectionOptions() []filterOption {
	opts := make([]filterOption, 0, len(models.Sections)+1)
	opts = append(opts, filterOption{Value: evidencestore.FilterAll, Label: "All Sections"})
	for _, s := range models.Sections {
		opts = append(opts, filterOption{Value: s, Label: models.SectionLabel(s)})
	}
	return opts
}

func typeOptions() []filterOption {
	opts := make([]filterOption, 0, len(models.EvidenceTypes)+1)
	opts = append(opts, filterOption{Value: evidencestore.FilterAll, Label: "All Types"})
	for _, t := range models.EvidenceTypes {
		opts = append(opts, filterOption{Value: t, Label: t})
	}
	return opts
}

// ServeList handles GET /deliverables.
//
// Supports q (text search), section, and type query parameters; section and
// type default to the "all" sentinel. HTMX requests targeting the grid get
// just the grid snippet back.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := visitor.ID(r)
	h.Evidence.Touch(visitorID)

	q := query.Search(r, "q")
	section := query.Get(r, "section")
	if section == "" {
		section = evidencestore.FilterAll
	}
	typ := query.Get(r, "type")
	if typ == "" {
		typ = evidencestore.FilterAll
	}
	view := query.Get(r, "view")
	if view != "list" {
		view = "grid"
	}

	records := h.Evidence.Records(visitorID)
	filtered := evidencestore.Filter(records, evidencestore.Criteria{
		Text:    q,
		Section: section,
		Type:    typ,
	})

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Deliverables", "/"),
		Q:        q,
		Section:  section,
		Type:     typ,
		View:     view,
		Sections: sectionOptions(),
		Types:    typeOptions(),
		Cards:    makeCards(filtered, url.QueryEscape(r.URL.RequestURI())),
		Summary:  evidencestore.Summarize(records),
		Shown:    len(filtered),
	}

	// HTMX partial grid refresh
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "evidence-grid-wrap" {
		templates.RenderSnippet(w, "deliverables_grid", data)
		return
	}

	templates.Render(w, r, "deliverables_list", data)
}
