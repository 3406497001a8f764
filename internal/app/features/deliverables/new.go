// internal/app/features/deliverables/new.go
package deliverables

import (
	"io"
	"net/http"
	"strings"

	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	"github.com/dalemusser/evidencehub/internal/app/system/formutil"
	"github.com/dalemusser/evidencehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/evidencehub/internal/app/system/inputval"
	"github.com/dalemusser/evidencehub/internal/app/system/limits"
	"github.com/dalemusser/evidencehub/internal/app/system/navigation"
	"github.com/dalemusser/evidencehub/internal/app/system/ratelimit"
	"github.com/dalemusser/evidencehub/internal/app/system/visitor"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// evidenceFormVM echoes submitted values back into the upload form.
type evidenceFormVM struct {
	EvidenceTitle string
	Description   string
	Section       string
	Type          string
	Week          int
	TagsText      string
	Link          string
}

type formData struct {
	formutil.Base
	Form     evidenceFormVM
	Sections []filterOption
	Types    []filterOption
	MinWeek  int
	MaxWeek  int
}

func (h *Handler) renderNewForm(w http.ResponseWriter, r *http.Request, vm evidenceFormVM, msg string) {
	if vm.Section == "" {
		vm.Section = models.DefaultSection
	}
	if vm.Type == "" {
		vm.Type = models.DefaultEvidenceType
	}
	if vm.Week == 0 {
		vm.Week = models.MinWeek
	}

	data := formData{
		Form:     vm,
		Sections: sectionOptions()[1:], // no "all" sentinel in the form
		Types:    typeOptions()[1:],
		MinWeek:  models.MinWeek,
		MaxWeek:  models.MaxWeek,
	}
	formutil.SetBase(&data.Base, r, "Add Evidence", "/deliverables")
	if msg != "" {
		data.SetError(msg)
	}

	templates.Render(w, r, "deliverable_new", data)
}

// ServeNew handles GET /deliverables/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderNewForm(w, r, evidenceFormVM{}, "")
}

// HandleCreate handles POST /deliverables/new.
//
// A record can point at an external link or at an uploaded file. When both
// are supplied the link wins, matching the upload form's own hint. Uploaded
// bytes are held in the visitor's session and served from the blob route;
// nothing is written to disk.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := visitor.ID(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "create evidence without visitor session", nil, "Your session could not be identified. Please reload and try again.", "/deliverables")
		return
	}

	if h.Uploads != nil && !h.Uploads.Allow(visitorID) {
		h.Log.Warn("evidence upload rate limited", zap.String("visitor", visitorID), zap.String("ip", ratelimit.ClientIP(r)))
		h.renderNewForm(w, r, evidenceFormVM{}, "Too many submissions. Please wait a minute and try again.")
		return
	}

	if err := r.ParseMultipartForm(limits.MaxEvidenceFormSize); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse evidence form failed", err, "Invalid form data.", "/deliverables")
		return
	}

	title := htmlsanitize.StripTags(strings.TrimSpace(r.FormValue("title")))
	description := htmlsanitize.StripTags(strings.TrimSpace(r.FormValue("description")))
	section := strings.TrimSpace(r.FormValue("section"))
	typeValue := strings.TrimSpace(r.FormValue("type"))
	week := inputval.ParseWeek(r.FormValue("week"), models.MinWeek)
	tagsText := strings.TrimSpace(r.FormValue("tags"))
	link := strings.TrimSpace(r.FormValue("link"))

	if section == "" {
		section = models.DefaultSection
	}
	if typeValue == "" {
		typeValue = models.DefaultEvidenceType
	}

	file, header, fileErr := r.FormFile("file")
	hasFile := fileErr == nil && header != nil && header.Size > 0
	if hasFile {
		defer file.Close()
	}

	// Helper to re-render the form with a message
	reRender := func(msg string) {
		vm := evidenceFormVM{
			EvidenceTitle: title,
			Description:   description,
			Section:       section,
			Type:          typeValue,
			Week:          week,
			TagsText:      tagsText,
			Link:          link,
		}
		h.renderNewForm(w, r, vm, msg)
	}

	if title == "" {
		reRender("Title is required.")
		return
	}
	if !models.IsValidSection(section) {
		reRender("Section is invalid.")
		return
	}
	if !models.IsValidEvidenceType(typeValue) {
		reRender("Type is invalid.")
		return
	}
	if link != "" && !urlutil.IsValidAbsHTTPURL(link) {
		reRender("Link must be a valid absolute URL (e.g., https://example.com).")
		return
	}

	rec := models.EvidenceRecord{
		ID:          "u-" + uuid.NewString(),
		Title:       title,
		Description: description,
		Section:     section,
		Type:        typeValue,
		Week:        week,
		Tags:        inputval.SplitTags(tagsText),
	}

	// Link wins over file when both are present.
	var blob *evidencestore.Blob
	switch {
	case link != "":
		rec.Source = models.Source{URL: link}
	case hasFile:
		if h.MaxUploadBytes > 0 && header.Size > h.MaxUploadBytes {
			reRender("File is too large.")
			return
		}
		data, err := io.ReadAll(io.LimitReader(file, h.MaxUploadBytes+1))
		if err != nil {
			h.Log.Error("read evidence upload failed", zap.Error(err))
			reRender("Failed to read the uploaded file. Please try again.")
			return
		}
		if h.MaxUploadBytes > 0 && int64(len(data)) > h.MaxUploadBytes {
			reRender("File is too large.")
			return
		}
		ct := header.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}
		blob = &evidencestore.Blob{Name: header.Filename, ContentType: ct, Data: data}
		rec.Source = models.Source{URL: "/deliverables/blob/" + rec.ID, Ephemeral: true}
	}

	created, err := h.Evidence.Append(visitorID, rec)
	if err != nil {
		h.Log.Warn("append evidence rejected", zap.Error(err))
		reRender("Could not save the evidence item. Please check the form and try again.")
		return
	}
	if blob != nil {
		h.Evidence.PutBlob(visitorID, created.ID, *blob)
	}

	h.Log.Info("evidence added",
		zap.String("id", created.ID),
		zap.String("section", created.Section),
		zap.String("type", created.Type),
	)

	back := navigation.SafeBackURL(r, navigation.DeliverablesBackURL)
	http.Redirect(w, r, back, http.StatusSeeOther)
}
