// internal/app/features/language/handler.go
package language

import (
	"net/http"

	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	"github.com/dalemusser/evidencehub/internal/app/system/embedurl"
	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/evidencehub/internal/app/system/visitor"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the language journey page: a type-filtered gallery of the
// language-section evidence plus headline study numbers.
type Handler struct {
	Evidence *evidencestore.Store
	Log      *zap.Logger
}

func NewHandler(evidence *evidencestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Evidence: evidence, Log: logger}
}

// studyStat is one headline number on the language page.
type studyStat struct {
	Label string
	Value string
}

// prompt is a reflection question with its short answer.
type prompt struct {
	Question string
	Answer   string
}

type cardVM struct {
	Record   models.EvidenceRecord
	ThumbURL string
}

type pageData struct {
	viewdata.BaseVM
	Type    string
	Types   []typeOption
	Cards   []cardVM
	Stats   []studyStat
	Prompts []prompt
}

type typeOption struct {
	Value string
	Label string
}

var typeFilters = []typeOption{
	{Value: evidencestore.FilterAll, Label: "All Types"},
	{Value: models.EvidenceTypeImage, Label: "Images"},
	{Value: models.EvidenceTypeVideo, Label: "Videos"},
	{Value: models.EvidenceTypeDoc, Label: "Documents"},
}

var studyStats = []studyStat{
	{Label: "Kanji Learned", Value: "50+"},
	{Label: "Vocabulary Words", Value: "200+"},
	{Label: "Speaking Sessions", Value: "8"},
	{Label: "Study Hours", Value: "60+"},
}

var reflectionPrompts = []prompt{
	{
		Question: "What was the most challenging aspect of learning Japanese?",
		Answer:   "Memorizing kanji was initially overwhelming, but using spaced repetition helped tremendously.",
	},
	{
		Question: "How has your learning approach evolved?",
		Answer:   "I shifted from passive study to active practice, incorporating speaking exercises earlier.",
	},
	{
		Question: "What surprised you about the Japanese language?",
		Answer:   "The contextual nature of communication - so much meaning comes from context rather than explicit words.",
	},
}

// ServePage handles GET /language. Supports a type query parameter; HTMX
// requests targeting the gallery get just the gallery snippet back.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := visitor.ID(r)
	h.Evidence.Touch(visitorID)

	typ := query.Get(r, "type")
	if typ == "" {
		typ = evidencestore.FilterAll
	}

	filtered := evidencestore.Filter(h.Evidence.Records(visitorID), evidencestore.Criteria{
		Section: models.SectionLanguage,
		Type:    typ,
	})

	cards := make([]cardVM, len(filtered))
	for i, rec := range filtered {
		thumb := rec.Source.URL
		if rec.IsEmbed() {
			thumb = embedurl.YouTubeThumbnail(rec.Source.URL)
		} else if rec.Type == models.EvidenceTypeDoc || rec.Type == models.EvidenceTypeLink {
			thumb = ""
		}
		cards[i] = cardVM{Record: rec, ThumbURL: thumb}
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Language Journey", "/"),
		Type:    typ,
		Types:   typeFilters,
		Cards:   cards,
		Stats:   studyStats,
		Prompts: reflectionPrompts,
	}

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "language-gallery-wrap" {
		templates.RenderSnippet(w, "language_gallery", data)
		return
	}

	templates.Render(w, r, "language_page", data)
}
