// internal/app/features/deliverables/handler.go
package deliverables

import (
	uierrors "github.com/dalemusser/evidencehub/internal/app/features/errors"
	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	"github.com/dalemusser/evidencehub/internal/app/system/embedurl"
	"github.com/dalemusser/evidencehub/internal/app/system/ratelimit"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the evidence gallery: the filterable list, detail views,
// the upload form, and session-scoped upload blobs.
type Handler struct {
	Evidence       *evidencestore.Store
	MaxUploadBytes int64
	Uploads        *ratelimit.Limiter
	Log            *zap.Logger
	ErrLog         *uierrors.ErrorLogger
}

func NewHandler(evidence *evidencestore.Store, maxUploadBytes int64, uploads *ratelimit.Limiter, logger *zap.Logger, errLog *uierrors.ErrorLogger) *Handler {
	return &Handler{
		Evidence:       evidence,
		MaxUploadBytes: maxUploadBytes,
		Uploads:        uploads,
		Log:            logger,
		ErrLog:         errLog,
	}
}

// cardVM is one evidence record prepared for gallery display.
type cardVM struct {
	Record   models.EvidenceRecord
	ThumbURL string
	Return   string
}

// thumbURL picks the still image shown on a record's gallery card. Embedded
// videos get the hosting platform's thumbnail; images and directly hosted
// videos show their own content; docs and links fall back to a type
// placeholder rendered by the template.
func thumbURL(rec models.EvidenceRecord) string {
	if rec.IsEmbed() {
		return embedurl.YouTubeThumbnail(rec.Source.URL)
	}
	switch rec.Type {
	case models.EvidenceTypeImage, models.EvidenceTypeVideo:
		return rec.Source.URL
	}
	return ""
}

func makeCards(records []models.EvidenceRecord, returnTo string) []cardVM {
	cards := make([]cardVM, len(records))
	for i, rec := range records {
		cards[i] = cardVM{Record: rec, ThumbURL: thumbURL(rec), Return: returnTo}
	}
	return cards
}
