// internal/app/bootstrap/deps.go
package bootstrap

import (
	"time"

	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	studyresstore "github.com/dalemusser/evidencehub/internal/app/store/studyres"
	timelinestore "github.com/dalemusser/evidencehub/internal/app/store/timeline"
	"github.com/dalemusser/evidencehub/internal/app/system/workers"
)

// Deps holds the back-end dependencies for the app.
//
// All three stores are seeded in-memory catalogs; there is no external
// database. Extend this struct if a persistent backend is ever added.
type Deps struct {
	Evidence  *evidencestore.Store
	Timeline  *timelinestore.Store
	Resources *studyresstore.Store

	Cleanup   *workers.VisitorCleanup
	StartedAt time.Time
}
