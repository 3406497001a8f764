// internal/app/system/workers/visitorcleanup.go
package workers

import (
	"sync"
	"time"

	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	"go.uber.org/zap"
)

// VisitorCleanup is a background worker that drops evidence and upload
// blobs belonging to visitors who have been idle past the store's TTL.
type VisitorCleanup struct {
	evidence *evidencestore.Store
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewVisitorCleanup creates a new visitor cleanup worker.
//
// Parameters:
//   - evidence: the evidence store whose visitor state gets swept
//   - logger: zap logger for logging
//   - interval: how often to run the sweep (e.g., 10 minutes)
func NewVisitorCleanup(evidence *evidencestore.Store, logger *zap.Logger, interval time.Duration) *VisitorCleanup {
	return &VisitorCleanup{
		evidence: evidence,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *VisitorCleanup) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("visitor cleanup worker started",
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *VisitorCleanup) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("visitor cleanup worker stopped")
}

func (w *VisitorCleanup) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *VisitorCleanup) sweep() {
	if count := w.evidence.Sweep(); count > 0 {
		w.log.Info("expired visitor evidence swept", zap.Int("visitors", count))
	}
}
