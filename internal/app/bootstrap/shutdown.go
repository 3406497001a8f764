// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down backends. The stores are in-memory, so
// the only cleanup is stopping the visitor sweep worker.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.Cleanup != nil {
		deps.Cleanup.Stop()
	}
	logger.Info("evidencehub shutting down",
		zap.Int("visitors_active", deps.Evidence.VisitorCount()))
	return nil
}
