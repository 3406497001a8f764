// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the stores are
// built, but before the HTTP handler is constructed. It publishes the
// site identity used by every view and starts the visitor janitor.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	viewdata.Init(viewdata.Site{
		Title:       appCfg.SiteTitle,
		OwnerName:   appCfg.OwnerName,
		CurrentWeek: appCfg.CurrentWeek,
	})

	// Visitor uploads are session-scoped; sweep idle visitors so the
	// in-memory blobs do not accumulate forever.
	deps.Cleanup.Start()

	return nil
}
