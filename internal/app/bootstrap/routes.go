// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	culturefeature "github.com/dalemusser/evidencehub/internal/app/features/culture"
	deliverablesfeature "github.com/dalemusser/evidencehub/internal/app/features/deliverables"
	errorsfeature "github.com/dalemusser/evidencehub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/evidencehub/internal/app/features/health"
	homefeature "github.com/dalemusser/evidencehub/internal/app/features/home"
	languagefeature "github.com/dalemusser/evidencehub/internal/app/features/language"
	pagesfeature "github.com/dalemusser/evidencehub/internal/app/features/pages"
	planfeature "github.com/dalemusser/evidencehub/internal/app/features/plan"
	"github.com/dalemusser/evidencehub/internal/app/system/ratelimit"
	"github.com/dalemusser/evidencehub/internal/app/system/visitor"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, store construction, and any
// Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the seeded stores bundled in Deps
//   - logger: the fully configured zap.Logger for this app
//
// EvidenceHub initializes the template engine, applies the visitor
// cookie middleware, and mounts feature routers for every portfolio
// area: home, the content pages, language, culture, the semester plan,
// and the evidence deliverables.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the visitor manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	visitorMgr, err := visitor.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.VisitorTTL, secure, logger)
	if err != nil {
		logger.Error("visitor manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global visitor middleware: every request carries a signed visitor
	// id so session-scoped uploads have an owner.
	r.Use(visitorMgr.Attach)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Evidence, deps.StartedAt, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Home page
	homeHandler := homefeature.NewHandler(deps.Evidence, deps.Timeline, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Content pages: introduction, learning contract, reflection
	pagesHandler := pagesfeature.NewHandler(logger)
	pagesfeature.Routes(r, pagesHandler)

	// Language study gallery
	languageHandler := languagefeature.NewHandler(deps.Evidence, logger)
	r.Mount("/language", languagefeature.Routes(languageHandler))

	// Culture study page and resource details
	cultureHandler := culturefeature.NewHandler(deps.Evidence, deps.Resources, logger)
	r.Mount("/culture", culturefeature.Routes(cultureHandler))

	// Semester plan timeline
	planHandler := planfeature.NewHandler(deps.Timeline, logger)
	r.Mount("/plan", planfeature.Routes(planHandler))

	// Evidence catalog: list, detail, and session-scoped uploads.
	// Uploads are rate limited per visitor.
	uploadLimiter := ratelimit.New(appCfg.UploadRatePerMinute, time.Minute)
	deliverablesHandler := deliverablesfeature.NewHandler(deps.Evidence, appCfg.MaxUploadBytes, uploadLimiter, logger, errLog)
	r.Mount("/deliverables", deliverablesfeature.Routes(deliverablesHandler))

	// Friendly 404 for everything else
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
