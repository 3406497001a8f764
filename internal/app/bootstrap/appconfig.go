// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request body size limits. AppConfig is
// where everything specific to this application lives: site identity,
// visitor cookie settings, and bounds for session-scoped uploads.
type AppConfig struct {
	// Session management configuration
	SessionKey    string // Secret key for signing the visitor cookie (must be strong in production)
	SessionName   string // Cookie name for the anonymous visitor id
	SessionDomain string // Cookie domain (blank means current host)

	// Site identity shown in the shared layout
	SiteTitle string // Title shown in the header and page titles
	OwnerName string // Portfolio owner's display name

	// CurrentWeek marks where the semester currently stands on the
	// 17-week plan. Drives the timeline progress bar and highlights.
	CurrentWeek int

	// Upload configuration for visitor-attached evidence files
	MaxUploadBytes      int64 // Per-file cap for uploaded evidence
	UploadRatePerMinute int   // Per-visitor cap on evidence submissions per minute

	// Visitor retention
	VisitorTTL      time.Duration // Idle time before a visitor's uploads are dropped
	JanitorInterval time.Duration // How often the sweep runs
}
