// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/evidencehub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for EvidenceHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_name, site_title, etc.
//   - Environment variables: EVIDENCEHUB_SESSION_NAME, EVIDENCEHUB_SITE_TITLE, etc.
//   - Command-line flags: --session_name, --site_title, etc.
var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: "", Desc: "Visitor cookie signing key (random key generated when blank)"},
	{Name: "session_name", Default: "evidencehub-visitor", Desc: "Visitor cookie name"},
	{Name: "session_domain", Default: "", Desc: "Visitor cookie domain (blank means current host)"},

	// Site identity
	{Name: "site_title", Default: "GL Japan E-Portfolio", Desc: "Site title shown in the header"},
	{Name: "owner_name", Default: "Portfolio Owner", Desc: "Portfolio owner's display name"},
	{Name: "current_week", Default: 1, Desc: "Current week of the 17-week semester plan"},

	// Uploads
	{Name: "max_upload_bytes", Default: 10 << 20, Desc: "Per-file size cap for uploaded evidence (bytes)"},
	{Name: "upload_rate_per_minute", Default: 10, Desc: "Per-visitor cap on evidence submissions per minute"},

	// Visitor retention
	{Name: "visitor_ttl", Default: "2h", Desc: "Idle time before a visitor's uploads are dropped (e.g., 2h, 30m)"},
	{Name: "janitor_interval", Default: "10m", Desc: "How often expired visitors are swept"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "EVIDENCEHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		SiteTitle:   appValues.String("site_title"),
		OwnerName:   appValues.String("owner_name"),
		CurrentWeek: appValues.Int("current_week"),

		MaxUploadBytes:      int64(appValues.Int("max_upload_bytes")),
		UploadRatePerMinute: appValues.Int("upload_rate_per_minute"),

		VisitorTTL:      appValues.Duration("visitor_ttl", 2*time.Hour),
		JanitorInterval: appValues.Duration("janitor_interval", 10*time.Minute),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.CurrentWeek < models.MinWeek || appCfg.CurrentWeek > models.MaxWeek {
		return fmt.Errorf("current_week must be between %d and %d, got %d",
			models.MinWeek, models.MaxWeek, appCfg.CurrentWeek)
	}
	if appCfg.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", appCfg.MaxUploadBytes)
	}
	if appCfg.UploadRatePerMinute <= 0 {
		return fmt.Errorf("upload_rate_per_minute must be positive, got %d", appCfg.UploadRatePerMinute)
	}
	if appCfg.VisitorTTL <= 0 {
		return fmt.Errorf("visitor_ttl must be positive, got %s", appCfg.VisitorTTL)
	}
	if appCfg.JanitorInterval <= 0 {
		return fmt.Errorf("janitor_interval must be positive, got %s", appCfg.JanitorInterval)
	}
	if coreCfg.Env == "prod" && appCfg.SessionKey == "" {
		logger.Warn("session_key is blank in prod; visitor cookies will not survive restarts")
	}
	return nil
}
