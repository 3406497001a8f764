// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"time"

	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	studyresstore "github.com/dalemusser/evidencehub/internal/app/store/studyres"
	timelinestore "github.com/dalemusser/evidencehub/internal/app/store/timeline"
	"github.com/dalemusser/evidencehub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the application's backends.
//
// There is no external database: the evidence catalog, semester plan,
// and study resources are seeded in-memory stores. Construction still
// happens here so the stores get the same lifecycle treatment a real
// backend would, and seed validation failures abort startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	evidence, err := evidencestore.New(evidencestore.Seed(), appCfg.VisitorTTL)
	if err != nil {
		logger.Error("evidence seed invalid", zap.Error(err))
		return Deps{}, err
	}

	timeline, err := timelinestore.New(timelinestore.SeedWeeks(), timelinestore.SeedMilestones())
	if err != nil {
		logger.Error("semester plan seed invalid", zap.Error(err))
		return Deps{}, err
	}

	resources := studyresstore.New(studyresstore.SeedResources(), studyresstore.SeedReferences())

	return Deps{
		Evidence:  evidence,
		Timeline:  timeline,
		Resources: resources,
		Cleanup:   workers.NewVisitorCleanup(evidence, logger, appCfg.JanitorInterval),
		StartedAt: time.Now(),
	}, nil
}

// EnsureSchema would set up indexes or run migrations against a real
// database. The seeded stores validate themselves in ConnectDB, so the
// only work left is reporting what was loaded.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	logger.Info("catalogs loaded",
		zap.Int("evidence_records", deps.Evidence.SeedCount()),
		zap.Int("plan_weeks", len(deps.Timeline.Weeks())),
		zap.Int("study_resources", len(deps.Resources.Resources())))
	return nil
}
