// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/commtrack/internal/app/system/ratelimit"
	"github.com/dalemusser/commtrack/internal/app/system/reporting"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// BackendDeps holds the back-end clients the app talks to, plus the page
// rate limiter that guards them. commtrack keeps no database of its own;
// everything it shows comes from the reporting backend.
type BackendDeps struct {
	Reporting *reporting.Client
	Limiter   *ratelimit.Limiter // nil when page_rate_limit is 0
}

// ConnectDB builds the reporting backend client and, when configured, the
// page rate limiter. It does not contact the backend; an unreachable backend
// shows up in /health and as empty views.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (BackendDeps, error) {
	client, err := reporting.New(appCfg.ReportingBaseURL, appCfg.ReportingTimeout, logger.Named("reporting"))
	if err != nil {
		logger.Error("reporting client init failed", zap.Error(err))
		return BackendDeps{}, err
	}

	logger.Info("reporting backend configured",
		zap.String("base_url", client.BaseURL()),
		zap.Duration("timeout", appCfg.ReportingTimeout))

	deps := BackendDeps{Reporting: client}
	if appCfg.PageRateLimit > 0 {
		deps.Limiter = ratelimit.New(appCfg.PageRateLimit, time.Minute)
		logger.Info("page rate limit enabled", zap.Int("per_minute", appCfg.PageRateLimit))
	}

	return deps, nil
}
