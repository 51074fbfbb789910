// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/commtrack/internal/app/resources"
	"github.com/dalemusser/commtrack/internal/app/system/timeouts"
	"github.com/dalemusser/commtrack/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the backend client
// is built, but before the HTTP handler is. It applies configured timeouts,
// sets the site name, and registers the shared layout templates.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps BackendDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:  appCfg.PingTimeout,
		Fetch: appCfg.ReportingTimeout,
		Page:  appCfg.PageTimeout,
	})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("ping", cur.Ping),
		zap.Duration("fetch", cur.Fetch),
		zap.Duration("page", cur.Page))

	viewdata.Init(appCfg.SiteName)
	resources.LoadSharedTemplates()
	return nil
}
