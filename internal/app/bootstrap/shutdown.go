// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the rate limiter's cleanup loop and releases pooled
// connections to the reporting backend.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps BackendDeps, logger *zap.Logger) error {
	if deps.Limiter != nil {
		deps.Limiter.Stop()
	}
	if deps.Reporting != nil {
		logger.Info("closing reporting backend connections")
		deps.Reporting.CloseIdleConnections()
	}
	return nil
}
