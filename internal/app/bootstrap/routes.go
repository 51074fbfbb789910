// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/commtrack/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/commtrack/internal/app/features/errors"
	healthfeature "github.com/dalemusser/commtrack/internal/app/features/health"
	reportsfeature "github.com/dalemusser/commtrack/internal/app/features/reports"
	"github.com/dalemusser/commtrack/internal/app/system/ratelimit"
	"github.com/dalemusser/commtrack/internal/app/system/reporting"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the backend client, and the Startup
// hook have completed. commtrack boots the template engine once and mounts
// the dashboard, report list, and health feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps BackendDeps, logger *zap.Logger) (http.Handler, error) {
	publicBase, err := reporting.ParseBaseURL(appCfg.ReportingPublicURL)
	if err != nil {
		logger.Error("invalid reporting_public_url", zap.Error(err))
		return nil, err
	}
	links := dashboardfeature.DownloadLinks{
		CSV: reporting.ResolveURL(publicBase, reporting.PathDownloadCSV),
		PDF: reporting.ResolveURL(publicBase, reporting.PathDownloadPDF),
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

	// A panicking handler gets a logged 500 page instead of a dropped connection.
	r.Use(errLog.Recover)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Reporting, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	// Backend-reading pages, rate limited per client when configured
	r.Group(func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(ratelimit.Middleware(deps.Limiter, logger))
		}

		dashboardHandler := dashboardfeature.NewHandler(deps.Reporting, links, errLog, logger)
		r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		reportsHandler := reportsfeature.NewHandler(deps.Reporting, logger)
		r.Mount("/reports", reportsfeature.Routes(reportsHandler))
	})

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
