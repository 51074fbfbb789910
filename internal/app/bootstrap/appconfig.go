// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration; ports, TLS, log level and
// the like stay in WAFFLE's CoreConfig.
type AppConfig struct {
	// Reporting backend
	ReportingBaseURL   string        // where the server fetches from (e.g., http://localhost:8000/reporting-module/)
	ReportingPublicURL string        // what the browser is sent to for downloads (blank means ReportingBaseURL)
	ReportingTimeout   time.Duration // per-request timeout for backend reads

	// Handler budgets
	PageTimeout time.Duration // everything one page render may wait for
	PingTimeout time.Duration // /health backend check

	// Abuse protection
	PageRateLimit int // page loads per client per minute (0 disables)

	// Presentation
	SiteName string // shown in the page header
}
