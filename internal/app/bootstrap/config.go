// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/commtrack/internal/app/system/reporting"
	"github.com/dalemusser/commtrack/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for commtrack.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: reporting_base_url, page_timeout, etc.
//   - Environment variables: COMMTRACK_REPORTING_BASE_URL, COMMTRACK_PAGE_TIMEOUT, etc.
//   - Command-line flags: --reporting_base_url, --page_timeout, etc.
var appConfigKeys = []config.AppKey{
	{Name: "reporting_base_url", Default: reporting.DefaultBaseURL, Desc: "Reporting backend base URL used for server-side reads"},
	{Name: "reporting_public_url", Default: "", Desc: "Reporting backend base URL as seen by browsers, for download links (blank means reporting_base_url)"},
	{Name: "reporting_timeout", Default: "10s", Desc: "Timeout for a single reporting backend request (e.g., 10s, 1m)"},
	{Name: "page_timeout", Default: "15s", Desc: "Overall time budget for loading one page's data"},
	{Name: "ping_timeout", Default: "2s", Desc: "Timeout for the /health backend check"},
	{Name: "page_rate_limit", Default: 120, Desc: "Page loads allowed per client IP per minute (0 disables)"},
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the page header"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, COMMTRACK_* for app) and flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "COMMTRACK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		ReportingBaseURL:   appValues.String("reporting_base_url"),
		ReportingPublicURL: appValues.String("reporting_public_url"),
		ReportingTimeout:   appValues.Duration("reporting_timeout", 10*time.Second),
		PageTimeout:        appValues.Duration("page_timeout", 15*time.Second),
		PingTimeout:        appValues.Duration("ping_timeout", 2*time.Second),
		PageRateLimit:      appValues.Int("page_rate_limit"),
		SiteName:           appValues.String("site_name"),
	}

	if strings.TrimSpace(appCfg.ReportingPublicURL) == "" {
		appCfg.ReportingPublicURL = appCfg.ReportingBaseURL
		logger.Debug("reporting_public_url not set; using reporting_base_url",
			zap.String("reporting_public_url", appCfg.ReportingPublicURL))
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Both backend URLs must be absolute http(s) URLs, and the timeouts must be
// positive, so misconfiguration fails at startup rather than on first page load.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if _, err := reporting.ParseBaseURL(appCfg.ReportingBaseURL); err != nil {
		logger.Error("invalid reporting_base_url", zap.Error(err))
		return fmt.Errorf("invalid reporting_base_url: %w", err)
	}
	if _, err := reporting.ParseBaseURL(appCfg.ReportingPublicURL); err != nil {
		logger.Error("invalid reporting_public_url", zap.Error(err))
		return fmt.Errorf("invalid reporting_public_url: %w", err)
	}

	if appCfg.ReportingTimeout <= 0 {
		return fmt.Errorf("reporting_timeout must be positive, got %s", appCfg.ReportingTimeout)
	}
	if appCfg.PageTimeout <= 0 {
		return fmt.Errorf("page_timeout must be positive, got %s", appCfg.PageTimeout)
	}
	if appCfg.PingTimeout <= 0 {
		return fmt.Errorf("ping_timeout must be positive, got %s", appCfg.PingTimeout)
	}

	if appCfg.PageRateLimit < 0 {
		return fmt.Errorf("page_rate_limit must not be negative, got %d", appCfg.PageRateLimit)
	}

	return nil
}
