package bootstrap

import (
	"context"
	"encoding/json"
	"html"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/commtrack/internal/app/system/timeouts"
	"github.com/dalemusser/commtrack/internal/app/system/viewdata"
	"github.com/dalemusser/commtrack/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

const testPublicURL = "https://reports.example.com/reporting-module/"

// bootApp runs the app's lifecycle hooks up to BuildHandler against backend.
func bootApp(t *testing.T, backend *testutil.FakeBackend, mutate func(*AppConfig)) (http.Handler, BackendDeps) {
	t.Helper()

	coreCfg := &config.CoreConfig{Env: "prod"}
	cfg := validAppConfig()
	cfg.ReportingBaseURL = backend.BaseURL()
	cfg.ReportingPublicURL = testPublicURL
	if mutate != nil {
		mutate(&cfg)
	}

	ctx := context.Background()
	logger := zap.NewNop()

	deps, err := ConnectDB(ctx, coreCfg, cfg, logger)
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	t.Cleanup(func() {
		_ = Shutdown(ctx, coreCfg, cfg, deps, logger)
		timeouts.Reset()
		viewdata.Init("")
	})

	if err := Startup(ctx, coreCfg, cfg, deps, logger); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	h, err := BuildHandler(coreCfg, cfg, deps, logger)
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	return h, deps
}

func get(h http.Handler, target string) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, target))
	return rec
}

func TestRouter_RootRedirectsToDashboard(t *testing.T) {
	h, _ := bootApp(t, testutil.NewFakeBackend(t), nil)

	get(h, "/").AssertRedirect(t, "/dashboard")
}

func TestRouter_HealthPingsBackend(t *testing.T) {
	h, _ := bootApp(t, testutil.NewFakeBackend(t), nil)

	rec := get(h, "/health")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"backend":"reachable"`)
}

func TestRouter_DashboardPage(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	testutil.SeedDashboard(backend)
	h, _ := bootApp(t, backend, nil)

	rec := get(h, "/dashboard")

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Communication Frequency Report")
	rec.AssertContains(t, "Engagement Effectiveness Dashboard")
	rec.AssertContains(t, "Overdue Communication Trends")
	rec.AssertContains(t, "Real-Time Activity Log")
	rec.AssertContains(t, "2024-01-01 - alice: sent")
	rec.AssertContains(t, html.EscapeString(testutil.FrequencyJSON))
	rec.AssertContains(t, testPublicURL+"reports/download/csv")
	rec.AssertContains(t, testPublicURL+"reports/download/pdf")
}

func TestRouter_DashboardPageSurvivesFailedSlice(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	testutil.SeedDashboard(backend)
	backend.Respond("communication-frequency", http.StatusInternalServerError, "down")
	h, _ := bootApp(t, backend, nil)

	rec := get(h, "/dashboard")

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, html.EscapeString(`{"labels":[],"datasets":[]}`))
	rec.AssertContains(t, "2024-01-01 - alice: sent")
}

func TestRouter_ReportListPage(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Respond("reports/", http.StatusOK, testutil.ReportsJSON)
	h, _ := bootApp(t, backend, nil)

	rec := get(h, "/reports")

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `<span class="primary">Acme - 2024-02-02</span>`)
	rec.AssertContains(t, `<span class="secondary">ok</span>`)
	if n := strings.Count(rec.Body.String(), "<li"); n != 1 {
		t.Errorf("rendered %d rows, want 1", n)
	}
}

func TestRouter_ReportListPageEmpty(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Respond("reports/", http.StatusOK, `[]`)
	h, _ := bootApp(t, backend, nil)

	rec := get(h, "/reports")

	rec.AssertStatus(t, http.StatusOK)
	if n := strings.Count(rec.Body.String(), "<li"); n != 0 {
		t.Errorf("rendered %d rows, want 0", n)
	}
}

func TestRouter_NotFoundPage(t *testing.T) {
	h, _ := bootApp(t, testutil.NewFakeBackend(t), nil)

	rec := get(h, "/nope")

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Page not found")
}

func TestRouter_DashboardDataUsesBackend(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	testutil.SeedDashboard(backend)
	h, _ := bootApp(t, backend, nil)

	rec := get(h, "/dashboard/data")
	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Frequency json.RawMessage `json:"frequency"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(body.Frequency) != testutil.FrequencyJSON {
		t.Errorf("frequency = %s, want %s", body.Frequency, testutil.FrequencyJSON)
	}
	if got := backend.Hits("communication-frequency"); got != 1 {
		t.Errorf("communication-frequency hits = %d, want 1", got)
	}
}

func TestRouter_RateLimitsPages(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	testutil.SeedDashboard(backend)
	h, _ := bootApp(t, backend, func(c *AppConfig) { c.PageRateLimit = 1 })

	get(h, "/dashboard/data").AssertStatus(t, http.StatusOK)
	get(h, "/dashboard/data").AssertStatus(t, http.StatusTooManyRequests)

	// /health is outside the limited group.
	get(h, "/health").AssertStatus(t, http.StatusOK)
}

func TestConnectDB_NoLimiterWhenDisabled(t *testing.T) {
	cfg := validAppConfig()
	cfg.PageRateLimit = 0

	deps, err := ConnectDB(context.Background(), nil, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if deps.Limiter != nil {
		t.Error("Limiter set with page_rate_limit 0")
	}
}

func TestShutdown_StopsLimiter(t *testing.T) {
	cfg := validAppConfig()

	deps, err := ConnectDB(context.Background(), nil, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if deps.Limiter == nil {
		t.Fatal("Limiter not built")
	}

	if err := Shutdown(context.Background(), nil, cfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case <-deps.Limiter.Done():
	case <-time.After(time.Second):
		t.Fatal("limiter cleanup loop still running after Shutdown")
	}
}

func TestBuildHandler_RejectsBadPublicURL(t *testing.T) {
	cfg := validAppConfig()
	cfg.ReportingPublicURL = "not a url"

	if _, err := BuildHandler(&config.CoreConfig{}, cfg, BackendDeps{}, zap.NewNop()); err == nil {
		t.Error("BuildHandler() = nil error, want error")
	}
}

func TestStartup_AppliesConfig(t *testing.T) {
	t.Cleanup(func() {
		timeouts.Reset()
		viewdata.Init("")
	})

	cfg := validAppConfig()
	cfg.PingTimeout = 3 * time.Second
	cfg.ReportingTimeout = 4 * time.Second
	cfg.SiteName = "Acme Comms"

	if err := Startup(context.Background(), nil, cfg, BackendDeps{}, zap.NewNop()); err != nil {
		t.Fatalf("Startup: %v", err)
	}

	if got := timeouts.Ping(); got != 3*time.Second {
		t.Errorf("timeouts.Ping() = %v, want 3s", got)
	}
	if got := timeouts.Fetch(); got != 4*time.Second {
		t.Errorf("timeouts.Fetch() = %v, want 4s", got)
	}
	if got := timeouts.Page(); got != cfg.PageTimeout {
		t.Errorf("timeouts.Page() = %v, want %v", got, cfg.PageTimeout)
	}
	if got := viewdata.SiteName(); got != "Acme Comms" {
		t.Errorf("viewdata.SiteName() = %q, want %q", got, "Acme Comms")
	}
}
