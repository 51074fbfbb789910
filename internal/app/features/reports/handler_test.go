package reports_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/commtrack/internal/app/features/reports"
	"github.com/dalemusser/commtrack/internal/app/system/reporting"
	"github.com/dalemusser/commtrack/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHandler(t *testing.T, backend *testutil.FakeBackend, logger *zap.Logger) *reports.Handler {
	t.Helper()
	client, err := reporting.New(backend.BaseURL(), 5*time.Second, logger)
	if err != nil {
		t.Fatalf("reporting.New: %v", err)
	}
	return reports.NewHandler(client, logger)
}

func TestLoad_UsesTrailingSlashPath(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Respond("reports/", http.StatusOK, testutil.ReportsJSON)
	h := newTestHandler(t, backend, zap.NewNop())

	res := h.Load(context.Background())
	if !res.OK() {
		t.Fatalf("Load: %v", res.Err)
	}
	if len(res.Data) != 1 {
		t.Fatalf("expected 1 report, got %d", len(res.Data))
	}
	if backend.Hits("reports/") != 1 || backend.Hits("reports") != 0 {
		t.Errorf("hits: reports/=%d reports=%d", backend.Hits("reports/"), backend.Hits("reports"))
	}
}

func TestLoad_FailureLogsAndReturnsEmpty(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Respond("reports/", http.StatusBadGateway, "upstream")

	core, logs := observer.New(zapcore.WarnLevel)
	h := newTestHandler(t, backend, zap.New(core))

	res := h.Load(context.Background())
	if res.OK() {
		t.Fatal("expected failure")
	}
	if res.Data == nil || len(res.Data) != 0 {
		t.Errorf("Data = %#v, want empty list", res.Data)
	}
	if logs.FilterMessage("report list fetch failed").Len() != 1 {
		t.Errorf("expected one warning, got %d entries", logs.Len())
	}
}

func TestLoad_EmptyCollection(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Respond("reports/", http.StatusOK, `[]`)
	h := newTestHandler(t, backend, zap.NewNop())

	res := h.Load(context.Background())
	if !res.OK() || len(res.Data) != 0 {
		t.Errorf("res = %+v, want ok and empty", res)
	}
}

func TestLoad_RemountFetchesAgain(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Respond("reports/", http.StatusOK, testutil.ReportsJSON)
	h := newTestHandler(t, backend, zap.NewNop())

	_ = h.Load(context.Background())
	backend.Respond("reports/", http.StatusInternalServerError, "gone")
	res := h.Load(context.Background())

	if len(res.Data) != 0 {
		t.Errorf("second load kept stale reports: %+v", res.Data)
	}
	if backend.Hits("reports/") != 2 {
		t.Errorf("hits = %d, want 2", backend.Hits("reports/"))
	}
}

func TestRoutes(t *testing.T) {
	h := newTestHandler(t, testutil.NewFakeBackend(t), zap.NewNop())
	if reports.Routes(h) == nil {
		t.Fatal("Routes() returned nil")
	}
}
