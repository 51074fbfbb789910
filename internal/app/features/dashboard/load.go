// internal/app/features/dashboard/load.go
package dashboard

import (
	"context"
	"errors"

	"github.com/dalemusser/commtrack/internal/app/system/fetch"
	"github.com/dalemusser/commtrack/internal/app/system/reporting"
	"github.com/dalemusser/commtrack/internal/app/system/timeouts"
	"github.com/dalemusser/commtrack/internal/domain/models"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Slice names, used in logs and in the JSON error map.
const (
	SliceFrequency     = "frequency"
	SliceEffectiveness = "effectiveness"
	SliceOverdueTrends = "overdue_trends"
	SliceReports       = "reports"
	SliceActivityLog   = "activity_log"
)

// Snapshot is everything one dashboard render shows. Each field is filled by
// its own request and never touched by the others.
type Snapshot struct {
	Frequency     fetch.Result[models.ChartData]
	Effectiveness fetch.Result[models.ChartData]
	OverdueTrends fetch.Result[models.ChartData]
	Reports       fetch.Result[[]models.Report]
	ActivityLog   fetch.Result[[]models.ActivityEntry]
}

// Errors maps each failed slice to its error message. Nil when all succeeded.
func (s Snapshot) Errors() map[string]string {
	var out map[string]string
	add := func(name, msg string) {
		if msg == "" {
			return
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[name] = msg
	}
	add(SliceFrequency, s.Frequency.ErrString())
	add(SliceEffectiveness, s.Effectiveness.ErrString())
	add(SliceOverdueTrends, s.OverdueTrends.ErrString())
	add(SliceReports, s.Reports.ErrString())
	add(SliceActivityLog, s.ActivityLog.ErrString())
	return out
}

// Load issues the five dashboard reads at once and waits for all of them.
// Every request is bound to ctx, so cancelling it aborts whatever is still
// in flight.
func (h *Handler) Load(ctx context.Context) Snapshot {
	loadID := uuid.NewString()

	var (
		s  Snapshot
		wg conc.WaitGroup
	)
	wg.Go(func() {
		s.Frequency = loadSlice(ctx, h, loadID, SliceFrequency, reporting.PathCommunicationFrequency, models.EmptyChartData())
	})
	wg.Go(func() {
		s.Effectiveness = loadSlice(ctx, h, loadID, SliceEffectiveness, reporting.PathEngagementEffectiveness, models.EmptyChartData())
	})
	wg.Go(func() {
		s.OverdueTrends = loadSlice(ctx, h, loadID, SliceOverdueTrends, reporting.PathOverdueTrends, models.EmptyChartData())
	})
	wg.Go(func() {
		s.Reports = loadSlice(ctx, h, loadID, SliceReports, reporting.PathReports, []models.Report{})
	})
	wg.Go(func() {
		s.ActivityLog = loadSlice(ctx, h, loadID, SliceActivityLog, reporting.PathActivityLog, []models.ActivityEntry{})
	})
	wg.Wait()

	return s
}

// loadSlice fetches one slice within the per-read budget and logs its
// failure. A request abandoned because the page went away logs quietly.
func loadSlice[T any](ctx context.Context, h *Handler, loadID, name, path string, empty T) fetch.Result[T] {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), h.Log, "dashboard fetch "+name)
	defer cancel()

	res := fetch.Get(ctx, h.Backend, path, empty)
	if res.OK() {
		return res
	}

	fields := []zap.Field{
		zap.String("load_id", loadID),
		zap.String("slice", name),
		zap.String("path", path),
		zap.Error(res.Err),
	}
	if errors.Is(res.Err, context.Canceled) {
		h.Log.Debug("dashboard fetch abandoned", fields...)
	} else {
		h.Log.Warn("dashboard fetch failed", fields...)
	}
	return res
}
