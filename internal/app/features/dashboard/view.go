// internal/app/features/dashboard/view.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/commtrack/internal/app/system/timeouts"
	"github.com/dalemusser/commtrack/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// chartVM is one chart widget. Data is the backend's chart object, passed to
// the chart library untouched.
type chartVM struct {
	ID          string
	Title       string
	Kind        string // bar, pie, line
	Data        string
	Unavailable bool
}

type activityRowVM struct {
	Text string
}

type dashboardData struct {
	viewdata.BaseVM

	Frequency     chartVM
	Effectiveness chartVM
	OverdueTrends chartVM

	DownloadCSVURL string
	DownloadPDFURL string

	Activity            []activityRowVM
	ActivityUnavailable bool
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "dashboard load")
	defer cancel()

	snap := h.Load(ctx)
	data := buildDashboardData(viewdata.NewBaseVM(r, "Analytics Dashboard", "/dashboard"), snap, h.Links)

	templates.Render(w, r, "dashboard_view", data)
}

func buildDashboardData(base viewdata.BaseVM, snap Snapshot, links DownloadLinks) dashboardData {
	rows := make([]activityRowVM, 0, len(snap.ActivityLog.Data))
	for _, e := range snap.ActivityLog.Data {
		rows = append(rows, activityRowVM{Text: e.Line()})
	}

	return dashboardData{
		BaseVM: base,
		Frequency: chartVM{
			ID:          "chart-frequency",
			Title:       "Communication Frequency Report",
			Kind:        "bar",
			Data:        snap.Frequency.Data.String(),
			Unavailable: !snap.Frequency.OK(),
		},
		Effectiveness: chartVM{
			ID:          "chart-effectiveness",
			Title:       "Engagement Effectiveness Dashboard",
			Kind:        "pie",
			Data:        snap.Effectiveness.Data.String(),
			Unavailable: !snap.Effectiveness.OK(),
		},
		OverdueTrends: chartVM{
			ID:          "chart-overdue",
			Title:       "Overdue Communication Trends",
			Kind:        "line",
			Data:        snap.OverdueTrends.Data.String(),
			Unavailable: !snap.OverdueTrends.OK(),
		},
		DownloadCSVURL:      links.CSV,
		DownloadPDFURL:      links.PDF,
		Activity:            rows,
		ActivityUnavailable: !snap.ActivityLog.OK(),
	}
}
