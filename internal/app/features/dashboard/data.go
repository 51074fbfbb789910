// internal/app/features/dashboard/data.go
package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/commtrack/internal/app/system/timeouts"
	"github.com/dalemusser/commtrack/internal/domain/models"
)

// dataResponse is the JSON form of a Snapshot. Failed slices carry their
// empty value and an entry in Errors.
type dataResponse struct {
	Frequency     models.ChartData       `json:"frequency"`
	Effectiveness models.ChartData       `json:"effectiveness"`
	OverdueTrends models.ChartData       `json:"overdue_trends"`
	Reports       []models.Report        `json:"reports"`
	ActivityLog   []models.ActivityEntry `json:"activity_log"`
	Errors        map[string]string      `json:"errors,omitempty"`
}

// ServeDashboardData handles GET /dashboard/data.
//
// Always 200: slice failures are reported in "errors", never as a status.
func (h *Handler) ServeDashboardData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "dashboard data load")
	defer cancel()

	snap := h.Load(ctx)

	resp := dataResponse{
		Frequency:     snap.Frequency.Data,
		Effectiveness: snap.Effectiveness.Data,
		OverdueTrends: snap.OverdueTrends.Data,
		Reports:       snap.Reports.Data,
		ActivityLog:   snap.ActivityLog.Data,
		Errors:        snap.Errors(),
	}
	if resp.Reports == nil {
		resp.Reports = []models.Report{}
	}
	if resp.ActivityLog == nil {
		resp.ActivityLog = []models.ActivityEntry{}
	}

	body, err := json.Marshal(resp)
	if err != nil {
		h.ErrLog.LogJSONError(w, r, "dashboard data encode failed", err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(body)
}
