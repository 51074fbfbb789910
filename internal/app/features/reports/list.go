// internal/app/features/reports/list.go
package reports

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/commtrack/internal/app/system/fetch"
	"github.com/dalemusser/commtrack/internal/app/system/reporting"
	"github.com/dalemusser/commtrack/internal/app/system/timeouts"
	"github.com/dalemusser/commtrack/internal/app/system/viewdata"
	"github.com/dalemusser/commtrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Load reads the report collection. A failure is logged and the list
// comes back empty.
func (h *Handler) Load(ctx context.Context) fetch.Result[[]models.Report] {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), h.Log, "report list fetch")
	defer cancel()

	res := fetch.Get(ctx, h.Backend, reporting.PathReportList, []models.Report{})
	if res.OK() {
		return res
	}
	if errors.Is(res.Err, context.Canceled) {
		h.Log.Debug("report list fetch abandoned", zap.Error(res.Err))
	} else {
		h.Log.Warn("report list fetch failed",
			zap.String("path", reporting.PathReportList),
			zap.Error(res.Err))
	}
	return res
}

// ServeList handles GET /reports.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "report list load")
	defer cancel()

	res := h.Load(ctx)
	data := buildListData(viewdata.NewBaseVM(r, "Reports", "/reports"), res)

	templates.Render(w, r, "report_list", data)
}

func buildListData(base viewdata.BaseVM, res fetch.Result[[]models.Report]) listData {
	rows := make([]reportRow, 0, len(res.Data))
	for _, rep := range res.Data {
		rows = append(rows, reportRow{
			ID:        string(rep.ID),
			Primary:   rep.Primary(),
			Secondary: rep.Secondary(),
		})
	}
	return listData{
		BaseVM:      base,
		Rows:        rows,
		Unavailable: !res.OK(),
	}
}
