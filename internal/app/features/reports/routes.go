// internal/app/features/reports/routes.go
package reports

import (
	"github.com/go-chi/chi/v5"
)

// Routes wires the report list feature under whatever mount point
// the top-level router chooses (e.g., "/reports").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
