package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/commtrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Pinger checks that the reporting backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Backend Pinger
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the backend pinger and logger.
func NewHandler(backend Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		Backend: backend,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "backend":"reachable" }
//
// When the reporting backend cannot be reached: 503 and
//
//	{ "status":"error", "backend":"unreachable", "message":"Reporting backend unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Backend: "reachable",
	}

	if err := h.Backend.Ping(ctx); err != nil {
		h.Log.Error("health-check: reporting backend ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Backend = "unreachable"
		resp.Message = "Reporting backend unavailable"
		resp.Error = err.Error()
	}

	_ = json.NewEncoder(w).Encode(resp)
}
