// internal/app/features/reports/handler.go
package reports

import (
	"context"

	"go.uber.org/zap"
)

// Backend is the read side of the reporting backend the report list needs.
type Backend interface {
	GetJSON(ctx context.Context, path string, dst any) error
}

// Handler owns the report list page.
//
// Like the other features it is a thin struct over its collaborators,
// constructed once at startup in bootstrap and passed into Routes().
type Handler struct {
	Backend Backend
	Log     *zap.Logger
}

// NewHandler constructs a reports Handler bound to the given backend and logger.
func NewHandler(backend Backend, logger *zap.Logger) *Handler {
	return &Handler{
		Backend: backend,
		Log:     logger,
	}
}
