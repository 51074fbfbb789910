// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"

	uierrors "github.com/dalemusser/commtrack/internal/app/features/errors"
	"go.uber.org/zap"
)

// Backend is the read side of the reporting backend the dashboard needs.
type Backend interface {
	GetJSON(ctx context.Context, path string, dst any) error
}

// DownloadLinks are the backend URLs the browser navigates to for exports.
// The server never fetches them.
type DownloadLinks struct {
	CSV string
	PDF string
}

// Handler owns the analytics dashboard page and its JSON twin.
type Handler struct {
	Backend Backend
	Links   DownloadLinks
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

func NewHandler(backend Backend, links DownloadLinks, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Backend: backend,
		Links:   links,
		Log:     logger,
		ErrLog:  errLog,
	}
}
