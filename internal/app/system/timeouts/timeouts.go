// Package timeouts provides centralized timeout values for handler operations.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks against the reporting backend
//   - Fetch: a single backend read (the deadline on each dashboard slice or list read)
//   - Page: everything one page render waits for, across all of its fetches
//
// Values start at the defaults below and are overridden once at startup
// with Configure.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing  = 2 * time.Second
	DefaultFetch = 10 * time.Second
	DefaultPage  = 15 * time.Second
)

var mu sync.RWMutex

var (
	ping  = DefaultPing
	fetch = DefaultFetch
	page  = DefaultPage
)

// Ping returns the timeout for backend reachability checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Fetch returns the timeout for a single backend read.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Page returns the overall budget for loading one page's data.
func Page() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return page
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping  time.Duration
	Fetch time.Duration
	Page  time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
	if cfg.Page > 0 {
		page = cfg.Page
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	fetch = DefaultFetch
	page = DefaultPage
}

// Current returns the current timeout configuration as a Config struct.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Fetch: fetch, Page: page}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context ran out of time before it was released.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "dashboard load")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
