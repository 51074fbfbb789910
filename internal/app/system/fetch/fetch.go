// Package fetch turns a single backend read into a value-or-error result so
// views can decide for themselves whether to surface a failure.
package fetch

import (
	"context"
)

// Getter is the slice of the reporting client a fetch needs.
type Getter interface {
	GetJSON(ctx context.Context, path string, dst any) error
}

// Result is one independently fetched slice of view state.
type Result[T any] struct {
	Data T
	Err  error
}

// OK reports whether the fetch succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

// ErrString is the failure message, or "" on success.
func (r Result[T]) ErrString() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Get reads path into a fresh T. On failure Data is left at empty, the value
// the slice holds before any response arrives.
func Get[T any](ctx context.Context, g Getter, path string, empty T) Result[T] {
	var v T
	if err := g.GetJSON(ctx, path, &v); err != nil {
		return Result[T]{Data: empty, Err: err}
	}
	return Result[T]{Data: v}
}
