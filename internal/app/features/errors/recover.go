// internal/app/features/errors/recover.go
package errors

import (
	"fmt"
	"net/http"
)

// Recover is middleware that turns a handler panic into a logged 500 page.
// http.ErrAbortHandler is re-raised so net/http can abort the response.
func (e *ErrorLogger) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}
			e.LogServerError(w, r, "handler panic", err, "An unexpected error occurred. Please try again.", "/dashboard")
		}()
		next.ServeHTTP(w, r)
	})
}
