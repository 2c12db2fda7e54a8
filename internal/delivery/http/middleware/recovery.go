package middleware

import (
	"net/http"
	"runtime/debug"

	"procurement-search/pkg/logger"
	"procurement-search/pkg/utils"
)

// Recovery turns a handler panic into a logged 500. It must sit inside
// RequestLogger so the request ID is on the context.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				logger.WithContext(r.Context()).Error().
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Panic recovered")

				var wroteHeader bool
				if rw, ok := w.(*responseWriter); ok {
					wroteHeader = rw.wroteHeader
				}
				if !wroteHeader {
					utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
