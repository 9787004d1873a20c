// Package middleware provides reusable HTTP middleware for the API server.
package middleware

import (
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/op/go-logging"
)

// wrappedWriter captures the status code written by downstream handlers.
type wrappedWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *wrappedWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logger logs request id, method, path, status code, and duration for every
// request. Server errors are logged at WARNING.
func Logger(log *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &wrappedWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			rid := chiMiddleware.GetReqID(r.Context())
			if ww.statusCode >= http.StatusInternalServerError {
				log.Warningf("request_id=%s %s %s %d %s", rid, r.Method, r.URL.Path, ww.statusCode, time.Since(start))
				return
			}
			log.Infof("request_id=%s %s %s %d %s", rid, r.Method, r.URL.Path, ww.statusCode, time.Since(start))
		})
	}
}
