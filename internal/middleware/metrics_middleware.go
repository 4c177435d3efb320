package middleware

import (
	"net/http"
	"strconv"
	"time"

	"kaidan-backend/internal/metrics"
)

// statusWriter captures the response code; handlers that never call
// WriteHeader count as 200.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware counts and times every request, labeled by method,
// path and status.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		defer func() {
			metrics.HTTPRequestsTotal.
				WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.status)).Inc()
			metrics.HTTPRequestDuration.
				WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
		}()
		next.ServeHTTP(sw, r)
	})
}
