package middlewares

import (
	"log/slog"
	"net/http"
	"time"
)

// A custom http.ResponseWriter that captures the status code of the
// response, so the access log can record what the handler served.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *responseRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// AccessLog emits one JSON line per served request on the access stream
func (s *Service) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		s.access.LogAttrs(r.Context(), slog.LevelInfo, "",
			slog.String("event", "request"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", recorder.status),
			slog.String("host", r.Host),
			slog.Float64("request_time", time.Since(start).Seconds()),
		)
	})
}
