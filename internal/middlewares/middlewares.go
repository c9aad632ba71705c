package middlewares

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/vlatan/transcript-gateway/internal/auth"
	"github.com/vlatan/transcript-gateway/internal/config"
	"github.com/vlatan/transcript-gateway/internal/logging"
	"github.com/vlatan/transcript-gateway/internal/models"

	"github.com/klauspost/compress/gzhttp"
)

type Service struct {
	config *config.Config
	auth   auth.Authorizer
	log    *slog.Logger
	access *slog.Logger
}

func New(config *config.Config, auth auth.Authorizer, log, access *slog.Logger) *Service {
	return &Service{
		config: config,
		auth:   auth,
		log:    log,
		access: access,
	}
}

// RequireAuth guards a route behind the capability check.
// Both failure modes get the same 401 status but are logged distinctly.
func (s *Service) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.auth.Authorize(r); err != nil {
			s.log.Warn("Unauthorized request",
				slog.String("path", r.URL.Path), logging.Err(err))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			if err = json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()}); err != nil {
				s.log.Error("Failed to write JSON to response", logging.Err(err))
			}
			return
		}

		next(w, r)
	}
}

// CORS permits all origins and answers preflight requests
func (s *Service) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Do not crash the app on panic, serve 500 error to the client
func (s *Service) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// If in production recover panic
		if !s.config.Debug {
			defer func() {
				if value := recover(); value != nil {
					// Log the panic with stack trace
					s.log.Error("Panic while serving request",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						logging.Panic(value, debug.Stack()),
					)

					// Return 500 to client
					http.Error(w, "Something went wrong", http.StatusInternalServerError)
				}
			}()
		}

		next.ServeHTTP(w, r)
	})
}

// Compress provides gzip compression for the responses
func (s *Service) Compress(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// Chain middlewares that apply to all handlers
func (s *Service) ApplyToAll(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		// Apply middlewares in reverse order
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
