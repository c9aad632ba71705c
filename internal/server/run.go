package server

import (
	"log/slog"
	"net/http"
)

// Run runs the app by making the HTTP server listen and serve
func (s *Server) Run() error {

	// Create a notification channel to receive a signal
	// from when a shutdown is complete
	done := make(chan struct{})

	// Listen for SIGINT SIGTERM in a separate goroutine
	// Gracefully shut down the server there if needed.
	go s.Shutdown(done)

	s.log.Info("Starting server",
		slog.String("environment", s.config.Environment),
		slog.String("addr", s.HttpServer.Addr),
	)

	// If the HTTP server was shut down, meaning
	// s.HttpServer.Shutdown(ctx) method was called,
	// ListenAndServe will return ErrServerClosed.
	err := s.HttpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	<-done // Wait for the graceful shutdown to complete
	s.log.Info("Graceful shutdown complete")

	return nil
}
