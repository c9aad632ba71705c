package server

import (
	"net/http"
)

func (s *Server) RegisterRoutes() http.Handler {
	mux := http.NewServeMux()

	// Register routes
	mux.HandleFunc("GET /transcript", s.mw.RequireAuth(s.transcripts.GetTranscriptHandler))

	// Chain middlewares that apply to all requests.
	// The CORS middleware answers the preflight requests itself.
	handler := s.mw.ApplyToAll(
		s.mw.AccessLog,
		s.mw.RecoverPanic,
		s.mw.CORS,
		s.mw.Compress,
	)(mux)

	return handler
}
