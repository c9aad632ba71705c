package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/vlatan/transcript-gateway/internal/auth"
	"github.com/vlatan/transcript-gateway/internal/config"
	"github.com/vlatan/transcript-gateway/internal/handlers/transcripts"
	"github.com/vlatan/transcript-gateway/internal/integrations/yt"
	"github.com/vlatan/transcript-gateway/internal/logging"
	"github.com/vlatan/transcript-gateway/internal/middlewares"
)

type Server struct {
	config      *config.Config
	transcripts *transcripts.Service
	mw          *middlewares.Service
	log         *slog.Logger

	HttpServer *http.Server
}

// Create new HTTP server
func New() *Server {

	// Init config
	cfg := config.New()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	// Create the log streams
	logger := logging.New(os.Stdout, "app", level)
	access := logging.NewAccess(os.Stdout)

	// Create the captioning backend client
	yt := yt.New(cfg, logging.New(os.Stdout, "yt", level))

	// Create the bearer token capability check
	authorizer := auth.NewTokenAuthorizer(cfg.APIKey)

	// Create new server service
	s := &Server{
		config:      cfg,
		transcripts: transcripts.New(cfg, yt, logging.New(os.Stdout, "transcripts", level)),
		mw:          middlewares.New(cfg, authorizer, logger, access),
		log:         logger,

		HttpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}

	s.HttpServer.Handler = s.RegisterRoutes()

	return s
}
