package transcripts

import (
	"context"
	"log/slog"

	"github.com/vlatan/transcript-gateway/internal/config"
	"github.com/vlatan/transcript-gateway/internal/models"
)

// Resolver fetches the transcript parts for a video ID.
// Implemented by the yt integration.
type Resolver interface {
	GetTranscript(ctx context.Context, videoID string) ([]models.Part, error)
}

type Service struct {
	config   *config.Config
	resolver Resolver
	log      *slog.Logger
}

func New(config *config.Config, resolver Resolver, log *slog.Logger) *Service {
	return &Service{
		config:   config,
		resolver: resolver,
		log:      log,
	}
}
