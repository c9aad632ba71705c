// Package yt is the client for YouTube's captioning surface.
// Caption tracks are discovered from the watch page's ytInitialPlayerResponse
// and fetched as timedtext XML. All calls are routed through the configured
// forward proxy.
package yt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vlatan/transcript-gateway/internal/config"
	"github.com/vlatan/transcript-gateway/internal/models"

	"golang.org/x/time/rate"
)

const (
	watchBaseURL = "https://www.youtube.com"
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// The watch page HTML runs to a few MB
	maxResponseSize = 6 * 1024 * 1024
)

type Service struct {
	config  *config.Config
	client  *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
	baseURL string
}

// Create new captioning backend client
func New(cfg *config.Config, log *slog.Logger) *Service {

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL := cfg.ProxyURL(); proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	// Optional outbound pacing, protects the proxy quota.
	// It only delays calls, it never retries or rejects them.
	var limiter *rate.Limiter
	if cfg.BackendRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.BackendRPS), 1)
	}

	return &Service{
		config: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.BackendTimeout,
		},
		limiter: limiter,
		log:     log,
		baseURL: watchBaseURL,
	}
}

// GetTranscript lists the caption tracks available for the video, selects
// the best one per the language preference policy and fetches its parts.
// One attempt per call, any failure is terminal.
func (s *Service) GetTranscript(ctx context.Context, videoID string) ([]models.Part, error) {

	list, err := s.ListTranscripts(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := list.FindBest(s.config.Languages)
	if err != nil {
		return nil, err
	}

	s.log.Info("Selected transcript track",
		slog.String("video_id", videoID),
		slog.String("language", track.Language),
		slog.Bool("generated", track.Generated),
	)

	return s.FetchTranscript(ctx, track)
}

// get performs one backend GET request. The context is detached from the
// inbound request so a client disconnect does not cancel an in-flight
// backend call; the call runs to completion or transport timeout.
func (s *Service) get(ctx context.Context, url string) ([]byte, error) {

	ctx = context.WithoutCancel(ctx)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
}
