package transcripts

import (
	"log/slog"
	"net/http"

	"github.com/vlatan/transcript-gateway/internal/logging"
	"github.com/vlatan/transcript-gateway/internal/models"
	"github.com/vlatan/transcript-gateway/internal/utils"
)

// GetTranscriptHandler serves GET /transcript?url=<raw YouTube URL>
func (s *Service) GetTranscriptHandler(w http.ResponseWriter, r *http.Request) {

	youtubeURL := r.URL.Query().Get("url")
	s.log.Info("Received request for URL", slog.String("url", youtubeURL))

	if youtubeURL == "" {
		s.log.Warn("Missing url query parameter")
		s.writeJSON(w, r, http.StatusBadRequest,
			models.ErrorResponse{Error: "YouTube URL is required"})
		return
	}

	videoID, err := utils.ExtractVideoID(youtubeURL)
	if err != nil {
		s.log.Warn("Invalid YouTube URL",
			slog.String("url", youtubeURL), logging.Err(err))
		s.writeJSON(w, r, http.StatusBadRequest,
			models.ErrorResponse{Error: err.Error()})
		return
	}

	s.log.Info("Extracted video ID", slog.String("video_id", videoID))

	parts, err := s.resolver.GetTranscript(r.Context(), videoID)
	if err != nil {
		s.log.Error("Error getting transcript",
			slog.String("video_id", videoID), logging.Err(err))
		s.writeJSON(w, r, http.StatusInternalServerError,
			models.ErrorResponse{Error: err.Error()})
		return
	}

	response := models.TranscriptResponse{Transcript: joinParts(parts)}
	if wantsRaw(r) {
		response.Raw = parts
	}

	s.log.Info("Successfully retrieved and concatenated transcript",
		slog.String("video_id", videoID))
	s.writeJSON(w, r, http.StatusOK, response)
}
