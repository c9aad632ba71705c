package transcripts

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/vlatan/transcript-gateway/internal/logging"
	"github.com/vlatan/transcript-gateway/internal/models"
)

// Write JSON to buffer first and then if succesfull to the response writer
func (s *Service) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {

	jsonData, err := json.Marshal(data)
	if err != nil {
		s.log.Error("Failed to encode JSON response", logging.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		// Too late for recovery here, just log the error
		s.log.Error("Failed to write JSON to response", logging.Err(err))
	}
}

// joinParts concatenates the caption texts with single spaces,
// preserving the playback order
func joinParts(parts []models.Part) string {
	texts := make([]string, len(parts))
	for i, part := range parts {
		texts[i] = part.Text
	}

	return strings.Join(texts, " ")
}

// wantsRaw reports whether the client opted into
// the deprecated raw parts field
func wantsRaw(r *http.Request) bool {
	raw, _ := strconv.ParseBool(r.URL.Query().Get("raw"))
	return raw
}
