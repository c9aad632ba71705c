package yt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vlatan/transcript-gateway/internal/config"
	"github.com/vlatan/transcript-gateway/internal/logging"
)

// newTestService creates a client pointed at a fake backend
func newTestService(t *testing.T, handler http.Handler) (*Service, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		Languages:      []string{"en", "es", "fr", "de", "ar"},
		BackendTimeout: 5 * time.Second,
	}

	s := New(cfg, logging.New(io.Discard, "yt", slog.LevelInfo))
	s.baseURL = ts.URL

	return s, ts
}

// watchPage wraps a player response JSON the way the watch page HTML does
func watchPage(playerJSON string) string {
	return `<!DOCTYPE html><html><body><script>
var ytInitialPlayerResponse = ` + playerJSON + `;var meta = {};
</script></body></html>`
}

func TestListTranscripts(t *testing.T) {

	playerJSON := `{
		"captions": {
			"playerCaptionsTracklistRenderer": {
				"captionTracks": [
					{
						"baseUrl": "/api/timedtext?v=abc&lang=en&kind=asr",
						"languageCode": "en",
						"kind": "asr",
						"isTranslatable": true,
						"name": {"simpleText": "English (auto-generated)"}
					},
					{
						"baseUrl": "/api/timedtext?v=abc&lang=de",
						"languageCode": "de",
						"isTranslatable": true,
						"name": {"simpleText": "German"}
					}
				]
			}
		},
		"playabilityStatus": {"status": "OK"}
	}`

	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage(playerJSON))
	}))

	list, err := s.ListTranscripts(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list.Manual) != 1 || len(list.Generated) != 1 {
		t.Fatalf("got %d manual and %d generated tracks, want 1 and 1",
			len(list.Manual), len(list.Generated))
	}

	if list.Manual[0].Language != "de" || list.Manual[0].Generated {
		t.Errorf("unexpected manual track: %+v", list.Manual[0])
	}

	if list.Generated[0].Language != "en" || !list.Generated[0].Generated {
		t.Errorf("unexpected generated track: %+v", list.Generated[0])
	}

	if !list.Manual[0].Translatable {
		t.Errorf("manual track should be translatable")
	}
}

func TestListTranscriptsNoCaptions(t *testing.T) {

	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage(`{"playabilityStatus": {"status": "OK"}}`))
	}))

	list, err := s.ListTranscripts(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list.Manual) != 0 || len(list.Generated) != 0 {
		t.Errorf("expected zero tracks, got %+v", list)
	}
}

func TestListTranscriptsUnplayable(t *testing.T) {

	playerJSON := `{"playabilityStatus": {"status": "LOGIN_REQUIRED", "reason": "This video is private"}}`

	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage(playerJSON))
	}))

	_, err := s.ListTranscripts(context.Background(), "abc")
	if err == nil || !strings.Contains(err.Error(), "This video is private") {
		t.Fatalf("expected the backend reason preserved, got %v", err)
	}
}

func TestListTranscriptsNoMarker(t *testing.T) {

	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>nothing here</body></html>")
	}))

	if _, err := s.ListTranscripts(context.Background(), "abc"); err == nil {
		t.Fatal("expected an error for a page without a player response")
	}
}

func TestExtractJSON(t *testing.T) {

	tests := []struct {
		name, input, want string
	}{
		{"simple object", `{"a": 1};rest`, `{"a": 1}`},
		{"nested braces", `{"a": {"b": "}"}} trailing`, `{"a": {"b": "}"}}`},
		{"escaped quote", `{"a": "\"}"} trailing`, `{"a": "\"}"}`},
		{"not an object", `[1, 2]`, ""},
		{"unterminated", `{"a": 1`, ""},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(extractJSON([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
