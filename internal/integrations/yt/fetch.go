package yt

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/vlatan/transcript-gateway/internal/models"
)

// Timedtext XML payload:
// <transcript><text start="0.0" dur="1.54">Hello &amp;amp; world</text>...</transcript>
type timedText struct {
	Texts []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Text     string  `xml:",chardata"`
}

var htmlTagRE = regexp.MustCompile(`<[^>]+>`)

// FetchTranscript downloads and parses the timedtext payload for the track.
// The parts keep the document order, which is the playback order.
func (s *Service) FetchTranscript(ctx context.Context, track Track) ([]models.Part, error) {

	body, err := s.get(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the transcript: %w", err)
	}

	return parseTimedText(body)
}

// parseTimedText unmarshals the timedtext XML into caption parts,
// dropping lines that are empty after cleanup
func parseTimedText(data []byte) ([]models.Part, error) {

	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("failed to parse the timedtext XML: %w", err)
	}

	parts := make([]models.Part, 0, len(tt.Texts))
	for _, line := range tt.Texts {
		text := cleanText(line.Text)
		if text == "" {
			continue
		}

		parts = append(parts, models.Part{
			Text:     text,
			Start:    line.Start,
			Duration: line.Duration,
		})
	}

	return parts, nil
}

// cleanText strips markup tags and unescapes the HTML entities
// the backend leaves double-escaped in caption text
func cleanText(s string) string {
	s = htmlTagRE.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}
