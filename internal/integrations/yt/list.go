package yt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// playerResponseMarker marks the start of the player response JSON
// in the watch page HTML
const playerResponseMarker = "ytInitialPlayerResponse = "

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL        string `json:"baseUrl"`
	LanguageCode   string `json:"languageCode"`
	Kind           string `json:"kind"` // "asr" = auto-generated
	IsTranslatable bool   `json:"isTranslatable"`
	Name           struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
}

// ListTranscripts queries the backend for all caption tracks
// available for the given video
func (s *Service) ListTranscripts(ctx context.Context, videoID string) (*TranscriptList, error) {

	body, err := s.get(ctx, s.baseURL+"/watch?v="+videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the watch page: %w", err)
	}

	resp, err := extractPlayerResponse(body)
	if err != nil {
		return nil, err
	}

	list := &TranscriptList{VideoID: videoID}

	if resp.Captions == nil {
		// Videos without captions carry no captions object at all.
		// A playability failure means the backend blocked the video,
		// surface its reason instead of an empty list.
		if status := resp.PlayabilityStatus; status != nil && status.Status != "" && status.Status != "OK" {
			reason := status.Reason
			if reason == "" {
				reason = status.Status
			}
			return nil, fmt.Errorf("video is unplayable: %s", reason)
		}
		return list, nil
	}

	for _, ct := range resp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks {
		track := Track{
			Language:     ct.LanguageCode,
			Name:         ct.Name.SimpleText,
			BaseURL:      ct.BaseURL,
			Generated:    ct.Kind == "asr",
			Translatable: ct.IsTranslatable,
		}

		if track.Generated {
			list.Generated = append(list.Generated, track)
		} else {
			list.Manual = append(list.Manual, track)
		}
	}

	return list, nil
}

// extractPlayerResponse pulls the ytInitialPlayerResponse JSON
// out of the raw watch page HTML
func extractPlayerResponse(body []byte) (*playerResponse, error) {

	idx := bytes.Index(body, []byte(playerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}

	data := extractJSON(body[idx+len(playerResponseMarker):])
	if data == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var resp playerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode ytInitialPlayerResponse: %w", err)
	}

	return &resp, nil
}

// extractJSON extracts a complete JSON object starting at b[0] == '{'
// by tracking brace depth
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}

	depth := 0
	inStr := false
	var prev byte

	for i, c := range b {
		if inStr {
			if c == '"' && prev != '\\' {
				inStr = false
			}
		} else {
			switch c {
			case '"':
				inStr = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return b[:i+1]
				}
			}
		}
		prev = c
	}

	return nil
}
