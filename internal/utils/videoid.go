package utils

import (
	"errors"
	"strings"
)

// ErrInvalidURL is returned when no recognized URL shape matches.
// The message surfaces verbatim in the 400 response body.
var ErrInvalidURL = errors.New("could not extract video ID from URL")

// One recognized YouTube URL shape. If the marker is present in the URL
// the extract function yields the video ID.
type urlShape struct {
	marker  string
	extract func(url string) string
}

// Recognized URL shapes, checked in order, first match wins
var urlShapes = []urlShape{
	{
		// Short links, e.g. https://youtu.be/dQw4w9WgXcQ?si=abc
		marker: "youtu.be",
		extract: func(url string) string {
			segment := url[strings.LastIndex(url, "/")+1:]
			id, _, _ := strings.Cut(segment, "?")
			return id
		},
	},
	{
		// Watch links, e.g. https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10
		marker: "watch?v=",
		extract: func(url string) string {
			_, rest, _ := strings.Cut(url, "watch?v=")
			id, _, _ := strings.Cut(rest, "&")
			return id
		},
	},
	{
		// Shorts, e.g. https://www.youtube.com/shorts/dQw4w9WgXcQ?feature=share
		marker: "/shorts/",
		extract: func(url string) string {
			_, rest, _ := strings.Cut(url, "/shorts/")
			id, _, _ := strings.Cut(rest, "?")
			return id
		},
	},
}

// ExtractVideoID maps a raw YouTube URL to the platform video ID.
// The extracted token is accepted as-is, with no charset or length
// validation, so a structurally matching but malformed URL can yield
// an empty or garbage ID which the backend then rejects.
func ExtractVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)

	for _, shape := range urlShapes {
		if strings.Contains(rawURL, shape.marker) {
			return shape.extract(rawURL), nil
		}
	}

	return "", ErrInvalidURL
}
