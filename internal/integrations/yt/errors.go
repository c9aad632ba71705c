package yt

import "errors"

var (
	// ErrNoTranscript is returned when the backend reports zero caption tracks
	ErrNoTranscript = errors.New("no transcript available for this video")

	// ErrNotTranslatable is returned when the selected track
	// cannot be translated on the fly
	ErrNotTranslatable = errors.New("transcript track is not translatable")
)
