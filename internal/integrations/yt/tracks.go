package yt

// Track is one caption set for a single language, as reported by the backend
type Track struct {
	Language     string
	Name         string
	BaseURL      string
	Generated    bool
	Translatable bool
}

// Translated returns a copy of the track which the backend
// will translate on the fly to the given language when fetched
func (t Track) Translated(language string) (Track, error) {
	if !t.Translatable {
		return Track{}, ErrNotTranslatable
	}

	t.BaseURL += "&tlang=" + language
	return t, nil
}

// TranscriptList holds the caption tracks reported for one video,
// partitioned into manually created and auto-generated sets.
// The order within each set is the backend's native ordering.
type TranscriptList struct {
	VideoID   string
	Manual    []Track
	Generated []Track
}

// FindBest selects the track to serve given a language preference list:
// a manual track in preference order beats a generated track in preference
// order, which beats the first generated track, which beats the first
// manual track. A selected non-English track is marked for on-the-fly
// translation to English.
func (l *TranscriptList) FindBest(languages []string) (Track, error) {

	if len(l.Manual) == 0 && len(l.Generated) == 0 {
		return Track{}, ErrNoTranscript
	}

	track, found := find(l.Manual, languages)
	if !found {
		track, found = find(l.Generated, languages)
	}

	if !found {
		if len(l.Generated) > 0 {
			track = l.Generated[0]
		} else {
			track = l.Manual[0]
		}
	}

	if track.Language == "en" {
		return track, nil
	}

	return track.Translated("en")
}

// find returns the first track matching the preference list,
// scanning the list in order
func find(tracks []Track, languages []string) (Track, bool) {
	for _, language := range languages {
		for _, track := range tracks {
			if track.Language == language {
				return track, true
			}
		}
	}

	return Track{}, false
}
