package models

// Part is one timed caption unit. The timing fields pass through
// as reported by the backend; the order of parts is playback order.
type Part struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TranscriptResponse is the success payload of the transcript route.
// Raw is a deprecated compatibility field, echoed only when the client
// explicitly asks for it.
type TranscriptResponse struct {
	Transcript string `json:"transcript"`
	Raw        []Part `json:"raw,omitempty"`
}

// ErrorResponse is the body of every non-200 response
type ErrorResponse struct {
	Error string `json:"error"`
}
