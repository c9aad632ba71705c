package yt

import (
	"testing"

	"github.com/vlatan/transcript-gateway/internal/models"

	"github.com/google/go-cmp/cmp"
)

func TestParseTimedText(t *testing.T) {

	tests := []struct {
		name    string
		data    string
		want    []models.Part
		wantErr bool
	}{
		{
			name: "plain lines keep order and timing",
			data: `<?xml version="1.0" encoding="utf-8" ?>
<transcript>
	<text start="0.0" dur="1.54">Hello</text>
	<text start="1.54" dur="2.1">world</text>
</transcript>`,
			want: []models.Part{
				{Text: "Hello", Start: 0, Duration: 1.54},
				{Text: "world", Start: 1.54, Duration: 2.1},
			},
		},
		{
			name: "double escaped entities and markup get cleaned",
			data: `<transcript>
	<text start="0" dur="1">Tom &amp;amp; Jerry</text>
	<text start="1" dur="1"> &amp;#39;quoted&amp;#39; </text>
</transcript>`,
			want: []models.Part{
				{Text: "Tom & Jerry", Start: 0, Duration: 1},
				{Text: "'quoted'", Start: 1, Duration: 1},
			},
		},
		{
			name: "empty lines are dropped",
			data: `<transcript>
	<text start="0" dur="1">  </text>
	<text start="1" dur="1">kept</text>
</transcript>`,
			want: []models.Part{
				{Text: "kept", Start: 1, Duration: 1},
			},
		},
		{
			name:    "not XML",
			data:    `{"error": "nope"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimedText([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error = %v, want error = %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCleanText(t *testing.T) {

	tests := []struct {
		name, input, want string
	}{
		{"plain", "hello", "hello"},
		{"font tag", `<font color="#CCCCCC">hello</font>`, "hello"},
		{"escaped entity", "a &amp; b", "a & b"},
		{"whitespace", "  hello \n", "hello"},
		{"only markup", "<b></b>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
