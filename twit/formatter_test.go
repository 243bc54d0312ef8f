package twit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()

	t.Run("FormatCount prefers payload count", func(t *testing.T) {
		p := mustPayload(t, `{"count": 30, "shows": [{"id": 1}]}`)
		assert.Equal(t, "Found 30 shows", f.FormatCount(ResourceShows, p))

		p = mustPayload(t, `{"streams": [{"id": 1}, {"id": 2}]}`)
		assert.Equal(t, "Found 2 streams", f.FormatCount(ResourceStreams, p))
	})

	t.Run("FormatItems limits output", func(t *testing.T) {
		p := mustPayload(t, `{"shows": [
			{"id": 1, "label": "A"}, {"id": 2, "label": "B"},
			{"id": 3, "label": "C"}, {"id": 4, "label": "D"}
		]}`)

		out := f.FormatItems(ResourceShows, p.Items("shows"), 3, "")
		assert.Contains(t, out, "First few shows:")
		assert.Contains(t, out, "├── A (1)")
		assert.Contains(t, out, "╰── C (3)")
		assert.NotContains(t, out, "D (4)")
	})

	t.Run("FormatItems without limit", func(t *testing.T) {
		p := mustPayload(t, `{"people": [{"id": 5, "label": "Leo"}]}`)

		out := f.FormatItems(ResourcePeople, p.Items("people"), 0, "")
		assert.Contains(t, out, "People (1):")
		assert.Contains(t, out, "Leo (5)")
	})

	t.Run("FormatItems extra field", func(t *testing.T) {
		p := mustPayload(t, `{"streams": [{"id": 1, "label": "Live", "streamType": "audio"}]}`)

		out := f.FormatItems(ResourceStreams, p.Items("streams"), 2, "streamType")
		assert.Contains(t, out, "Live (audio)")
	})

	t.Run("FormatItems empty", func(t *testing.T) {
		assert.Equal(t, "No episodes found\n", f.FormatItems(ResourceEpisodes, nil, 3, ""))
	})

	t.Run("FormatShowDetail truncates description", func(t *testing.T) {
		out := f.FormatShowDetail(Show{Label: "Security Now", Description: strings.Repeat("x", 150)})
		assert.Contains(t, out, "Show title: Security Now")
		assert.Contains(t, out, "Description: "+strings.Repeat("x", 100)+"...")
		assert.NotContains(t, out, strings.Repeat("x", 101))
	})

	t.Run("FormatShowDetail without description", func(t *testing.T) {
		assert.Equal(t, "Show title: TWiT\n", f.FormatShowDetail(Show{Label: "TWiT"}))
	})

	t.Run("FormatError guidance", func(t *testing.T) {
		tests := []struct {
			err  error
			want string
		}{
			{classify(401, ""), "Check your APP_ID and APP_KEY"},
			{classify(404, ""), "Check that the API endpoint is correct"},
			{classify(500, "usage limits are exceeded"), "Check your plan limits"},
			{classify(500, "boom"), "Response body: boom"},
			{&APIError{Kind: KindTransportFailure, Message: "dial tcp: refused"}, "Error: dial tcp: refused"},
			{errors.New("plain"), "Error: plain"},
		}

		for _, tt := range tests {
			assert.Contains(t, f.FormatError(tt.err), tt.want)
		}
	})

	t.Run("FormatError status line", func(t *testing.T) {
		out := f.FormatError(classify(403, ""))
		assert.Contains(t, out, "HTTP Status: 403")

		out = f.FormatError(&APIError{Kind: KindTransportFailure, Message: "x"})
		assert.NotContains(t, out, "HTTP Status")
	})
}
