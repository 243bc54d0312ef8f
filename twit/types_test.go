package twit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPayload(t *testing.T, body string) Payload {
	t.Helper()
	p, err := decodePayload([]byte(body))
	require.NoError(t, err)
	return p
}

func TestPayloadCount(t *testing.T) {
	count, ok := mustPayload(t, `{"count":42}`).Count()
	assert.True(t, ok)
	assert.Equal(t, int64(42), count)

	_, ok = mustPayload(t, `{"shows":[]}`).Count()
	assert.False(t, ok)

	_, ok = mustPayload(t, `{"count":"many"}`).Count()
	assert.False(t, ok)
}

func TestPayloadItemsAndObject(t *testing.T) {
	p := mustPayload(t, `{
		"shows": [{"id": 1, "label": "A"}, "junk", {"id": "two", "label": "B"}],
		"detail": {"id": 3, "label": "C"}
	}`)

	items := p.Items("shows")
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID())
	assert.Equal(t, "two", items[1].ID())
	assert.Equal(t, "B", items[1].Label())

	assert.Nil(t, p.Items("detail"))
	assert.Nil(t, p.Elements())
	assert.Nil(t, p.Items("missing"))

	obj, ok := p.Object("detail")
	require.True(t, ok)
	assert.Equal(t, "C", obj.Label())

	_, ok = p.Object("shows")
	assert.False(t, ok)
}

func TestPayloadDecode(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		p := mustPayload(t, `{"id": 1635, "label": "Security Now", "description": "Steve and Leo", "active": true}`)

		var show Show
		require.NoError(t, p.Decode(&show))
		assert.Equal(t, Show{ID: "1635", Label: "Security Now", Description: "Steve and Leo"}, show)
	})

	t.Run("stream", func(t *testing.T) {
		p := mustPayload(t, `{"id": 9, "label": "TWiT Live", "streamType": "video"}`)

		var stream Stream
		require.NoError(t, p.Decode(&stream))
		assert.Equal(t, "video", stream.StreamType)
		assert.Equal(t, "9", stream.ID)
	})

	t.Run("incompatible field", func(t *testing.T) {
		p := mustPayload(t, `{"label": {"nested": true}}`)

		var person Person
		assert.Error(t, p.Decode(&person))
	})
}

func TestPayloadJSONRoundTripKeepsNumbers(t *testing.T) {
	p := mustPayload(t, `{"count":12345678901234567}`)

	out, err := p.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), "12345678901234567")
}

func TestPayloadCollection(t *testing.T) {
	wrapped := mustPayload(t, `{"shows": [{"id": 1}, {"id": 2}]}`)
	assert.Len(t, wrapped.Collection("shows"), 2)
	assert.Nil(t, wrapped.Collection("streams"))

	bare := mustPayload(t, `[{"id": 1}, "junk", {"id": 3}]`)
	items := bare.Collection("shows")
	require.Len(t, items, 2)
	assert.Equal(t, "3", items[1].ID())

	_, ok := bare.Object("shows")
	assert.False(t, ok)
}

func TestPayloadNonObjectValues(t *testing.T) {
	p := mustPayload(t, `null`)
	assert.Nil(t, p.Value())
	assert.Empty(t, p.Label())
	assert.Nil(t, p.Collection("shows"))

	out, err := p.JSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	var show Show
	assert.Error(t, mustPayload(t, `"text"`).Decode(&show))
}
