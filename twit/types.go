package twit

import (
	"encoding/json"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Resource names a category of data exposed by the API. Its value is both
// the path segment and the payload key holding the items.
type Resource string

const (
	// ResourceShows is the shows collection
	ResourceShows Resource = "shows"
	// ResourceEpisodes is the episodes collection
	ResourceEpisodes Resource = "episodes"
	// ResourceStreams is the live streams collection
	ResourceStreams Resource = "streams"
	// ResourcePeople is the people collection
	ResourcePeople Resource = "people"
)

// Payload is a decoded JSON response body. Its shape belongs to the API and
// is passed through untouched; numbers are json.Number. The field helpers
// read it as an object and return zero values for any other JSON value.
type Payload struct {
	value any
}

// NewPayload wraps a decoded JSON value
func NewPayload(v any) Payload {
	return Payload{value: v}
}

// Value returns the decoded JSON value: map[string]any, []any, string,
// json.Number, bool or nil.
func (p Payload) Value() any {
	return p.value
}

// Map returns the payload as a JSON object
func (p Payload) Map() (map[string]any, bool) {
	m, ok := p.value.(map[string]any)
	return m, ok
}

func (p Payload) get(key string) any {
	m, _ := p.Map()
	return m[key]
}

// Count returns the top-level "count" field
func (p Payload) Count() (int64, bool) {
	return toInt64(p.get("count"))
}

// Elements returns the object elements of a JSON array payload. Anything
// that is not an object is skipped; a payload that is not an array yields nil.
func (p Payload) Elements() []Payload {
	raw, ok := p.value.([]any)
	if !ok {
		return nil
	}

	items := make([]Payload, 0, len(raw))
	for _, v := range raw {
		if obj, ok := v.(map[string]any); ok {
			items = append(items, NewPayload(obj))
		}
	}
	return items
}

// Items returns the object elements of the array stored under key
func (p Payload) Items(key string) []Payload {
	return NewPayload(p.get(key)).Elements()
}

// Collection returns the items under key, or the payload's own elements
// when the body is a bare array.
func (p Payload) Collection(key string) []Payload {
	if items := p.Items(key); items != nil {
		return items
	}
	return p.Elements()
}

// Object returns the object stored under key. Single-resource responses put
// the item under the collection name, e.g. {"shows": {...}}.
func (p Payload) Object(key string) (Payload, bool) {
	obj, ok := p.get(key).(map[string]any)
	if !ok {
		return Payload{}, false
	}
	return NewPayload(obj), true
}

// ID returns the item's "id" rendered as a string
func (p Payload) ID() string {
	return stringify(p.get("id"))
}

// Label returns the item's "label"
func (p Payload) Label() string {
	return stringify(p.get("label"))
}

// Field returns the field under key rendered as a string
func (p Payload) Field(key string) string {
	return stringify(p.get(key))
}

// Decode copies the payload into a typed value using its mapstructure tags.
// Unknown fields are ignored and numbers are weakly converted.
func (p Payload) Decode(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           v,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(p.value); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

// MarshalJSON encodes the wrapped value
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// JSON returns the payload re-encoded as indented JSON
func (p Payload) JSON() ([]byte, error) {
	return json.MarshalIndent(p.value, "", "  ")
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func toInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case json.Number:
		n, err := val.Int64()
		return n, err == nil
	case float64:
		return int64(val), true
	case int:
		return int64(val), true
	case int64:
		return val, true
	default:
		return 0, false
	}
}

// Show is a typed view of a show item
type Show struct {
	ID          string `mapstructure:"id"`
	Label       string `mapstructure:"label"`
	Description string `mapstructure:"description"`
}

// Episode is a typed view of an episode item
type Episode struct {
	ID    string `mapstructure:"id"`
	Label string `mapstructure:"label"`
}

// Stream is a typed view of a live stream item
type Stream struct {
	ID         string `mapstructure:"id"`
	Label      string `mapstructure:"label"`
	StreamType string `mapstructure:"streamType"`
}

// Person is a typed view of a people item
type Person struct {
	ID    string `mapstructure:"id"`
	Label string `mapstructure:"label"`
}
