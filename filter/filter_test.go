package filter

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/twit/twit"
)

func items(t *testing.T, raw string) []twit.Payload {
	t.Helper()

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var list []map[string]any
	require.NoError(t, dec.Decode(&list))

	out := make([]twit.Payload, len(list))
	for i, m := range list {
		out[i] = twit.NewPayload(m)
	}
	return out
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `contains(label, "security")`,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `contains(label, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `id > 10 and startsWith(label, "this") or Item["streamType"] == "audio"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)

			if tt.wantErr {
				require.Error(t, err)
				var synErr *SyntaxError
				assert.True(t, errors.As(err, &synErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestApply(t *testing.T) {
	list := items(t, `[
		{"id": 1, "label": "Security Now", "streamType": "video"},
		{"id": 2, "label": "This Week in Tech", "streamType": "audio"},
		{"id": 30, "label": "Windows Weekly", "streamType": "video"}
	]`)

	tests := []struct {
		name       string
		expression string
		wantIDs    []string
	}{
		{"string helper", `contains(label, "week")`, []string{"2", "30"}},
		{"numeric comparison", `id >= 2`, []string{"2", "30"}},
		{"equality on number", `id == 1`, []string{"1"}},
		{"item access", `Item["streamType"] == "audio"`, []string{"2"}},
		{"combined", `streamType == "video" and id < 10`, []string{"1"}},
		{"undefined field", `missing == nil`, []string{"1", "2", "30"}},
		{"no match", `label == "TWiT"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Apply(list)
			require.NoError(t, err)

			var ids []string
			for _, item := range matched {
				ids = append(ids, item.ID())
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMatchError(t *testing.T) {
	t.Run("bad argument type", func(t *testing.T) {
		f, err := Compile(`upper(label) == "X"`)
		require.NoError(t, err)

		_, err = f.Match(twit.NewPayload(map[string]any{"id": json.Number("5"), "label": []any{"not", "a", "string"}}))
		require.Error(t, err)

		var matchErr *MatchError
		require.True(t, errors.As(err, &matchErr))
		assert.Equal(t, "5", matchErr.ID)
		assert.Contains(t, err.Error(), `where "upper(label) == \"X\"" on 5`)
	})

	t.Run("non bool result names the item", func(t *testing.T) {
		f, err := Compile(`rating`)
		require.NoError(t, err)

		_, err = f.Match(twit.NewPayload(map[string]any{"id": json.Number("9"), "label": "Security Now"}))
		require.Error(t, err)

		var matchErr *MatchError
		require.True(t, errors.As(err, &matchErr))
		assert.Equal(t, "Security Now", matchErr.Label)
		assert.Contains(t, err.Error(), `on "Security Now" (9)`)
	})
}

func TestCompileReportsColumn(t *testing.T) {
	_, err := Compile(`label == `)
	require.Error(t, err)

	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Positive(t, synErr.Column)

	_, err = Compile("")
	assert.ErrorIs(t, err, ErrEmptyExpression)
}

func TestMatchNonObjectItem(t *testing.T) {
	f, err := Compile(`label == "live"`)
	require.NoError(t, err)

	ok, err := f.Match(twit.NewPayload("live"))
	require.NoError(t, err)
	assert.False(t, ok)
}
