package selection_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchside/newsletter-service/internal/selection"
)

func TestDecodeTarget(t *testing.T) {

	seventySeven := 77

	tests := []struct {
		name     string
		raw      string
		expected selection.Target
	}{
		{
			name:     "id array",
			raw:      `[5, "6", 6, "foo", 0]`,
			expected: selection.Explicit{Ids: []int64{5, 6}},
		},
		{
			name:     "single scalar id",
			raw:      `7`,
			expected: selection.Explicit{Ids: []int64{7}},
		},
		{
			name:     "object with ids",
			raw:      `{"ids": [1, 2]}`,
			expected: selection.Explicit{Ids: []int64{1, 2}},
		},
		{
			name:     "object with scalar id",
			raw:      `{"ids": "3"}`,
			expected: selection.Explicit{Ids: []int64{3}},
		},
		{
			name: "object with filter params",
			raw:  `{"filter_params": {"x": 1}}`,
			expected: selection.Filtered{
				Params:     selection.FilterParams{"x": float64(1)},
				ExcludeIds: []int64{},
			},
		},
		{
			name: "filtered selection with exclusions and expected total",
			raw:  `{"filter_params": {"topic": "transfer-window"}, "exclude_ids": [9, "10", 9], "expected_total": 77}`,
			expected: selection.Filtered{
				Params:        selection.FilterParams{"topic": "transfer-window"},
				ExcludeIds:    []int64{9, 10},
				ExpectedTotal: &seventySeven,
			},
		},
		{
			name: "camelCase spellings",
			raw:  `{"filterParams": {"status": "DRAFT"}, "excludeIds": [4], "expectedTotal": 77}`,
			expected: selection.Filtered{
				Params:        selection.FilterParams{"status": "DRAFT"},
				ExcludeIds:    []int64{4},
				ExpectedTotal: &seventySeven,
			},
		},
		{
			name: "snake_case wins over camelCase",
			raw:  `{"filter_params": {"a": "b"}, "filterParams": {"c": "d"}}`,
			expected: selection.Filtered{
				Params:     selection.FilterParams{"a": "b"},
				ExcludeIds: []int64{},
			},
		},
		{
			name: "filter params win over ids",
			raw:  `{"filter_params": {"a": "b"}, "ids": [1]}`,
			expected: selection.Filtered{
				Params:     selection.FilterParams{"a": "b"},
				ExcludeIds: []int64{},
			},
		},
		{
			name: "empty filter params select everything",
			raw:  `{"filter_params": {}}`,
			expected: selection.Filtered{
				Params:     selection.FilterParams{},
				ExcludeIds: []int64{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := selection.DecodeTarget(json.RawMessage(tt.raw))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, target)
		})
	}
}

func TestDecodeTargetFailures(t *testing.T) {

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty object", raw: `{}`},
		{name: "null", raw: `null`},
		{name: "null filter params and no ids", raw: `{"filter_params": null}`},
		{name: "empty id array", raw: `{"ids": []}`},
		{name: "ids that normalize away", raw: `{"ids": [0, -1, "foo"]}`},
		{name: "uncoercible scalar", raw: `"foo"`},
		{name: "empty payload", raw: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := selection.DecodeTarget(json.RawMessage(tt.raw))
			assert.Nil(t, target)
			assert.ErrorIs(t, err, selection.ErrNoActionableTarget)
		})
	}
}
