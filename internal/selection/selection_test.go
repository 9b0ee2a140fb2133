package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchside/newsletter-service/internal/selection"
)

func TestNormalize(t *testing.T) {

	tests := []struct {
		name       string
		candidates []any
		expected   []int64
	}{
		{
			name:       "keeps first occurrence in order",
			candidates: []any{5, "3", 0, -1, 3, 5, "foo", nil},
			expected:   []int64{5, 3},
		},
		{
			name:       "drops fractions and non numeric strings",
			candidates: []any{1.5, "2.25", "abc", "", true, []any{7}},
			expected:   []int64{},
		},
		{
			name:       "coerces numeric strings",
			candidates: []any{"10", " 11 ", "12"},
			expected:   []int64{10, 11, 12},
		},
		{
			name:       "handles json decoded floats",
			candidates: []any{float64(9), float64(10), float64(9)},
			expected:   []int64{9, 10},
		},
		{
			name:       "empty input",
			candidates: []any{},
			expected:   []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized := selection.Normalize(tt.candidates...)
			assert.Equal(t, tt.expected, normalized)
		})
	}
}

func TestNormalizeNeverPanics(t *testing.T) {

	junk := []any{
		map[string]any{"id": 1},
		struct{ Id int }{Id: 2},
		make(chan int),
		func() {},
	}

	assert.NotPanics(t, func() {
		assert.Empty(t, selection.Normalize(junk...))
	})
}

func TestResolveFiltersMode(t *testing.T) {

	params := selection.FilterParams{"a": 1}

	payload := selection.Resolve(true, params, 77, []any{9, "10", 9, 0}, []any{})

	assert.Equal(t, selection.FiltersMode, payload.Mode)
	assert.Equal(t, selection.FilterParams{"a": 1}, payload.Body.FilterParams)
	assert.Equal(t, []int64{9, 10}, payload.Body.ExcludeIds)

	if assert.NotNil(t, payload.Body.ExpectedTotal) {
		assert.Equal(t, 77, *payload.Body.ExpectedTotal)
	}

	assert.Empty(t, payload.Body.Ids)

	// the copy is detached from the caller's map
	params["a"] = 2
	assert.Equal(t, selection.FilterParams{"a": 1}, payload.Body.FilterParams)
}

func TestResolveFiltersModeDefaults(t *testing.T) {

	payload := selection.Resolve(true, nil, -5, nil, nil)

	assert.Equal(t, selection.FiltersMode, payload.Mode)
	assert.Equal(t, selection.FilterParams{}, payload.Body.FilterParams)
	assert.Equal(t, []int64{}, payload.Body.ExcludeIds)

	if assert.NotNil(t, payload.Body.ExpectedTotal) {
		assert.Equal(t, 0, *payload.Body.ExpectedTotal)
	}
}

func TestResolveIdsMode(t *testing.T) {

	payload := selection.Resolve(false, selection.FilterParams{}, 0, []any{}, []any{5, "6", 6, "foo"})

	assert.Equal(t, selection.IdsMode, payload.Mode)
	assert.Equal(t, []int64{5, 6}, payload.Body.Ids)
	assert.Nil(t, payload.Body.FilterParams)
	assert.Nil(t, payload.Body.ExpectedTotal)
}
