package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchside/newsletter-service/internal/review"
)

func TestProgress(t *testing.T) {

	tests := []struct {
		name     string
		index    int
		total    int
		expected string
	}{
		{name: "empty queue", index: 0, total: 0, expected: "No newsletters to review"},
		{name: "negative total", index: 3, total: -1, expected: "No newsletters to review"},
		{name: "first newsletter", index: 0, total: 5, expected: "Newsletter 1 of 5"},
		{name: "mid queue", index: 11, total: 77, expected: "Newsletter 12 of 77"},
		{name: "index clamped to queue end", index: 9, total: 5, expected: "Newsletter 5 of 5"},
		{name: "negative index clamped to start", index: -4, total: 5, expected: "Newsletter 1 of 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, review.Progress(tt.index, tt.total))
		})
	}
}

func TestSelectionToast(t *testing.T) {

	tests := []struct {
		name     string
		matched  int
		excluded int
		expected string
	}{
		{name: "no matches", matched: 0, excluded: 0, expected: "No newsletters match your filters."},
		{name: "negative matches", matched: -2, excluded: 5, expected: "No newsletters match your filters."},
		{name: "no exclusions", matched: 10, excluded: 0, expected: "All 10 filtered newsletters selected."},
		{name: "single exclusion", matched: 10, excluded: 1, expected: "All 10 filtered newsletters selected. 1 is excluded."},
		{name: "multiple exclusions", matched: 77, excluded: 5, expected: "All 77 filtered newsletters selected. 5 are excluded."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, review.SelectionToast(tt.matched, tt.excluded))
		})
	}
}

func TestNewSizing(t *testing.T) {

	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name      string
		overrides review.SizingOverrides
		expected  review.Sizing
	}{
		{
			name:      "defaults",
			overrides: review.SizingOverrides{},
			expected:  review.Sizing{MinWidth: 480, MinHeight: 360, MaxWidth: 480, MaxHeight: 360, Resize: "both"},
		},
		{
			name: "larger minimums push maximums",
			overrides: review.SizingOverrides{
				MinWidth:  intPtr(600),
				MinHeight: intPtr(420),
			},
			expected: review.Sizing{MinWidth: 600, MinHeight: 420, MaxWidth: 600, MaxHeight: 420, Resize: "both"},
		},
		{
			name: "minimums never drop below the floors",
			overrides: review.SizingOverrides{
				MinWidth:  intPtr(200),
				MinHeight: intPtr(100),
			},
			expected: review.Sizing{MinWidth: 480, MinHeight: 360, MaxWidth: 480, MaxHeight: 360, Resize: "both"},
		},
		{
			name: "maximums below minimums are raised",
			overrides: review.SizingOverrides{
				MinWidth:  intPtr(600),
				MaxWidth:  intPtr(500),
				MaxHeight: intPtr(1000),
			},
			expected: review.Sizing{MinWidth: 600, MinHeight: 360, MaxWidth: 600, MaxHeight: 1000, Resize: "both"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizing := review.NewSizing(tt.overrides)
			assert.Equal(t, tt.expected, sizing)
			assert.GreaterOrEqual(t, sizing.MaxWidth, sizing.MinWidth)
			assert.GreaterOrEqual(t, sizing.MaxHeight, sizing.MinHeight)
		})
	}
}
