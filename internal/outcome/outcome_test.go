package outcome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchside/newsletter-service/internal/outcome"
)

func TestSummarizePreview(t *testing.T) {

	tests := []struct {
		name     string
		report   outcome.Report
		expected string
	}{
		{
			name:     "nothing processed",
			report:   outcome.NewReport(),
			expected: "No newsletters were processed.",
		},
		{
			name:     "single success",
			report:   outcome.Report{Succeeded: []int64{4}},
			expected: "Sent admin preview to 1 newsletter.",
		},
		{
			name:     "multiple successes",
			report:   outcome.Report{Succeeded: []int64{4, 5, 6}},
			expected: "Sent admin preview to 3 newsletters.",
		},
		{
			name: "successes with listed failures",
			report: outcome.Report{
				Succeeded: []int64{4, 5},
				Failures: []outcome.Failure{
					{Id: 7, Error: "not found"},
					{Id: 9, Error: "not found"},
				},
			},
			expected: "Sent admin preview to 2 newsletters. Failed for 2 newsletters: #7, #9.",
		},
		{
			name: "failures without usable ids are counted but not listed",
			report: outcome.Report{
				Succeeded: []int64{4},
				Failures: []outcome.Failure{
					{Id: 7, Error: "not found"},
					{Error: "queue unavailable"},
				},
			},
			expected: "Sent admin preview to 1 newsletter. Failed for 2 newsletters: #7.",
		},
		{
			name: "only failures",
			report: outcome.Report{
				Failures: []outcome.Failure{{Id: 3, Error: "not found"}},
			},
			expected: "Sent admin preview to 0 newsletters. Failed for 1 newsletter: #3.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, outcome.SummarizePreview(tt.report))
		})
	}
}

func TestSummarizeDelete(t *testing.T) {

	tests := []struct {
		name     string
		report   outcome.Report
		expected string
	}{
		{
			name:     "nothing deleted",
			report:   outcome.NewReport(),
			expected: "No newsletters were deleted.",
		},
		{
			name:     "single delete",
			report:   outcome.Report{Succeeded: []int64{12}},
			expected: "Deleted 1 newsletter.",
		},
		{
			name: "deletes with failures",
			report: outcome.Report{
				Succeeded: []int64{12, 13},
				Failures:  []outcome.Failure{{Id: 77, Error: "newsletter 77 has status PUBLISHED"}},
			},
			expected: "Deleted 2 newsletters. Failed for 1 newsletter: #77.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, outcome.SummarizeDelete(tt.report))
		})
	}
}

func TestSummariesArePure(t *testing.T) {

	report := outcome.Report{
		Succeeded: []int64{1, 2},
		Failures:  []outcome.Failure{{Id: 3, Error: "not found"}},
	}

	first := outcome.SummarizePreview(report)
	second := outcome.SummarizePreview(report)

	assert.Equal(t, first, second)
	assert.Equal(t, []int64{1, 2}, report.Succeeded)
	assert.Len(t, report.Failures, 1)
}
