package outcome

import (
	"fmt"
	"strings"
)

// Failure records one newsletter the action could not be applied to. Id
// is zero when the failure has no usable id; such failures are counted
// in summaries but not listed.
type Failure struct {
	Id    int64  `json:"id,omitempty"`
	Error string `json:"error"`
}

type Report struct {
	Succeeded []int64   `json:"succeeded"`
	Failures  []Failure `json:"failures"`
}

func NewReport() Report {
	return Report{
		Succeeded: []int64{},
		Failures:  []Failure{},
	}
}

func (r *Report) AddSuccess(id int64) {
	r.Succeeded = append(r.Succeeded, id)
}

func (r *Report) AddFailure(id int64, err error) {
	r.Failures = append(r.Failures, Failure{Id: id, Error: err.Error()})
}

// SummarizePreview renders the status sentence shown to the admin after
// a bulk preview send.
func SummarizePreview(report Report) string {
	return summarize(report, "Sent admin preview to", "No newsletters were processed.")
}

// SummarizeDelete renders the status sentence shown to the admin after
// a bulk delete.
func SummarizeDelete(report Report) string {
	return summarize(report, "Deleted", "No newsletters were deleted.")
}

func summarize(report Report, verb string, zeroState string) string {

	succeeded := len(report.Succeeded)
	failed := len(report.Failures)

	if succeeded == 0 && failed == 0 {
		return zeroState
	}

	sentence := fmt.Sprintf("%s %s.", verb, countPhrase(succeeded))

	if failed == 0 {
		return sentence
	}

	listed := make([]string, 0, failed)

	for _, failure := range report.Failures {
		if failure.Id > 0 {
			listed = append(listed, fmt.Sprintf("#%d", failure.Id))
		}
	}

	failurePart := fmt.Sprintf("Failed for %s", countPhrase(failed))

	if len(listed) > 0 {
		failurePart = fmt.Sprintf("%s: %s", failurePart, strings.Join(listed, ", "))
	}

	return fmt.Sprintf("%s %s.", sentence, failurePart)
}

func countPhrase(count int) string {

	if count == 1 {
		return "1 newsletter"
	}

	return fmt.Sprintf("%d newsletters", count)
}
