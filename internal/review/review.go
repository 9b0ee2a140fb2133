// Package review holds the strings and layout hints the admin surfaces
// agree on while reviewing newsletters. Keeping them server side means
// every client renders the same copy.
package review

import "fmt"

const (
	minModalWidth  = 480
	minModalHeight = 360
)

type SizingOverrides struct {
	MinWidth  *int
	MinHeight *int
	MaxWidth  *int
	MaxHeight *int
}

type Sizing struct {
	MinWidth  int    `json:"minWidth"`
	MinHeight int    `json:"minHeight"`
	MaxWidth  int    `json:"maxWidth"`
	MaxHeight int    `json:"maxHeight"`
	Resize    string `json:"resize"`
}

// Progress labels the position of a newsletter inside the review queue.
// The index is clamped into [0, total-1].
func Progress(index, total int) string {

	if total <= 0 {
		return "No newsletters to review"
	}

	index = min(max(index, 0), total-1)

	return fmt.Sprintf("Newsletter %d of %d", index+1, total)
}

// SelectionToast confirms a filtered select-all to the admin.
func SelectionToast(totalMatched, totalExcluded int) string {

	if totalMatched <= 0 {
		return "No newsletters match your filters."
	}

	toast := fmt.Sprintf("All %d filtered newsletters selected.", totalMatched)

	if totalExcluded <= 0 {
		return toast
	}

	verb := "are"

	if totalExcluded == 1 {
		verb = "is"
	}

	return fmt.Sprintf("%s %d %s excluded.", toast, totalExcluded, verb)
}

// NewSizing resolves the review modal bounds. Minimums never drop below
// the hard floors and each maximum never drops below its resolved
// minimum. The modal is always resizable on both axes.
func NewSizing(overrides SizingOverrides) Sizing {

	minWidth := floor(overrides.MinWidth, minModalWidth)
	minHeight := floor(overrides.MinHeight, minModalHeight)

	return Sizing{
		MinWidth:  minWidth,
		MinHeight: minHeight,
		MaxWidth:  ceiling(overrides.MaxWidth, minWidth),
		MaxHeight: ceiling(overrides.MaxHeight, minHeight),
		Resize:    "both",
	}
}

func floor(override *int, hardFloor int) int {

	if override == nil {
		return hardFloor
	}

	return max(*override, hardFloor)
}

func ceiling(override *int, resolvedMin int) int {

	if override == nil {
		return resolvedMin
	}

	return max(*override, resolvedMin)
}
