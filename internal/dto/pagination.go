package dto

type PageFilter struct {
	NextToken  *string `form:"nextToken" binding:"omitempty"`
	MaxResults *int    `form:"maxResults" binding:"omitempty,min=1,max=120"`
}

type Page[T any] struct {
	NextToken   *string `json:"nextToken"`
	PrevToken   *string `json:"prevToken"`
	ResultCount int     `json:"resultCount"`
	Data        []T     `json:"data"`
}

// ReviewQueueFilters paginate by offset instead of keyset so every row
// keeps an absolute position in the queue.
type ReviewQueueFilters struct {
	Take *int `form:"take" binding:"omitempty,min=1,max=120"`
	Skip *int `form:"skip" binding:"omitempty,min=0"`
}
