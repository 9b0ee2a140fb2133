package dto

import (
	"fmt"

	"github.com/pitchside/newsletter-service/internal/selection"
)

type NewsletterStatus string

const (
	Draft     NewsletterStatus = "DRAFT"
	InReview  NewsletterStatus = "IN_REVIEW"
	Published NewsletterStatus = "PUBLISHED"
	Archived  NewsletterStatus = "ARCHIVED"
)

type NewsletterReq struct {
	Title    string `json:"title" binding:"required,min=1,max=160"`
	Topic    string `json:"topic" binding:"required,max=60,topicname"`
	Contents string `json:"contents" binding:"required,min=1"`
}

type NewsletterUriParams struct {
	Id int64 `uri:"id" binding:"required,min=1"`
}

type NewsletterResp struct {
	Id          int64            `json:"id"`
	Title       string           `json:"title"`
	Topic       string           `json:"topic"`
	Contents    string           `json:"contents"`
	Status      NewsletterStatus `json:"status"`
	CreatedBy   string           `json:"createdBy"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
	PublishedAt *string          `json:"publishedAt"`
}

type NewsletterSummary struct {
	Id        int64            `json:"id"`
	Title     string           `json:"title"`
	Topic     string           `json:"topic"`
	Status    NewsletterStatus `json:"status"`
	CreatedBy string           `json:"createdBy"`
	UpdatedAt string           `json:"updatedAt"`
}

type NewsletterStatusUpdate struct {
	Status NewsletterStatus `json:"status" binding:"required,oneof=DRAFT IN_REVIEW ARCHIVED"`
}

type NewsletterStatusLogEntry struct {
	Status    NewsletterStatus `json:"status"`
	ChangedBy string           `json:"changedBy"`
	ChangedAt string           `json:"changedAt"`
}

type NewsletterFilters struct {
	PageFilter
	Statuses  []NewsletterStatus `form:"status" binding:"omitempty,dive,oneof=DRAFT IN_REVIEW PUBLISHED ARCHIVED"`
	Topic     *string            `form:"topic" binding:"omitempty,max=60,topicname"`
	CreatedBy *string            `form:"createdBy" binding:"omitempty,max=120"`
	Search    *string            `form:"search" binding:"omitempty,max=160"`
}

var validStatuses = map[NewsletterStatus]struct{}{
	Draft:     {},
	InReview:  {},
	Published: {},
	Archived:  {},
}

// NewsletterFiltersFromParams interprets an opaque filter expression.
// The selection core forwards the expression verbatim; this is the one
// place its keys take on meaning. Unknown keys are rejected because a
// mistyped filter would silently widen a bulk selection.
func NewsletterFiltersFromParams(params selection.FilterParams) (NewsletterFilters, error) {

	filters := NewsletterFilters{}

	for key, value := range params {
		switch key {
		case "status":
			statuses, err := statusesFromParam(value)

			if err != nil {
				return filters, err
			}

			filters.Statuses = statuses
		case "topic":
			topic, ok := value.(string)

			if !ok {
				return filters, fmt.Errorf("topic filter must be a string")
			}

			filters.Topic = &topic
		case "createdBy", "created_by":
			createdBy, ok := value.(string)

			if !ok {
				return filters, fmt.Errorf("createdBy filter must be a string")
			}

			filters.CreatedBy = &createdBy
		case "search":
			search, ok := value.(string)

			if !ok {
				return filters, fmt.Errorf("search filter must be a string")
			}

			filters.Search = &search
		default:
			return filters, fmt.Errorf("unknown filter %s", key)
		}
	}

	return filters, nil
}

func statusesFromParam(value any) ([]NewsletterStatus, error) {

	candidates := []any{}

	switch v := value.(type) {
	case string:
		candidates = append(candidates, v)
	case []any:
		candidates = v
	default:
		return nil, fmt.Errorf("status filter must be a status or a list of statuses")
	}

	statuses := make([]NewsletterStatus, 0, len(candidates))

	for _, candidate := range candidates {
		str, ok := candidate.(string)

		if !ok {
			return nil, fmt.Errorf("status filter must be a status or a list of statuses")
		}

		status := NewsletterStatus(str)

		if _, valid := validStatuses[status]; !valid {
			return nil, fmt.Errorf("%s is not a newsletter status", str)
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}
