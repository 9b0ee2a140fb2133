package testutils

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/pitchside/newsletter-service/internal/dto"
)

func makePageURLQuery(req *http.Request, filters dto.PageFilter) url.Values {
	q := req.URL.Query()

	if filters.NextToken != nil {
		q.Add("nextToken", fmt.Sprint(*filters.NextToken))
	}

	if filters.MaxResults != nil {
		q.Add("maxResults", fmt.Sprint(*filters.MaxResults))
	}

	return q
}

func AddPaginationFilters(req *http.Request, filters *dto.PageFilter) {

	if req == nil || filters == nil {
		return
	}

	q := makePageURLQuery(req, *filters)

	req.URL.RawQuery = q.Encode()
}

func AddNewsletterFilters(req *http.Request, filters *dto.NewsletterFilters) {

	if req == nil || filters == nil {
		return
	}

	q := makePageURLQuery(req, filters.PageFilter)

	for _, s := range filters.Statuses {
		q.Add("status", string(s))
	}

	if filters.Topic != nil {
		q.Add("topic", *filters.Topic)
	}

	if filters.CreatedBy != nil {
		q.Add("createdBy", *filters.CreatedBy)
	}

	if filters.Search != nil {
		q.Add("search", *filters.Search)
	}

	req.URL.RawQuery = q.Encode()
}

func AddReviewQueueFilters(req *http.Request, filters *dto.ReviewQueueFilters) {

	if req == nil || filters == nil {
		return
	}

	q := req.URL.Query()

	if filters.Take != nil {
		q.Add("take", fmt.Sprint(*filters.Take))
	}

	if filters.Skip != nil {
		q.Add("skip", fmt.Sprint(*filters.Skip))
	}

	req.URL.RawQuery = q.Encode()
}

func Echo[T any](data T) T {
	return data
}
