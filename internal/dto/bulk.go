package dto

import (
	"encoding/json"

	"github.com/pitchside/newsletter-service/internal/outcome"
	"github.com/pitchside/newsletter-service/internal/review"
	"github.com/pitchside/newsletter-service/internal/selection"
)

// BulkActionReq carries the raw selection exactly as the admin UI sent
// it. Decoding happens in the selection package so the same tolerance
// applies to every bulk route.
type BulkActionReq struct {
	Selection json.RawMessage `json:"selection" binding:"required"`
}

type BulkOutcomeResp struct {
	outcome.Report
	Message *string `json:"message,omitempty"`
}

type SelectionCountReq struct {
	FilterParams selection.FilterParams `json:"filter_params"`
	ExcludeIds   []any                  `json:"exclude_ids"`
}

type SelectionCountResp struct {
	Matched  int    `json:"matched"`
	Excluded int    `json:"excluded"`
	Message  string `json:"message"`
}

type ReviewQueueEntry struct {
	NewsletterSummary
	Progress string `json:"progress"`
}

type ReviewQueuePage struct {
	Total int                `json:"total"`
	Skip  int                `json:"skip"`
	Data  []ReviewQueueEntry `json:"data"`
	Modal review.Sizing      `json:"modal"`
}
