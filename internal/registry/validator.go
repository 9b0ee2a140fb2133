package registry

import (
	"github.com/pitchside/newsletter-service/internal/dto"
)

func IsDeletableStatus(status dto.NewsletterStatus) bool {

	deletableStatuses := map[dto.NewsletterStatus]struct{}{
		dto.Draft:    {},
		dto.InReview: {},
		dto.Archived: {},
	}

	_, ok := deletableStatuses[status]

	return ok
}

func IsPublishableStatus(status dto.NewsletterStatus) bool {

	publishableStatuses := map[dto.NewsletterStatus]struct{}{
		dto.Draft:    {},
		dto.InReview: {},
	}

	_, ok := publishableStatuses[status]

	return ok
}

// CanTransition reports whether a newsletter may move between two
// statuses through the status endpoint. Publishing is not listed here
// since it only happens through the bulk publish flow.
func CanTransition(from, to dto.NewsletterStatus) bool {

	transitions := map[dto.NewsletterStatus][]dto.NewsletterStatus{
		dto.Draft:     {dto.InReview, dto.Archived},
		dto.InReview:  {dto.Draft, dto.Archived},
		dto.Published: {dto.Archived},
		dto.Archived:  {dto.Draft},
	}

	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}
