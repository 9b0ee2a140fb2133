package testutils

import (
	"fmt"
	"time"

	"github.com/pitchside/newsletter-service/internal/dto"
)

func MakeTestNewsletterReq() dto.NewsletterReq {
	return dto.NewsletterReq{
		Title:    "Matchday Digest",
		Topic:    "matchday",
		Contents: "# Matchday\n\nEverything you need before kickoff.",
	}
}

func MakeTestNewsletterReqs(numReqs int) []dto.NewsletterReq {

	reqs := make([]dto.NewsletterReq, 0, numReqs)

	for i := 0; i < numReqs; i++ {
		req := MakeTestNewsletterReq()
		req.Title = fmt.Sprintf("Matchday Digest %d", i)
		reqs = append(reqs, req)
	}

	return reqs
}

func MakeNewsletterSummary(req dto.NewsletterReq, id int64, userId string) dto.NewsletterSummary {
	return dto.NewsletterSummary{
		Id:        id,
		Title:     req.Title,
		Topic:     req.Topic,
		Status:    dto.Draft,
		CreatedBy: userId,
		UpdatedAt: time.Now().Format(time.RFC3339Nano),
	}
}

func MakeStrWithSize(size int) string {
	str, i := "", 0

	for i < size {
		str += "+"
		i += 1
	}

	return str
}

func StrPtr(s string) *string {
	return &s
}

func IntPtr(i int) *int {
	return &i
}

func Int64Ptr(i int64) *int64 {
	return &i
}

func StatusPtr(status dto.NewsletterStatus) *dto.NewsletterStatus {
	return &status
}
