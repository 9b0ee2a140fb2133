package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pitchside/newsletter-service/internal"
	"github.com/pitchside/newsletter-service/internal/auth"
	"github.com/pitchside/newsletter-service/internal/cache"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/outcome"
	"github.com/pitchside/newsletter-service/internal/registry"
	"github.com/pitchside/newsletter-service/internal/review"
	"github.com/pitchside/newsletter-service/internal/selection"
)

type BulkRegistry interface {
	CountSelection(ctx context.Context, filters dto.NewsletterFilters, excludeIds []int64) (int, int, error)
	ResolveFilteredIds(ctx context.Context, filters dto.NewsletterFilters, excludeIds []int64, expectedTotal *int) ([]int64, error)
	PublishNewsletters(ctx context.Context, publishedBy string, ids []int64) (outcome.Report, error)
	DeleteNewsletters(ctx context.Context, ids []int64) (outcome.Report, error)
	GetNewsletterSummaries(ctx context.Context, ids []int64) ([]dto.NewsletterSummary, error)
	GetReviewQueue(ctx context.Context, filters dto.ReviewQueueFilters) (int, []dto.NewsletterSummary, error)
}

type PreviewPublisher interface {
	Publish(ctx context.Context, job dto.PreviewJob) error
}

type ReviewConfigurator interface {
	GetReviewModalOverrides() review.SizingOverrides
}

type BulkController struct {
	Registry     BulkRegistry
	Publisher    PreviewPublisher
	Cache        cache.Cache
	Configurator ReviewConfigurator
}

// resolveTargetIds turns the raw selection of a bulk request into the
// ids the action applies to. It writes the error response itself and
// reports ok=false when the caller should stop.
func (bc *BulkController) resolveTargetIds(c *gin.Context) ([]int64, bool) {

	var req dto.BulkActionReq

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	target, err := selection.DecodeTarget(req.Selection)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	switch target := target.(type) {
	case selection.Explicit:
		return target.Ids, true
	case selection.Filtered:
		return bc.resolveFilteredIds(c, target)
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": selection.ErrNoActionableTarget.Error()})
	return nil, false
}

func (bc *BulkController) resolveFilteredIds(c *gin.Context, target selection.Filtered) ([]int64, bool) {

	filters, err := dto.NewsletterFiltersFromParams(target.Params)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	ids, err := bc.Registry.ResolveFilteredIds(
		c.Request.Context(), filters, target.ExcludeIds, target.ExpectedTotal)

	if err != nil && errors.As(err, &internal.StaleSelection{}) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return nil, false
	} else if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return nil, false
	}

	return ids, true
}

func (bc *BulkController) PublishNewsletters(c *gin.Context) {

	ids, ok := bc.resolveTargetIds(c)

	if !ok {
		return
	}

	userId := c.GetHeader(string(auth.UserHeader))

	report, err := bc.Registry.PublishNewsletters(c.Request.Context(), userId, ids)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.BulkOutcomeResp{Report: report})

	invalidateCachedNewsletters(c, bc.Cache)
}

func (bc *BulkController) DeleteNewsletters(c *gin.Context) {

	ids, ok := bc.resolveTargetIds(c)

	if !ok {
		return
	}

	report, err := bc.Registry.DeleteNewsletters(c.Request.Context(), ids)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	message := outcome.SummarizeDelete(report)

	c.JSON(http.StatusOK, dto.BulkOutcomeResp{Report: report, Message: &message})

	invalidateCachedNewsletters(c, bc.Cache)
}

func (bc *BulkController) PreviewNewsletters(c *gin.Context) {

	ids, ok := bc.resolveTargetIds(c)

	if !ok {
		return
	}

	summaries, err := bc.Registry.GetNewsletterSummaries(c.Request.Context(), ids)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	summariesById := make(map[int64]dto.NewsletterSummary, len(summaries))

	for _, summary := range summaries {
		summariesById[summary.Id] = summary
	}

	userId := c.GetHeader(string(auth.UserHeader))
	requestedAt := time.Now().Format(time.RFC3339Nano)

	report := outcome.NewReport()

	for _, id := range ids {
		summary, ok := summariesById[id]

		if !ok {
			report.AddFailure(id, internal.EntityNotFound{
				Id:   strconv.FormatInt(id, 10),
				Type: registry.NewsletterType,
			})
			continue
		}

		jobId, err := uuid.NewV7()

		if err != nil {
			slog.Error(err.Error(), "newsletterId", id)
			report.AddFailure(id, errors.New("failed to queue preview"))
			continue
		}

		job := dto.PreviewJob{
			JobId:        jobId.String(),
			NewsletterId: summary.Id,
			Title:        summary.Title,
			Topic:        summary.Topic,
			RequestedBy:  userId,
			RequestedAt:  requestedAt,
		}

		if err := bc.Publisher.Publish(c.Request.Context(), job); err != nil {
			slog.Error(err.Error(), "newsletterId", id)
			report.AddFailure(id, errors.New("failed to queue preview"))
			continue
		}

		report.AddSuccess(id)
	}

	message := outcome.SummarizePreview(report)

	c.JSON(http.StatusOK, dto.BulkOutcomeResp{Report: report, Message: &message})
}

func (bc *BulkController) CountSelection(c *gin.Context) {

	var req dto.SelectionCountReq

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters, err := dto.NewsletterFiltersFromParams(req.FilterParams)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matched, excluded, err := bc.Registry.CountSelection(
		c.Request.Context(), filters, selection.Normalize(req.ExcludeIds...))

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.SelectionCountResp{
		Matched:  matched,
		Excluded: excluded,
		Message:  review.SelectionToast(matched, excluded),
	})
}

func (bc *BulkController) GetReviewQueue(c *gin.Context) {

	var filters dto.ReviewQueueFilters

	if err := c.ShouldBind(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, summaries, err := bc.Registry.GetReviewQueue(c.Request.Context(), filters)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	skip := 0

	if filters.Skip != nil {
		skip = *filters.Skip
	}

	entries := make([]dto.ReviewQueueEntry, 0, len(summaries))

	for i, summary := range summaries {
		entries = append(entries, dto.ReviewQueueEntry{
			NewsletterSummary: summary,
			Progress:          review.Progress(skip+i, total),
		})
	}

	c.JSON(http.StatusOK, dto.ReviewQueuePage{
		Total: total,
		Skip:  skip,
		Data:  entries,
		Modal: review.NewSizing(bc.Configurator.GetReviewModalOverrides()),
	})
}
