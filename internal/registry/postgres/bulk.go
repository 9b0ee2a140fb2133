package postgresregistry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pitchside/newsletter-service/internal"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/outcome"
	"github.com/pitchside/newsletter-service/internal/registry"
)

const countNewslettersQry = `
SELECT
	COUNT(*)
FROM
	newsletters
%s;
`

const getNewsletterIdsQry = `
SELECT
	id
FROM
	newsletters
%s
ORDER BY
	id;
`

const publishNewsletterQry = `
UPDATE
	newsletters
SET
	status = @status,
	updated_at = @updatedAt,
	published_at = @publishedAt
WHERE
	id = @newsletterId;
`

const getReviewQueueQry = `
SELECT
	id,
	title,
	topic,
	status,
	created_by,
	updated_at
FROM
	newsletters
WHERE
	status = @status
ORDER BY
	id
OFFSET
	@skip
LIMIT
	@take;
`

const countReviewQueueQry = `
SELECT
	COUNT(*)
FROM
	newsletters
WHERE
	status = @status;
`

func (r *Registry) countNewsletters(ctx context.Context, whereFilters []string, args pgx.NamedArgs) (int, error) {

	whereStmt := ""

	if len(whereFilters) > 0 {
		whereStmt = fmt.Sprintf("WHERE %s", strings.Join(whereFilters, " AND "))
	}

	query := fmt.Sprintf(countNewslettersQry, whereStmt)

	var count int

	err := r.conn.QueryRow(ctx, query, args).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count newsletters - %w", err)
	}

	return count, nil
}

// CountSelection reports how many newsletters match the filters and how
// many of the excluded ids are part of that match. The second number is
// what the admin toast shows as excluded.
func (r *Registry) CountSelection(ctx context.Context, filters dto.NewsletterFilters, excludeIds []int64) (int, int, error) {

	args := pgx.NamedArgs{}
	whereFilters := buildNewsletterFilters(filters, args)

	matched, err := r.countNewsletters(ctx, whereFilters, args)

	if err != nil {
		return 0, 0, err
	}

	if len(excludeIds) == 0 {
		return matched, 0, nil
	}

	excludedArgs := pgx.NamedArgs{}
	excludedFilters := buildNewsletterFilters(filters, excludedArgs)

	excludedFilters = append(excludedFilters, "id = ANY(@excludeIds)")
	excludedArgs["excludeIds"] = excludeIds

	excluded, err := r.countNewsletters(ctx, excludedFilters, excludedArgs)

	if err != nil {
		return 0, 0, err
	}

	return matched, excluded, nil
}

// ResolveFilteredIds turns a filter selection into concrete newsletter
// ids. When the caller supplies the total it saw at selection time the
// current match count must agree, otherwise the selection is stale and
// acting on it would touch rows the admin never reviewed.
func (r *Registry) ResolveFilteredIds(ctx context.Context, filters dto.NewsletterFilters, excludeIds []int64, expectedTotal *int) ([]int64, error) {

	args := pgx.NamedArgs{}
	whereFilters := buildNewsletterFilters(filters, args)

	matched, err := r.countNewsletters(ctx, whereFilters, args)

	if err != nil {
		return nil, err
	}

	if expectedTotal != nil && matched != *expectedTotal {
		return nil, internal.StaleSelection{
			Expected: *expectedTotal,
			Matched:  matched,
		}
	}

	if len(excludeIds) > 0 {
		whereFilters = append(whereFilters, "NOT (id = ANY(@excludeIds))")
		args["excludeIds"] = excludeIds
	}

	whereStmt := ""

	if len(whereFilters) > 0 {
		whereStmt = fmt.Sprintf("WHERE %s", strings.Join(whereFilters, " AND "))
	}

	query := fmt.Sprintf(getNewsletterIdsQry, whereStmt)

	rows, err := r.conn.Query(ctx, query, args)

	if err != nil {
		return nil, fmt.Errorf("failed to query rows - %w", err)
	}

	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])

	if err != nil {
		return nil, fmt.Errorf("failed to collect rows - %w", err)
	}

	return ids, nil
}

// PublishNewsletters publishes each id on its own transaction so one
// bad newsletter cannot hold the rest of the batch back.
func (r *Registry) PublishNewsletters(ctx context.Context, publishedBy string, ids []int64) (outcome.Report, error) {

	report := outcome.NewReport()

	for _, id := range ids {
		status, err := r.GetNewsletterStatus(ctx, id)

		if err != nil && errors.As(err, &internal.EntityNotFound{}) {
			report.AddFailure(id, err)
			continue
		} else if err != nil {
			return report, err
		}

		if !registry.IsPublishableStatus(status) {
			report.AddFailure(id, internal.InvalidNewsletterStatus{
				Id:     id,
				Status: string(status),
			})
			continue
		}

		if err := r.publishNewsletter(ctx, publishedBy, id); err != nil {
			return report, err
		}

		report.AddSuccess(id)
	}

	return report, nil
}

func (r *Registry) publishNewsletter(ctx context.Context, publishedBy string, id int64) error {

	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to start transaction - %w", err)
	}

	now := time.Now().Format(time.RFC3339Nano)

	args := pgx.NamedArgs{
		"newsletterId": id,
		"status":       dto.Published,
		"updatedAt":    now,
		"publishedAt":  now,
	}

	_, err = tx.Exec(ctx, publishNewsletterQry, args)

	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to publish newsletter - %w", err)
	}

	err = r.createStatusLog(ctx, tx, id, dto.Published, publishedBy)

	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to insert newsletter status log - %w", err)
	}

	err = tx.Commit(ctx)

	if err != nil {
		return fmt.Errorf("failed to commit newsletter publish - %w", err)
	}

	return nil
}

// DeleteNewsletters deletes each id independently, recording business
// rejections in the report instead of aborting the batch.
func (r *Registry) DeleteNewsletters(ctx context.Context, ids []int64) (outcome.Report, error) {

	report := outcome.NewReport()

	for _, id := range ids {
		exists, err := r.newsletterExists(ctx, id)

		if err != nil {
			return report, err
		}

		if !exists {
			report.AddFailure(id, notFound(id))
			continue
		}

		err = r.DeleteNewsletter(ctx, id)

		if err != nil && errors.As(err, &internal.InvalidNewsletterStatus{}) {
			report.AddFailure(id, err)
			continue
		} else if err != nil {
			return report, err
		}

		report.AddSuccess(id)
	}

	return report, nil
}

// GetNewsletterSummaries loads summaries for a set of ids. Ids without
// a row are simply absent from the result.
func (r *Registry) GetNewsletterSummaries(ctx context.Context, ids []int64) ([]dto.NewsletterSummary, error) {

	args := pgx.NamedArgs{"ids": ids}

	whereStmt := "WHERE id = ANY(@ids)"
	query := fmt.Sprintf(getNewsletterSummaries, whereStmt)

	args["limit"] = len(ids)

	rows, err := r.conn.Query(ctx, query, args)

	if err != nil {
		return nil, fmt.Errorf("failed to query rows - %w", err)
	}

	defer rows.Close()

	collectedSummaries, err := pgx.CollectRows(rows, pgx.RowToStructByName[newsletterSummary])

	if err != nil {
		return nil, fmt.Errorf("failed to collect rows - %w", err)
	}

	summaries := make([]dto.NewsletterSummary, 0, len(collectedSummaries))

	for _, s := range collectedSummaries {
		summaries = append(summaries, dto.NewsletterSummary{
			Id:        s.Id,
			Title:     s.Title,
			Topic:     s.Topic,
			Status:    dto.NewsletterStatus(s.Status),
			CreatedBy: s.CreatedBy,
			UpdatedAt: s.UpdatedAt.Format(time.RFC3339Nano),
		})
	}

	return summaries, nil
}

// GetReviewQueue returns the newsletters waiting for review in queue
// order together with the queue size. Offset pagination keeps every
// entry at a stable position for the progress labels.
func (r *Registry) GetReviewQueue(ctx context.Context, filters dto.ReviewQueueFilters) (int, []dto.NewsletterSummary, error) {

	args := pgx.NamedArgs{
		"status": dto.InReview,
		"skip":   0,
		"take":   internal.PageSize,
	}

	if filters.Skip != nil {
		args["skip"] = *filters.Skip
	}

	if filters.Take != nil {
		args["take"] = *filters.Take
	}

	var total int

	err := r.conn.QueryRow(ctx, countReviewQueueQry, pgx.NamedArgs{"status": dto.InReview}).Scan(&total)

	if err != nil {
		return 0, nil, fmt.Errorf("failed to count newsletters in review - %w", err)
	}

	rows, err := r.conn.Query(ctx, getReviewQueueQry, args)

	if err != nil {
		return 0, nil, fmt.Errorf("failed to query rows - %w", err)
	}

	defer rows.Close()

	collectedSummaries, err := pgx.CollectRows(rows, pgx.RowToStructByName[newsletterSummary])

	if err != nil {
		return 0, nil, fmt.Errorf("failed to collect rows - %w", err)
	}

	summaries := make([]dto.NewsletterSummary, 0, len(collectedSummaries))

	for _, s := range collectedSummaries {
		summaries = append(summaries, dto.NewsletterSummary{
			Id:        s.Id,
			Title:     s.Title,
			Topic:     s.Topic,
			Status:    dto.NewsletterStatus(s.Status),
			CreatedBy: s.CreatedBy,
			UpdatedAt: s.UpdatedAt.Format(time.RFC3339Nano),
		})
	}

	return total, summaries, nil
}
