package postgresregistry

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pitchside/newsletter-service/internal"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/registry"
)

const insertNewsletter = `
INSERT INTO newsletters (
	title,
	topic,
	contents,
	status,
	created_at,
	created_by,
	updated_at
) VALUES (
	@title,
	@topic,
	@contents,
	@status,
	@createdAt,
	@createdBy,
	@updatedAt
)
RETURNING
	id;
`

const insertNewsletterStatusLog = `
INSERT INTO newsletter_status_log (
	newsletter_id,
	status,
	status_date,
	changed_by
) VALUES (
	@newsletterId,
	@status,
	@statusDate,
	@changedBy
);
`

const updateNewsletterQry = `
UPDATE
	newsletters
SET
	title = @title,
	topic = @topic,
	contents = @contents,
	updated_at = @updatedAt
WHERE
	id = @newsletterId;
`

const updateNewsletterStatusQry = `
UPDATE
	newsletters
SET
	status = @status,
	updated_at = @updatedAt
WHERE
	id = @newsletterId;
`

const deleteNewsletterQry = `
DELETE FROM
	newsletters
WHERE
	id = $1;
`

const getNewsletterStatusQry = `
SELECT
	status
FROM
	newsletters
WHERE
	id = $1;
`

const getNewsletterQry = `
SELECT
	id,
	title,
	topic,
	contents,
	status,
	created_by,
	created_at,
	updated_at,
	published_at
FROM
	newsletters
WHERE
	id = $1;
`

const getNewsletterSummaries = `
SELECT
	id,
	title,
	topic,
	status,
	created_by,
	updated_at
FROM
	newsletters
%s
ORDER BY
	id DESC
LIMIT
	@limit;
`

const getStatusLogQry = `
SELECT
	status,
	changed_by,
	status_date
FROM
	newsletter_status_log
WHERE
	newsletter_id = $1
ORDER BY
	id DESC;
`

type newsletterKey struct {
	Id int64 `json:"id"`
}

type newsletterSummary struct {
	Id        int64     `db:"id"`
	Title     string    `db:"title"`
	Topic     string    `db:"topic"`
	Status    string    `db:"status"`
	CreatedBy string    `db:"created_by"`
	UpdatedAt time.Time `db:"updated_at"`
}

type statusLogEntry struct {
	Status     string    `db:"status"`
	ChangedBy  string    `db:"changed_by"`
	StatusDate time.Time `db:"status_date"`
}

func notFound(id int64) internal.EntityNotFound {
	return internal.EntityNotFound{
		Id:   strconv.FormatInt(id, 10),
		Type: registry.NewsletterType,
	}
}

func buildNewsletterFilters(filters dto.NewsletterFilters, args pgx.NamedArgs) []string {

	whereFilters := []string{}

	if len(filters.Statuses) > 0 {
		statuses := make([]string, 0, len(filters.Statuses))

		for _, status := range filters.Statuses {
			statuses = append(statuses, string(status))
		}

		whereFilters = append(whereFilters, "status = ANY(@statuses)")
		args["statuses"] = statuses
	}

	if filters.Topic != nil {
		whereFilters = append(whereFilters, "topic = @topic")
		args["topic"] = *filters.Topic
	}

	if filters.CreatedBy != nil {
		whereFilters = append(whereFilters, "created_by = @createdBy")
		args["createdBy"] = *filters.CreatedBy
	}

	if filters.Search != nil {
		whereFilters = append(whereFilters, "title ILIKE @search")
		args["search"] = fmt.Sprintf("%%%s%%", *filters.Search)
	}

	return whereFilters
}

func (r *Registry) createStatusLog(ctx context.Context, tx pgx.Tx, id int64, status dto.NewsletterStatus, changedBy string) error {

	args := pgx.NamedArgs{
		"newsletterId": id,
		"status":       status,
		"statusDate":   time.Now().Format(time.RFC3339Nano),
		"changedBy":    changedBy,
	}

	_, err := tx.Exec(ctx, insertNewsletterStatusLog, args)

	return err
}

func (r *Registry) SaveNewsletter(ctx context.Context, createdBy string, req dto.NewsletterReq) (dto.NewsletterResp, error) {

	newsletter := dto.NewsletterResp{}

	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return newsletter, fmt.Errorf("failed to start transaction - %w", err)
	}

	now := time.Now()

	args := pgx.NamedArgs{
		"title":     req.Title,
		"topic":     req.Topic,
		"contents":  req.Contents,
		"status":    dto.Draft,
		"createdAt": now.Format(time.RFC3339Nano),
		"createdBy": createdBy,
		"updatedAt": now.Format(time.RFC3339Nano),
	}

	var id int64

	err = tx.QueryRow(ctx, insertNewsletter, args).Scan(&id)

	if err != nil {
		tx.Rollback(ctx)
		return newsletter, fmt.Errorf("failed to insert newsletter - %w", err)
	}

	err = r.createStatusLog(ctx, tx, id, dto.Draft, createdBy)

	if err != nil {
		tx.Rollback(ctx)
		return newsletter, fmt.Errorf("failed to create newsletter status log - %w", err)
	}

	err = tx.Commit(ctx)

	if err != nil {
		return newsletter, fmt.Errorf("failed to commit newsletter insert - %w", err)
	}

	newsletter.Id = id
	newsletter.Title = req.Title
	newsletter.Topic = req.Topic
	newsletter.Contents = req.Contents
	newsletter.Status = dto.Draft
	newsletter.CreatedBy = createdBy
	newsletter.CreatedAt = now.Format(time.RFC3339Nano)
	newsletter.UpdatedAt = now.Format(time.RFC3339Nano)

	return newsletter, nil
}

func (r *Registry) GetNewsletterStatus(ctx context.Context, id int64) (dto.NewsletterStatus, error) {

	var status dto.NewsletterStatus

	err := r.conn.QueryRow(ctx, getNewsletterStatusQry, id).Scan(&status)

	if err == pgx.ErrNoRows {
		return status, notFound(id)
	} else if err != nil {
		return status, fmt.Errorf("failed to query the newsletter status - %w", err)
	}

	return status, nil
}

func (r *Registry) GetNewsletter(ctx context.Context, id int64) (dto.NewsletterResp, error) {

	newsletter := dto.NewsletterResp{}

	createdAt := time.Time{}
	updatedAt := time.Time{}

	var publishedAt *time.Time

	err := r.conn.QueryRow(ctx, getNewsletterQry, id).Scan(
		&newsletter.Id,
		&newsletter.Title,
		&newsletter.Topic,
		&newsletter.Contents,
		&newsletter.Status,
		&newsletter.CreatedBy,
		&createdAt,
		&updatedAt,
		&publishedAt,
	)

	if err == pgx.ErrNoRows {
		return newsletter, notFound(id)
	} else if err != nil {
		return newsletter, fmt.Errorf("failed to query the newsletter - %w", err)
	}

	newsletter.CreatedAt = createdAt.Format(time.RFC3339Nano)
	newsletter.UpdatedAt = updatedAt.Format(time.RFC3339Nano)

	if publishedAt != nil {
		formatted := publishedAt.Format(time.RFC3339Nano)
		newsletter.PublishedAt = &formatted
	}

	return newsletter, nil
}

func (r *Registry) GetNewsletters(ctx context.Context, filters dto.NewsletterFilters) (dto.Page[dto.NewsletterSummary], error) {

	var page dto.Page[dto.NewsletterSummary]

	args := pgx.NamedArgs{"limit": internal.PageSize}

	if filters.MaxResults != nil {
		args["limit"] = *filters.MaxResults
	}

	whereFilters := buildNewsletterFilters(filters, args)

	if filters.NextToken != nil {
		whereFilters = append(whereFilters, "id < @id")

		var unmarshalledKey newsletterKey
		err := registry.UnmarshalKey(*filters.NextToken, &unmarshalledKey)

		if err != nil {
			return page, err
		}

		args["id"] = unmarshalledKey.Id
	}

	whereStmt := ""

	if len(whereFilters) > 0 {
		whereStmt = fmt.Sprintf("WHERE %s", strings.Join(whereFilters, " AND "))
	}

	query := fmt.Sprintf(getNewsletterSummaries, whereStmt)

	rows, err := r.conn.Query(ctx, query, args)

	if err != nil {
		return page, fmt.Errorf("failed to query rows - %w", err)
	}

	defer rows.Close()

	collectedSummaries, err := pgx.CollectRows(rows, pgx.RowToStructByName[newsletterSummary])

	if err != nil {
		return page, fmt.Errorf("failed to collect rows - %w", err)
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

	numSummaries := len(summaries)

	if numSummaries == args["limit"] {
		lastSummary := summaries[numSummaries-1]
		lastKey := newsletterKey{Id: lastSummary.Id}

		key, err := registry.MarshalKey(lastKey)

		if err != nil {
			return page, err
		}

		page.NextToken = &key
	}

	page.PrevToken = filters.NextToken
	page.ResultCount = len(summaries)
	page.Data = summaries

	return page, nil
}

func (r *Registry) UpdateNewsletter(ctx context.Context, id int64, req dto.NewsletterReq) (dto.NewsletterResp, error) {

	newsletter := dto.NewsletterResp{}

	status, err := r.GetNewsletterStatus(ctx, id)

	if err != nil {
		return newsletter, err
	}

	if status != dto.Draft && status != dto.InReview {
		return newsletter, internal.InvalidNewsletterStatus{
			Id:     id,
			Status: string(status),
		}
	}

	args := pgx.NamedArgs{
		"newsletterId": id,
		"title":        req.Title,
		"topic":        req.Topic,
		"contents":     req.Contents,
		"updatedAt":    time.Now().Format(time.RFC3339Nano),
	}

	_, err = r.conn.Exec(ctx, updateNewsletterQry, args)

	if err != nil {
		return newsletter, fmt.Errorf("failed to update newsletter - %w", err)
	}

	return r.GetNewsletter(ctx, id)
}

func (r *Registry) UpdateNewsletterStatus(ctx context.Context, changedBy string, id int64, status dto.NewsletterStatus) error {

	current, err := r.GetNewsletterStatus(ctx, id)

	if err != nil {
		return err
	}

	if !registry.CanTransition(current, status) {
		return internal.InvalidNewsletterStatus{
			Id:     id,
			Status: string(current),
		}
	}

	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to start transaction - %w", err)
	}

	args := pgx.NamedArgs{
		"newsletterId": id,
		"status":       status,
		"updatedAt":    time.Now().Format(time.RFC3339Nano),
	}

	_, err = tx.Exec(ctx, updateNewsletterStatusQry, args)

	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to update newsletter status - %w", err)
	}

	err = r.createStatusLog(ctx, tx, id, status, changedBy)

	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to insert newsletter status log - %w", err)
	}

	err = tx.Commit(ctx)

	if err != nil {
		return fmt.Errorf("failed to commit newsletter status update - %w", err)
	}

	return nil
}

func (r *Registry) DeleteNewsletter(ctx context.Context, id int64) error {

	status, err := r.GetNewsletterStatus(ctx, id)

	if err != nil && errors.As(err, &internal.EntityNotFound{}) {
		return nil
	} else if err != nil {
		return err
	}

	canDelete := registry.IsDeletableStatus(status)

	if !canDelete {
		return internal.InvalidNewsletterStatus{
			Id:     id,
			Status: string(status),
		}
	}

	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to start transaction - %w", err)
	}

	// Relies on ON DELETE CASCADE constraint to delete the status log
	_, err = tx.Exec(ctx, deleteNewsletterQry, id)

	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to delete newsletter - %w", err)
	}

	err = tx.Commit(ctx)

	if err != nil {
		return fmt.Errorf("failed to commit changes - %w", err)
	}

	return nil
}

func (r *Registry) GetStatusLog(ctx context.Context, id int64) ([]dto.NewsletterStatusLogEntry, error) {

	exists, err := r.newsletterExists(ctx, id)

	if err != nil {
		return nil, fmt.Errorf("failed to check if newsletter exists - %w", err)
	}

	if !exists {
		return nil, notFound(id)
	}

	rows, err := r.conn.Query(ctx, getStatusLogQry, id)

	if err != nil {
		return nil, fmt.Errorf("failed to query rows - %w", err)
	}

	defer rows.Close()

	collectedEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[statusLogEntry])

	if err != nil {
		return nil, fmt.Errorf("failed to collect rows - %w", err)
	}

	entries := make([]dto.NewsletterStatusLogEntry, 0, len(collectedEntries))

	for _, e := range collectedEntries {
		entries = append(entries, dto.NewsletterStatusLogEntry{
			Status:    dto.NewsletterStatus(e.Status),
			ChangedBy: e.ChangedBy,
			ChangedAt: e.StatusDate.Format(time.RFC3339Nano),
		})
	}

	return entries, nil
}

func (r *Registry) newsletterExists(ctx context.Context, id int64) (bool, error) {

	var exists string

	err := r.conn.QueryRow(ctx, getNewsletterStatusQry, id).Scan(&exists)

	if err == pgx.ErrNoRows {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to query the newsletter - %w", err)
	}

	return true, nil
}
