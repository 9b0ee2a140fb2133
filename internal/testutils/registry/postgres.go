package registry_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchside/newsletter-service/internal/dto"
	ps "github.com/pitchside/newsletter-service/internal/registry/postgres"
	"github.com/pitchside/newsletter-service/internal/testutils/containers"
)

const insertSeedNewsletter = `
INSERT INTO newsletters (
	title,
	topic,
	contents,
	status,
	created_at,
	created_by,
	updated_at,
	published_at
) VALUES (
	@title,
	@topic,
	@contents,
	@status,
	@createdAt,
	@createdBy,
	@updatedAt,
	@publishedAt
)
RETURNING
	id;
`

const countNewslettersWithId = `
SELECT
	COUNT(*)
FROM
	newsletters
WHERE
	id = $1;
`

const countStatusLogEntriesQry = `
SELECT
	COUNT(*)
FROM
	newsletter_status_log
WHERE
	newsletter_id = $1;
`

const getPublishedAtQry = `
SELECT
	published_at
FROM
	newsletters
WHERE
	id = $1;
`

type ContainerTester interface {
	ClearDB(ctx context.Context) error
}

type closer func()

func Clear(ctx context.Context, t *testing.T, tester ContainerTester) {
	if err := tester.ClearDB(ctx); err != nil {
		t.Fatalf("failed to clear db - %v", err)
	}
}

type postgresRegistryTester struct {
	*ps.Registry
	conn *pgxpool.Pool
}

func (t *postgresRegistryTester) ClearDB(ctx context.Context) error {
	_, err := t.conn.Exec(ctx, `
		TRUNCATE newsletters CASCADE;
		TRUNCATE newsletter_status_log CASCADE;
	`)

	return err
}

// InsertNewsletters seeds newsletters directly with the given status,
// bypassing the transition rules the registry enforces. Each row gets a
// matching status log entry.
func (t *postgresRegistryTester) InsertNewsletters(
	ctx context.Context,
	reqs []dto.NewsletterReq,
	createdBy string,
	status dto.NewsletterStatus) ([]int64, error) {

	ids := make([]int64, 0, len(reqs))
	now := time.Now()

	var publishedAt *time.Time

	if status == dto.Published {
		publishedAt = &now
	}

	for _, req := range reqs {
		args := pgx.NamedArgs{
			"title":       req.Title,
			"topic":       req.Topic,
			"contents":    req.Contents,
			"status":      string(status),
			"createdAt":   now,
			"createdBy":   createdBy,
			"updatedAt":   now,
			"publishedAt": publishedAt,
		}

		var id int64

		err := t.conn.QueryRow(ctx, insertSeedNewsletter, args).Scan(&id)

		if err != nil {
			return nil, fmt.Errorf("failed to seed newsletter - %w", err)
		}

		ids = append(ids, id)
	}

	_, err := t.conn.CopyFrom(ctx,
		pgx.Identifier{"newsletter_status_log"},
		[]string{"newsletter_id", "status", "status_date", "changed_by"},
		pgx.CopyFromSlice(len(ids), func(i int) ([]any, error) {
			return []any{ids[i], string(status), now, createdBy}, nil
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to seed status log - %w", err)
	}

	return ids, nil
}

func (t *postgresRegistryTester) NewsletterExists(ctx context.Context, id int64) (bool, error) {

	count := 0

	err := t.conn.QueryRow(ctx, countNewslettersWithId, id).Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to query newsletter count - %w", err)
	}

	return count > 0, nil
}

func (t *postgresRegistryTester) CountStatusLogEntries(ctx context.Context, id int64) (int, error) {

	count := 0

	err := t.conn.QueryRow(ctx, countStatusLogEntriesQry, id).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to query status log count - %w", err)
	}

	return count, nil
}

func (t *postgresRegistryTester) GetPublishedAt(ctx context.Context, id int64) (*time.Time, error) {

	var publishedAt *time.Time

	err := t.conn.QueryRow(ctx, getPublishedAtQry, id).Scan(&publishedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to query published_at - %w", err)
	}

	return publishedAt, nil
}

func NewPostgresIntegrationTester(ctx context.Context) (*postgresRegistryTester, closer, error) {
	container, containerCloser, err := containers.NewPostgresContainer(ctx)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create container - %w", err)
	}

	url, err := container.GetPostgresUrl()

	if err != nil {
		return nil, nil, err
	}

	conn, err := pgxpool.New(context.TODO(), url)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pool - %w", err)
	}

	registry, err := ps.NewPostgresRegistryFromPool(conn)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create registry - %w", err)
	}

	tester := postgresRegistryTester{
		Registry: registry,
		conn:     conn,
	}

	closer := func() {
		containerCloser()
	}

	return &tester, closer, nil
}
