package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	c "github.com/pitchside/newsletter-service/internal/controllers"
	di "github.com/pitchside/newsletter-service/internal/di"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/testutils"
)

func TestRabbitMQPreviewPublisher(t *testing.T) {
	testApp, close, err := di.InjectPgRabbitMQPreviewIntegrationTest(context.TODO())

	if err != nil {
		t.Fatalf("failed to create container app - %v", err)
	}

	defer close()

	testPreviewPublisher(t, testApp.Registry, testApp.Publisher)
}

func TestSQSPreviewPublisher(t *testing.T) {
	testApp, close, err := di.InjectPgSQSPreviewIntegrationTest(context.TODO())

	if err != nil {
		t.Fatalf("failed to create container app - %v", err)
	}

	defer close()

	testPreviewPublisher(t, testApp.Registry, testApp.Publisher)
}

func testPreviewPublisher(t *testing.T, s c.NewsletterRegistry, p c.PreviewPublisher) {

	userId := "1234"

	newsletter, err := s.SaveNewsletter(context.TODO(), userId, testutils.MakeTestNewsletterReq())

	if err != nil {
		t.Fatalf("failed to insert test newsletter - %v", err)
	}

	testJob := dto.PreviewJob{
		JobId:        uuid.NewString(),
		NewsletterId: newsletter.Id,
		Title:        newsletter.Title,
		Topic:        newsletter.Topic,
		RequestedBy:  userId,
		RequestedAt:  time.Now().Format(time.RFC3339Nano),
	}

	t.Run("Can publish a new preview job", func(t *testing.T) {
		err := p.Publish(context.TODO(), testJob)
		assert.Nil(t, err)
	})
}
