package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	di "github.com/pitchside/newsletter-service/internal/di"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/worker"
)

type ConsumerIntegrationTest interface {
	worker.QueueConsumer
	Publish(ctx context.Context, job dto.PreviewJob) error
	Start(ctx context.Context)
}

func TestRabbitMQConsumer(t *testing.T) {

	previewChan := make(chan dto.PreviewMsg)

	consumer, close, err := di.InjectRabbitMQConsumerIntegrationTest(context.TODO(), previewChan)

	if err != nil {
		t.Fatalf("failed to inject RabbitMQ consumer: %v", err)
	}

	defer close()

	testConsumer(t, consumer, previewChan)
}

func TestSQSConsumer(t *testing.T) {

	previewChan := make(chan dto.PreviewMsg)

	consumer, close, err := di.InjectSQSConsumerIntegrationTest(context.TODO(), previewChan)

	if err != nil {
		t.Fatalf("failed to inject SQS consumer: %v", err)
	}

	defer close()

	testConsumer(t, consumer, previewChan)
}

func testConsumer(t *testing.T, consumer ConsumerIntegrationTest, previewChan <-chan dto.PreviewMsg) {

	ctx, cancel := context.WithTimeout(context.TODO(), time.Minute*1)
	defer cancel()

	jobs := []dto.PreviewJob{{
		JobId:        "job-1",
		NewsletterId: 1,
		Title:        "Matchday Digest",
		Topic:        "matchday",
		RequestedBy:  "1234",
		RequestedAt:  "2025-03-01T10:00:00Z",
	}, {
		JobId:        "job-2",
		NewsletterId: 2,
		Title:        "Transfer Roundup",
		Topic:        "transfers",
		RequestedBy:  "1234",
		RequestedAt:  "2025-03-01T10:05:00Z",
	}}

	for _, job := range jobs {
		err := consumer.Publish(ctx, job)
		if err != nil {
			t.Fatalf("failed to publish message: %v", err)
		}
	}

	t.Run("Can consume messages", func(t *testing.T) {
		go consumer.Start(ctx)

		receivedJobs := make([]dto.PreviewJob, 0, len(jobs))

		for i := 0; i < len(jobs); i++ {
			select {
			case msg := <-previewChan:
				receivedJobs = append(receivedJobs, msg.Payload)
				assert.Nil(t, consumer.Ack(ctx, msg.DeleteTag))
			case <-ctx.Done():
				t.Fatal("context done before receiving message")
			}
		}

		assert.ElementsMatch(t, jobs, receivedJobs)
	})
}
