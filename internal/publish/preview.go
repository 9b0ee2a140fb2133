package publish

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pitchside/newsletter-service/internal/dto"
)

type Message struct {
	Id      string
	Payload []byte
	Topic   string
}

type Publisher interface {
	Publish(ctx context.Context, queueName string, message Message) error
}

type PreviewQueueConfigurator interface {
	GetPreviewQueue() (string, error)
}

type Preview struct {
	publisher Publisher
	queue     string
}

type PreviewPublisherCfg struct {
	Publisher         Publisher
	QueueConfigurator PreviewQueueConfigurator
}

func (p *Preview) Publish(ctx context.Context, job dto.PreviewJob) error {

	payload, err := json.Marshal(job)

	if err != nil {
		return fmt.Errorf("failed to marshall message body - %w", err)
	}

	message := Message{
		Id:      job.JobId,
		Payload: payload,
		Topic:   job.Topic,
	}

	if err := p.publisher.Publish(ctx, p.queue, message); err != nil {
		return fmt.Errorf("failed to publish preview job - %w", err)
	}

	return nil
}

func NewPreviewPublisher(cfg PreviewPublisherCfg) (*Preview, error) {

	queue, err := cfg.QueueConfigurator.GetPreviewQueue()

	if err != nil {
		return nil, err
	}

	preview := Preview{
		publisher: cfg.Publisher,
		queue:     queue,
	}

	return &preview, nil
}
