package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pitchside/newsletter-service/internal/dto"
)

type NewsletterInfoProvider interface {
	GetNewsletter(ctx context.Context, id int64) (dto.NewsletterResp, error)
}

type QueueConsumer interface {
	Ack(ctx context.Context, deleteTag string) error
}

type PreviewSender interface {
	SendPreviews(ctx context.Context, batch []dto.PreviewEmail) error
}

type Renderer interface {
	Render(contents string) (string, error)
}

type RecipientConfigurator interface {
	GetPreviewRecipient() (string, error)
}

type WorkerCfg struct {
	Provider     NewsletterInfoProvider
	Queue        QueueConsumer
	Sender       PreviewSender
	Renderer     Renderer
	Configurator RecipientConfigurator
	PreviewChan  <-chan dto.PreviewMsg
}

type Worker struct {
	provider    NewsletterInfoProvider
	queue       QueueConsumer
	sender      PreviewSender
	renderer    Renderer
	recipient   string
	previewChan <-chan dto.PreviewMsg
}

func NewWorker(cfg WorkerCfg) (*Worker, error) {

	recipient, err := cfg.Configurator.GetPreviewRecipient()

	if err != nil {
		return nil, fmt.Errorf("failed to get preview recipient - %w", err)
	}

	return &Worker{
		provider:    cfg.Provider,
		queue:       cfg.Queue,
		sender:      cfg.Sender,
		renderer:    cfg.Renderer,
		recipient:   recipient,
		previewChan: cfg.PreviewChan,
	}, nil
}

func (w *Worker) failProcess(err error, job dto.PreviewJob) {
	slog.Error(err.Error(),
		"jobId", job.JobId,
		"newsletterId", job.NewsletterId)
}

// ProcessPreview renders the newsletter behind a preview job and mails
// it to the admin preview inbox. The message is only acked after the
// mail goes out, so failed jobs are redelivered by the broker.
func (w *Worker) ProcessPreview(ctx context.Context, msg dto.PreviewMsg) {

	job := msg.Payload

	newsletter, err := w.provider.GetNewsletter(ctx, job.NewsletterId)

	if err != nil {
		err = fmt.Errorf("failed to get newsletter - %w", err)
		w.failProcess(err, job)
		return
	}

	contents, err := w.renderer.Render(newsletter.Contents)

	if err != nil {
		err = fmt.Errorf("failed to render newsletter contents - %w", err)
		w.failProcess(err, job)
		return
	}

	previews := []dto.PreviewEmail{{
		Email:    w.recipient,
		Title:    fmt.Sprintf("[Preview] %s", newsletter.Title),
		Contents: contents,
		IsHtml:   true,
	}}

	if err := w.sender.SendPreviews(ctx, previews); err != nil {
		err = fmt.Errorf("failed to send preview email - %w", err)
		w.failProcess(err, job)
		return
	}

	if err := w.queue.Ack(ctx, msg.DeleteTag); err != nil {
		err = fmt.Errorf("failed to ack message - %w", err)
		w.failProcess(err, job)
		return
	}
}

func (w *Worker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case preview := <-w.previewChan:
			w.ProcessPreview(ctx, preview)
		}
	}
}
