package unit_test

import (
	"context"
	"errors"
	"testing"

	di "github.com/pitchside/newsletter-service/internal/di"
	"github.com/pitchside/newsletter-service/internal/dto"
	config_test "github.com/pitchside/newsletter-service/internal/testutils/config"
	"go.uber.org/mock/gomock"
)

func TestWorker(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	previewChan := make(chan dto.PreviewMsg)
	defer close(previewChan)

	ctx := context.Background()
	scenario, err := di.InjectMockedWorkerScenario(ctx, controller, previewChan)

	if err != nil {
		t.Fatalf("failed to create mocked worker scenario - %v", err)
	}

	newsletter := dto.NewsletterResp{
		Id:        7,
		Title:     "Matchday Digest",
		Topic:     "matchday",
		Contents:  "# Final score\n\nA dramatic stoppage time winner.",
		Status:    dto.InReview,
		CreatedBy: "editor-1",
	}

	rendered := "<h1>Final score</h1><p>A dramatic stoppage time winner.</p>"

	previewMsg := dto.PreviewMsg{
		MessageId: "message-1",
		DeleteTag: "123",
		Payload: dto.PreviewJob{
			JobId:        "job-1",
			NewsletterId: newsletter.Id,
			Title:        newsletter.Title,
			Topic:        newsletter.Topic,
			RequestedBy:  testUserId,
			RequestedAt:  "2025-03-01T10:00:00Z",
		},
	}

	tests := []struct {
		name      string
		msg       dto.PreviewMsg
		setupMock func(msg dto.PreviewMsg)
	}{
		{
			name: "successfully renders and mails a preview",
			msg:  previewMsg,
			setupMock: func(msg dto.PreviewMsg) {
				scenario.
					Provider.
					EXPECT().
					GetNewsletter(gomock.Any(), msg.Payload.NewsletterId).
					Return(newsletter, nil).
					Times(1)

				scenario.
					Renderer.
					EXPECT().
					Render(newsletter.Contents).
					Return(rendered, nil).
					Times(1)

				scenario.
					Sender.
					EXPECT().
					SendPreviews(gomock.Any(), []dto.PreviewEmail{{
						Email:    config_test.TestPreviewRecipient,
						Title:    "[Preview] Matchday Digest",
						Contents: rendered,
						IsHtml:   true,
					}}).
					Return(nil).
					Times(1)

				scenario.
					Queue.
					EXPECT().
					Ack(gomock.Any(), msg.DeleteTag).
					Return(nil).
					Times(1)
			},
		},
		{
			name: "does not ack when the newsletter lookup fails",
			msg:  previewMsg,
			setupMock: func(msg dto.PreviewMsg) {
				scenario.
					Provider.
					EXPECT().
					GetNewsletter(gomock.Any(), msg.Payload.NewsletterId).
					Return(dto.NewsletterResp{}, errors.New("newsletter service down")).
					Times(1)
			},
		},
		{
			name: "does not ack when rendering fails",
			msg:  previewMsg,
			setupMock: func(msg dto.PreviewMsg) {
				scenario.
					Provider.
					EXPECT().
					GetNewsletter(gomock.Any(), msg.Payload.NewsletterId).
					Return(newsletter, nil).
					Times(1)

				scenario.
					Renderer.
					EXPECT().
					Render(newsletter.Contents).
					Return("", errors.New("bad markdown")).
					Times(1)
			},
		},
		{
			name: "does not ack when the preview email fails",
			msg:  previewMsg,
			setupMock: func(msg dto.PreviewMsg) {
				scenario.
					Provider.
					EXPECT().
					GetNewsletter(gomock.Any(), msg.Payload.NewsletterId).
					Return(newsletter, nil).
					Times(1)

				scenario.
					Renderer.
					EXPECT().
					Render(newsletter.Contents).
					Return(rendered, nil).
					Times(1)

				scenario.
					Sender.
					EXPECT().
					SendPreviews(gomock.Any(), gomock.Any()).
					Return(errors.New("smtp refused")).
					Times(1)
			},
		},
		{
			name: "leaves the message queued when the ack fails",
			msg:  previewMsg,
			setupMock: func(msg dto.PreviewMsg) {
				scenario.
					Provider.
					EXPECT().
					GetNewsletter(gomock.Any(), msg.Payload.NewsletterId).
					Return(newsletter, nil).
					Times(1)

				scenario.
					Renderer.
					EXPECT().
					Render(newsletter.Contents).
					Return(rendered, nil).
					Times(1)

				scenario.
					Sender.
					EXPECT().
					SendPreviews(gomock.Any(), gomock.Any()).
					Return(nil).
					Times(1)

				scenario.
					Queue.
					EXPECT().
					Ack(gomock.Any(), msg.DeleteTag).
					Return(errors.New("channel closed")).
					Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock(tt.msg)
			scenario.Worker.ProcessPreview(ctx, tt.msg)
		})
	}
}
