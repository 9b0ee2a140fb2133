package di

import (
	cfg "github.com/pitchside/newsletter-service/internal/config"
	"github.com/pitchside/newsletter-service/internal/consumers"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/sender"
)

func ProvideConsumerQueue(c *cfg.EnvConfig) (consumers.RabbitMQQueue, error) {
	return c.GetQueue()
}

func ProvideSQSQueueCfg(c consumers.SQSQueueConfigurator) (consumers.SQSQueueCfg, error) {
	return c.GetSQSQueueCfg()
}

func ProvideSMTPConfig(c sender.SMTPConfigurator) (sender.SMTPConfig, error) {
	return c.GetSMTPConfig()
}

// ProvidePreviewSink and ProvidePreviewSource expose the directional
// views of the preview channel shared by a consumer and the worker
// draining it.
func ProvidePreviewSink(previewChan chan dto.PreviewMsg) chan<- dto.PreviewMsg {
	return previewChan
}

func ProvidePreviewSource(previewChan chan dto.PreviewMsg) <-chan dto.PreviewMsg {
	return previewChan
}
