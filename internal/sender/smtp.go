package sender

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/pitchside/newsletter-service/internal/dto"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMTPConfigurator interface {
	GetSMTPConfig() (SMTPConfig, error)
}

type SMTP struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{
		cfg: cfg,
	}
}

func (s *SMTP) SendPreviews(ctx context.Context, batch []dto.PreviewEmail) error {

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	for _, preview := range batch {
		contentType := "text/plain"

		if preview.IsHtml {
			contentType = "text/html"
		}

		msg := fmt.Appendf(nil, "From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"Content-Type: %s; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
			s.cfg.From,
			preview.Email,
			preview.Title,
			contentType,
			preview.Contents)

		err := smtp.SendMail(addr, auth, s.cfg.From, []string{preview.Email}, msg)

		if err != nil {
			return fmt.Errorf("failed to send email to %s: %w", preview.Email, err)
		}
	}

	return nil
}
