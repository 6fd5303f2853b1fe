// Package mail delivers transactional email.
//
// Production delivery goes through Resend; LogMailer stands in when no API
// key is configured so local environments still exercise every flow.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/config"
)

// Message is a single outbound email.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

// NewResendMailer builds a mailer from config.
func NewResendMailer(cfg config.MailConfig, logger *zap.Logger) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   cfg.From,
		logger: logger,
	}
}

// Send delivers msg.
func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send email %q: %w", msg.Subject, err)
	}
	m.logger.Debug("email sent", zap.String("id", sent.Id), zap.Strings("to", msg.To))
	return nil
}

// LogMailer records messages in the log instead of sending them.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer builds a log-only mailer.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs msg.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("email not sent; RESEND_API_KEY unset",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}

// New picks the Resend mailer when an API key is configured.
func New(cfg config.MailConfig, logger *zap.Logger) Mailer {
	if cfg.ResendAPIKey == "" {
		return NewLogMailer(logger)
	}
	return NewResendMailer(cfg, logger)
}
