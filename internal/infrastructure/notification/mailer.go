// Package notification sends transactional email over SMTP.
package notification

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	tradeapp "github.com/bhslighting/backend/internal/application/trade"
	"github.com/bhslighting/backend/internal/infrastructure/config"
)

// Ensure SMTPMailer implements the mailer port
var _ tradeapp.Mailer = (*SMTPMailer)(nil)

// SMTPMailer delivers HTML email through an SMTP relay
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer creates an SMTPMailer from the SMTP configuration
func NewSMTPMailer(cfg *config.SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// Send delivers an HTML message to a single recipient
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// NoopMailer drops messages, for deployments without an SMTP relay
type NoopMailer struct {
	logger *zap.Logger
}

// NewNoopMailer creates a NoopMailer
func NewNoopMailer(logger *zap.Logger) *NoopMailer {
	return &NoopMailer{logger: logger}
}

// Send logs the message instead of delivering it
func (m *NoopMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.logger.Info("smtp disabled, dropping mail",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// Ensure NoopMailer implements the mailer port
var _ tradeapp.Mailer = (*NoopMailer)(nil)
