package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"trackdesk-service/internal/domain/repository"
	"trackdesk-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer sends notification emails through the Gmail API. It is built
// once at startup, verified, and shared by all usecases.
type GmailMailer struct {
	gmailService *gmail.Service
	from         string
	logger       logger.Logger
}

// NewGmailMailer creates a new Gmail mailer
func NewGmailMailer(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (repository.Mailer, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailMailer{
		gmailService: service,
		from:         from,
		logger:       logger,
	}, nil
}

// Verify checks that the configured account is reachable before the service
// starts accepting traffic.
func (m *GmailMailer) Verify(ctx context.Context) error {
	profile, err := m.gmailService.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail verification failed: %w", err)
	}

	m.logger.Info("Gmail transport verified", "account", profile.EmailAddress)
	return nil
}

// Send delivers one HTML email.
func (m *GmailMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	raw := m.buildMessage(to, subject, htmlBody)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	_, err := m.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	m.logger.Info("Email sent", "to", to, "subject", subject)
	return nil
}

// buildMessage assembles an RFC 822 message with an HTML body.
func (m *GmailMailer) buildMessage(to, subject, htmlBody string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(htmlBody)
	return sb.String()
}
