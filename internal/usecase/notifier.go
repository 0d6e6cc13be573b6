// internal/usecase/notifier.go
package usecase

import (
	"context"
	"time"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/domain/repository"
	"trackdesk-service/pkg/logger"
	"trackdesk-service/pkg/metrics"
	"trackdesk-service/templates"
)

// How long a fire-and-forget email dispatch may take before it is abandoned.
const notifyTimeout = 30 * time.Second

// EmailNotifier delivers sales-team notifications. Every send is best-effort:
// failures are counted and logged, never surfaced to the caller.
type EmailNotifier struct {
	mailer         repository.Mailer
	salesTeamEmail string
	metrics        *metrics.Metrics
	logger         logger.Logger
}

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(mailer repository.Mailer, salesTeamEmail string, m *metrics.Metrics, logger logger.Logger) *EmailNotifier {
	return &EmailNotifier{
		mailer:         mailer,
		salesTeamEmail: salesTeamEmail,
		metrics:        m,
		logger:         logger,
	}
}

// NotifyCallback alerts the sales team about a new callback request.
func (n *EmailNotifier) NotifyCallback(ctx context.Context, req *entity.CallbackRequest, estimatedCallTime string) {
	subject, body := templates.CallbackNotification(req, estimatedCallTime)
	n.send(ctx, subject, body)
}

// NotifyContact alerts the sales team about a new contact inquiry. The
// customer-facing confirmation is skipped until the form collects an email
// address; the inquiry only carries a phone number.
func (n *EmailNotifier) NotifyContact(ctx context.Context, contact *entity.Contact) {
	subject, body := templates.ContactNotification(contact)
	n.send(ctx, subject, body)

	n.logger.Debug("Customer confirmation skipped, no email address on file",
		"contactId", contact.ID,
		"phoneNumber", contact.PhoneNumber)
}

// NotifyOrder alerts the sales team about a new package order.
func (n *EmailNotifier) NotifyOrder(ctx context.Context, order *entity.Order) {
	subject, body := templates.OrderConfirmation(order)
	n.send(ctx, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, subject, body string) {
	if err := n.mailer.Send(ctx, n.salesTeamEmail, subject, body); err != nil {
		n.logger.Error("Email notification failed", "subject", subject, "error", err)
		if n.metrics != nil {
			n.metrics.EmailFailures.Inc()
		}
		return
	}
	if n.metrics != nil {
		n.metrics.EmailsSent.Inc()
	}
}
