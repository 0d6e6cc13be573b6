// internal/usecase/contact_service.go
package usecase

import (
	"context"
	"fmt"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/domain/repository"
	"trackdesk-service/pkg/logger"
	"trackdesk-service/pkg/metrics"
)

type contactNotifier interface {
	NotifyContact(ctx context.Context, contact *entity.Contact)
}

// SubmitContactInput is the validated contact form payload.
type SubmitContactInput struct {
	FullName     string
	PhoneNumber  string
	SelectedPlan string
	Message      string
}

// ContactService handles contact inquiries. No dedup and no lifecycle, just
// validated persistence plus the best-effort notification.
type ContactService struct {
	repo     repository.ContactRepository
	notifier contactNotifier
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepository, notifier contactNotifier, m *metrics.Metrics, logger logger.Logger) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Submit persists an inquiry and dispatches the sales notification without
// blocking the caller.
func (s *ContactService) Submit(ctx context.Context, input SubmitContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		FullName:     input.FullName,
		PhoneNumber:  input.PhoneNumber,
		SelectedPlan: input.SelectedPlan,
		Message:      input.Message,
	}

	if err := s.repo.Insert(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ContactsCreated.Inc()
	}
	s.logger.Info("Contact inquiry created", "contactId", contact.ID, "plan", contact.SelectedPlan)

	if s.notifier != nil {
		go func(contact entity.Contact) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			s.notifier.NotifyContact(notifyCtx, &contact)
		}(*contact)
	}

	return contact, nil
}

// Get returns a single contact inquiry.
func (s *ContactService) Get(ctx context.Context, id string) (*entity.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns one page of inquiries, newest first, plus the total count.
func (s *ContactService) List(ctx context.Context, page, limit int) ([]*entity.Contact, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	contacts, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []*entity.Contact{}
	}
	return contacts, total, nil
}

// ListByPlan returns all inquiries for one plan, newest first.
func (s *ContactService) ListByPlan(ctx context.Context, plan string) ([]*entity.Contact, error) {
	contacts, err := s.repo.ListByPlan(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts by plan: %w", err)
	}
	if contacts == nil {
		contacts = []*entity.Contact{}
	}
	return contacts, nil
}

// Delete removes a contact inquiry permanently.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
