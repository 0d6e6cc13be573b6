// internal/usecase/contact_service_test.go
package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/pkg/logger"
)

type fakeContactRepo struct {
	inserted  *entity.Contact
	contacts  []*entity.Contact
	listPage  int
	listLimit int
}

func (f *fakeContactRepo) Insert(_ context.Context, contact *entity.Contact) error {
	contact.ID = "contact-id"
	contact.CreatedAt = time.Now()
	f.inserted = contact
	return nil
}

func (f *fakeContactRepo) FindByID(_ context.Context, id string) (*entity.Contact, error) {
	if f.inserted != nil && f.inserted.ID == id {
		return f.inserted, nil
	}
	return nil, entity.ErrNotFound
}

func (f *fakeContactRepo) List(_ context.Context, page, limit int) ([]*entity.Contact, int64, error) {
	f.listPage = page
	f.listLimit = limit
	return f.contacts, int64(len(f.contacts)), nil
}

func (f *fakeContactRepo) ListByPlan(_ context.Context, _ string) ([]*entity.Contact, error) {
	return f.contacts, nil
}

func (f *fakeContactRepo) DeleteByID(_ context.Context, _ string) error { return nil }

type fakeContactNotifier struct {
	notified chan *entity.Contact
}

func (f *fakeContactNotifier) NotifyContact(_ context.Context, contact *entity.Contact) {
	f.notified <- contact
}

func TestContactSubmitNotifies(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeContactNotifier{notified: make(chan *entity.Contact, 1)}
	svc := NewContactService(repo, notifier, nil, logger.NewNop())

	contact, err := svc.Submit(context.Background(), SubmitContactInput{
		FullName:     "Sara Ahmed",
		PhoneNumber:  "+923009998877",
		SelectedPlan: entity.ServiceCarTracking,
	})
	require.NoError(t, err)
	assert.Equal(t, "contact-id", contact.ID)

	select {
	case sent := <-notifier.notified:
		assert.Equal(t, "contact-id", sent.ID)
	case <-time.After(time.Second):
		t.Fatal("sales notification was not dispatched")
	}
}

func TestContactListDefaultsPaging(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, nil, nil, logger.NewNop())

	contacts, _, err := svc.List(context.Background(), 0, -5)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listPage)
	assert.Equal(t, 10, repo.listLimit)
	assert.NotNil(t, contacts)
}
