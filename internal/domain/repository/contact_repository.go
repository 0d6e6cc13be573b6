// internal/domain/repository/contact_repository.go
package repository

import (
	"context"

	"trackdesk-service/internal/domain/entity"
)

// ContactRepository defines persistence for contact inquiries.
type ContactRepository interface {
	Insert(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	List(ctx context.Context, page, limit int) ([]*entity.Contact, int64, error)
	ListByPlan(ctx context.Context, plan string) ([]*entity.Contact, error)
	DeleteByID(ctx context.Context, id string) error
}
