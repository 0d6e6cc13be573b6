// internal/domain/repository/callback_repository.go
package repository

import (
	"context"
	"time"

	"trackdesk-service/internal/domain/entity"
)

// CallbackRepository defines persistence for callback requests.
type CallbackRepository interface {
	Insert(ctx context.Context, req *entity.CallbackRequest) error

	// FindRecentByPhone returns the newest request from the given phone number
	// created at or after the cutoff, or nil when there is none.
	FindRecentByPhone(ctx context.Context, phoneNumber string, since time.Time) (*entity.CallbackRequest, error)

	FindByID(ctx context.Context, id string) (*entity.CallbackRequest, error)

	// Update applies the allow-listed patch and returns the updated document.
	// When markCalled is set the call-attempt counter is incremented and the
	// last-attempt timestamp recorded in the same write.
	Update(ctx context.Context, id string, patch entity.CallbackUpdate, markCalled bool) (*entity.CallbackRequest, error)

	DeleteByID(ctx context.Context, id string) error

	// List returns one page sorted by priority rank desc, then createdAt desc,
	// together with the total number of matches.
	List(ctx context.Context, filter entity.CallbackFilter, page, limit int) ([]*entity.CallbackRequest, int64, error)

	// CountByStatus groups the filtered set by status.
	CountByStatus(ctx context.Context, filter entity.CallbackFilter) (map[string]int64, error)

	// CountByService and CountByPriority group the whole collection.
	CountByService(ctx context.Context) (map[string]int64, error)
	CountByPriority(ctx context.Context) (map[string]int64, error)
}
