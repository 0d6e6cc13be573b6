// internal/domain/repository/order_repository.go
package repository

import (
	"context"

	"trackdesk-service/internal/domain/entity"
)

// OrderRepository defines persistence for package orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
}
