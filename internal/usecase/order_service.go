// internal/usecase/order_service.go
package usecase

import (
	"context"
	"fmt"
	"time"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/domain/repository"
	"trackdesk-service/pkg/logger"
	"trackdesk-service/pkg/metrics"
	"trackdesk-service/pkg/utils"
)

type orderNotifier interface {
	NotifyOrder(ctx context.Context, order *entity.Order)
}

// PlaceOrderInput is the validated order form payload.
type PlaceOrderInput struct {
	PhoneNumber     string
	Message         string
	SelectedPackage string
}

// OrderService places package orders: it snapshots the catalog entry into the
// order and stamps it with a generated contract number.
type OrderService struct {
	repo     repository.OrderRepository
	catalog  repository.PackageRepository
	notifier orderNotifier
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository, catalog repository.PackageRepository, notifier orderNotifier, m *metrics.Metrics, logger logger.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Place resolves the package tier, persists the order and dispatches the
// confirmation email without blocking the caller.
func (s *OrderService) Place(ctx context.Context, input PlaceOrderInput) (*entity.Order, error) {
	details, err := s.catalog.GetByTier(ctx, input.SelectedPackage)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve package %q: %w", input.SelectedPackage, err)
	}

	order := &entity.Order{
		PhoneNumber:     input.PhoneNumber,
		Message:         input.Message,
		SelectedPackage: input.SelectedPackage,
		PackageDetails:  *details,
		OrderDate:       time.Now(),
		Status:          entity.OrderPending,
		ContractNumber:  utils.GenerateContractNumber(),
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if s.metrics != nil {
		s.metrics.OrdersCreated.Inc()
	}
	s.logger.Info("Order created",
		"orderId", order.ID,
		"contractNumber", order.ContractNumber,
		"package", order.SelectedPackage)

	if s.notifier != nil {
		go func(order entity.Order) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			s.notifier.NotifyOrder(notifyCtx, &order)
		}(*order)
	}

	return order, nil
}

// Get returns a single order.
func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []*entity.Order{}
	}
	return orders, nil
}
