// internal/interface/httpapi/order_handler.go
package httpapi

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/usecase"
	"trackdesk-service/pkg/logger"
	"trackdesk-service/pkg/response"
	"trackdesk-service/pkg/validator"
)

// OrderService is the slice of the usecase layer this handler needs.
type OrderService interface {
	Place(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
}

// OrderHandler serves the /api/order routes.
type OrderHandler struct {
	service OrderService
	logger  logger.Logger
	debug   bool
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service OrderService, logger logger.Logger, debug bool) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
		debug:   debug,
	}
}

type CreateOrderRequest struct {
	PhoneNumber     string `json:"phoneNumber" validate:"required,pkphone"`
	Message         string `json:"message" validate:"required,max=500"`
	SelectedPackage string `json:"selectedPackage" validate:"required,oneof=basic standard premium"`
}

// Create handles POST /api/order.
func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	order, err := h.service.Place(c.Request().Context(), usecase.PlaceOrderInput{
		PhoneNumber:     req.PhoneNumber,
		Message:         req.Message,
		SelectedPackage: req.SelectedPackage,
	})
	if err != nil {
		h.logger.Error("Failed to create order", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Created(c, "Order created successfully", map[string]any{
		"orderId":        order.ID,
		"contractNumber": order.ContractNumber,
		"packageName":    order.PackageDetails.Name,
		"price":          order.PackageDetails.Price,
	})
}

// List handles GET /api/order/orders.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list orders", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, "Orders retrieved successfully", orders)
}

// Get handles GET /api/order/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return response.NotFound(c, "Order not found")
		}
		h.logger.Error("Failed to fetch order", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, "Order retrieved successfully", order)
}
