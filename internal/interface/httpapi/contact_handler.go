// internal/interface/httpapi/contact_handler.go
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/usecase"
	"trackdesk-service/pkg/logger"
	"trackdesk-service/pkg/response"
	"trackdesk-service/pkg/validator"
)

// ContactService is the slice of the usecase layer this handler needs.
type ContactService interface {
	Submit(ctx context.Context, input usecase.SubmitContactInput) (*entity.Contact, error)
	Get(ctx context.Context, id string) (*entity.Contact, error)
	List(ctx context.Context, page, limit int) ([]*entity.Contact, int64, error)
	ListByPlan(ctx context.Context, plan string) ([]*entity.Contact, error)
	Delete(ctx context.Context, id string) error
}

// ContactHandler serves the /api/package routes.
type ContactHandler struct {
	service ContactService
	logger  logger.Logger
	debug   bool
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service ContactService, logger logger.Logger, debug bool) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger,
		debug:   debug,
	}
}

type CreateContactRequest struct {
	FullName     string `json:"fullName" validate:"required,min=2,max=100,alphaspace"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,intlphone"`
	SelectedPlan string `json:"selectedPlan" validate:"required,oneof='Car Tracking' 'Bike Tracking' 'Fleet Management'"`
	Message      string `json:"message" validate:"omitempty,max=1000"`
}

type contactPagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalContacts int64 `json:"totalContacts"`
	HasNext       bool  `json:"hasNext"`
	HasPrev       bool  `json:"hasPrev"`
}

// Create handles POST /api/package.
func (h *ContactHandler) Create(c echo.Context) error {
	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	contact, err := h.service.Submit(c.Request().Context(), usecase.SubmitContactInput{
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		SelectedPlan: req.SelectedPlan,
		Message:      req.Message,
	})
	if err != nil {
		h.logger.Error("Failed to create contact", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Created(c, "Contact inquiry submitted successfully", map[string]any{
		"id":           contact.ID,
		"fullName":     contact.FullName,
		"selectedPlan": contact.SelectedPlan,
		"createdAt":    contact.CreatedAt,
	})
}

// List handles GET /api/package.
func (h *ContactHandler) List(c echo.Context) error {
	page, limit, err := parsePagination(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	contacts, total, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		h.logger.Error("Failed to list contacts", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return response.Ok(c, "Contacts retrieved successfully", map[string]any{
		"contacts": contacts,
		"pagination": contactPagination{
			CurrentPage:   page,
			TotalPages:    totalPages,
			TotalContacts: total,
			HasNext:       page < totalPages,
			HasPrev:       page > 1,
		},
	})
}

// Get handles GET /api/package/:id.
func (h *ContactHandler) Get(c echo.Context) error {
	contact, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return response.NotFound(c, "Contact not found")
		}
		h.logger.Error("Failed to fetch contact", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, "Contact retrieved successfully", contact)
}

// ListByPlan handles GET /api/package/plan/:plan.
func (h *ContactHandler) ListByPlan(c echo.Context) error {
	plan := c.Param("plan")
	if !validServices[plan] {
		return response.BadRequest(c, "Invalid plan type")
	}

	contacts, err := h.service.ListByPlan(c.Request().Context(), plan)
	if err != nil {
		h.logger.Error("Failed to list contacts by plan", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, fmt.Sprintf("Contacts for %s retrieved successfully", plan), map[string]any{
		"plan":     plan,
		"count":    len(contacts),
		"contacts": contacts,
	})
}

// Delete handles DELETE /api/package/:id.
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return response.NotFound(c, "Contact not found")
		}
		h.logger.Error("Failed to delete contact", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, "Contact deleted successfully", nil)
}

func parsePagination(c echo.Context) (int, int, error) {
	page := 1
	limit := 10

	if pageStr := c.QueryParam("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return 0, 0, fmt.Errorf("page must be a positive integer")
		}
		page = p
	}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > 100 {
			return 0, 0, fmt.Errorf("limit must be between 1 and 100")
		}
		limit = l
	}

	return page, limit, nil
}
