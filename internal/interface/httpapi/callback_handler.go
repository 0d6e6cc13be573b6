// internal/interface/httpapi/callback_handler.go
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/usecase"
	"trackdesk-service/pkg/logger"
	"trackdesk-service/pkg/response"
	"trackdesk-service/pkg/validator"
)

// CallbackService is the slice of the usecase layer this handler needs.
type CallbackService interface {
	Submit(ctx context.Context, input usecase.SubmitCallbackInput) (*usecase.CallbackReceipt, error)
	Get(ctx context.Context, id string) (*entity.CallbackRequest, error)
	Update(ctx context.Context, id string, patch entity.CallbackUpdate) (*entity.CallbackRequest, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query usecase.ListCallbacksQuery) (*usecase.CallbackList, error)
	Stats(ctx context.Context) (*entity.CallbackStats, error)
}

// CallbackHandler serves the /api/callback routes.
type CallbackHandler struct {
	service CallbackService
	logger  logger.Logger
	debug   bool
}

// NewCallbackHandler creates a new callback handler. debug controls whether
// internal error detail is included in 500 responses.
func NewCallbackHandler(service CallbackService, logger logger.Logger, debug bool) *CallbackHandler {
	return &CallbackHandler{
		service: service,
		logger:  logger,
		debug:   debug,
	}
}

type CreateCallbackRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100,alphaspace"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,intlphone"`
	SelectedService string `json:"selectedService" validate:"required,oneof='Car Tracking' 'Bike Tracking' 'Fleet Management'"`
	Message         string `json:"message" validate:"omitempty,max=1000"`
}

// UpdateCallbackRequest carries the admin-updatable fields. Unknown JSON keys
// are dropped during binding, which keeps the permissive update contract.
type UpdateCallbackRequest struct {
	Status            *string `json:"status" validate:"omitempty,oneof=pending called completed cancelled"`
	Priority          *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	AssignedTo        *string `json:"assignedTo" validate:"omitempty,max=100"`
	Notes             *string `json:"notes" validate:"omitempty,max=2000"`
	PreferredCallTime *string `json:"preferredCallTime" validate:"omitempty,max=100"`
}

// Create handles POST /api/callback.
func (h *CallbackHandler) Create(c echo.Context) error {
	var req CreateCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	receipt, err := h.service.Submit(c.Request().Context(), usecase.SubmitCallbackInput{
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
		SelectedService: req.SelectedService,
		Message:         req.Message,
	})
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateRequest) {
			return response.Conflict(c, "A callback request from this number was already submitted recently. Please wait before submitting another request.")
		}
		h.logger.Error("Failed to create callback request", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Created(c, "Callback request submitted successfully. We will contact you soon!", receipt)
}

// List handles GET /api/callback.
func (h *CallbackHandler) List(c echo.Context) error {
	query, err := parseListQuery(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.service.List(c.Request().Context(), query)
	if err != nil {
		h.logger.Error("Failed to list callback requests", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, "Callback requests retrieved successfully", result)
}

// Get handles GET /api/callback/:id.
func (h *CallbackHandler) Get(c echo.Context) error {
	req, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return response.NotFound(c, "Callback request not found")
		}
		h.logger.Error("Failed to fetch callback request", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, "Callback request retrieved successfully", req)
}

// Update handles PUT /api/callback/:id.
func (h *CallbackHandler) Update(c echo.Context) error {
	var req UpdateCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	patch := entity.CallbackUpdate{
		Status:            req.Status,
		Priority:          req.Priority,
		AssignedTo:        req.AssignedTo,
		Notes:             req.Notes,
		PreferredCallTime: req.PreferredCallTime,
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return response.NotFound(c, "Callback request not found")
		}
		h.logger.Error("Failed to update callback request", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, "Callback request updated successfully", updated)
}

// Delete handles DELETE /api/callback/:id.
func (h *CallbackHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return response.NotFound(c, "Callback request not found")
		}
		h.logger.Error("Failed to delete callback request", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, "Callback request deleted successfully", nil)
}

// Stats handles GET /api/callback/stats.
func (h *CallbackHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to compute callback stats", "error", err)
		return response.InternalServerError(c, err, h.debug)
	}

	return response.Ok(c, "Callback statistics retrieved successfully", stats)
}

var (
	validStatuses   = map[string]bool{"pending": true, "called": true, "completed": true, "cancelled": true}
	validPriorities = map[string]bool{"low": true, "medium": true, "high": true}
	validServices   = map[string]bool{
		entity.ServiceCarTracking:     true,
		entity.ServiceBikeTracking:    true,
		entity.ServiceFleetManagement: true,
	}
)

func parseListQuery(c echo.Context) (usecase.ListCallbacksQuery, error) {
	query := usecase.ListCallbacksQuery{Page: 1, Limit: 10}

	if pageStr := c.QueryParam("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return query, fmt.Errorf("page must be a positive integer")
		}
		query.Page = page
	}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 100 {
			return query, fmt.Errorf("limit must be between 1 and 100")
		}
		query.Limit = limit
	}

	if status := c.QueryParam("status"); status != "" {
		if !validStatuses[status] {
			return query, fmt.Errorf("invalid status filter")
		}
		query.Filter.Status = status
	}
	if priority := c.QueryParam("priority"); priority != "" {
		if !validPriorities[priority] {
			return query, fmt.Errorf("invalid priority filter")
		}
		query.Filter.Priority = priority
	}
	if service := c.QueryParam("service"); service != "" {
		if !validServices[service] {
			return query, fmt.Errorf("invalid service filter")
		}
		query.Filter.Service = service
	}
	query.Filter.AssignedTo = c.QueryParam("assignedTo")

	if fromStr := c.QueryParam("fromDate"); fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			return query, fmt.Errorf("invalid fromDate")
		}
		query.Filter.FromDate = &from
	}
	if toStr := c.QueryParam("toDate"); toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			return query, fmt.Errorf("invalid toDate")
		}
		query.Filter.ToDate = &to
	}

	return query, nil
}

// parseDate accepts either a full RFC 3339 timestamp or a bare date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
