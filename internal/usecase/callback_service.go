// internal/usecase/callback_service.go
package usecase

import (
	"context"
	"fmt"
	"time"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/domain/repository"
	"trackdesk-service/pkg/logger"
	"trackdesk-service/pkg/metrics"
)

// Repeat submissions from the same phone number are rejected inside this
// trailing window.
const dedupWindow = time.Hour

// Small local interface so tests can observe dispatches without a transport.
type callbackNotifier interface {
	NotifyCallback(ctx context.Context, req *entity.CallbackRequest, estimatedCallTime string)
}

// SubmitCallbackInput is the validated public form payload.
type SubmitCallbackInput struct {
	Name            string
	PhoneNumber     string
	SelectedService string
	Message         string
}

// CallbackReceipt is the public projection returned after a submission.
type CallbackReceipt struct {
	RequestID         string    `json:"requestId"`
	Name              string    `json:"name"`
	SelectedService   string    `json:"selectedService"`
	Status            string    `json:"status"`
	Priority          string    `json:"priority"`
	CreatedAt         time.Time `json:"createdAt"`
	EstimatedCallTime string    `json:"estimatedCallTime"`
}

// ListCallbacksQuery bundles the optional criteria and pagination inputs.
type ListCallbacksQuery struct {
	Filter entity.CallbackFilter
	Page   int
	Limit  int
}

// CallbackList is one page of requests plus the filtered status breakdown.
type CallbackList struct {
	Requests     []*entity.CallbackRequest `json:"requests"`
	Pagination   entity.Pagination         `json:"pagination"`
	StatusCounts map[string]int64          `json:"statusCounts"`
}

// CallbackService runs the intake and triage pipeline: dedup, classification,
// lifecycle updates, filtered retrieval and statistics.
type CallbackService struct {
	repo     repository.CallbackRepository
	notifier callbackNotifier
	metrics  *metrics.Metrics
	logger   logger.Logger
	now      func() time.Time
}

// NewCallbackService creates a new callback service
func NewCallbackService(repo repository.CallbackRepository, notifier callbackNotifier, m *metrics.Metrics, logger logger.Logger) *CallbackService {
	return &CallbackService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit runs the duplicate guard and the priority classifier, persists the
// request and dispatches the sales notification without blocking the caller.
func (s *CallbackService) Submit(ctx context.Context, input SubmitCallbackInput) (*CallbackReceipt, error) {
	now := s.now()

	// Best-effort duplicate guard: a concurrent identical submission can
	// still slip through between the check and the insert.
	recent, err := s.repo.FindRecentByPhone(ctx, input.PhoneNumber, now.Add(-dedupWindow))
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if recent != nil {
		if s.metrics != nil {
			s.metrics.DuplicatesRejected.Inc()
		}
		return nil, entity.ErrDuplicateRequest
	}

	priority := ClassifyPriority(input.SelectedService, input.Message)

	req := &entity.CallbackRequest{
		Name:            input.Name,
		PhoneNumber:     input.PhoneNumber,
		SelectedService: input.SelectedService,
		Message:         input.Message,
		Status:          entity.StatusPending,
		Priority:        priority,
		CallAttempts:    0,
	}

	if err := s.repo.Insert(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to save callback request: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CallbacksCreated.Inc()
	}
	s.logger.Info("Callback request created",
		"requestId", req.ID,
		"service", req.SelectedService,
		"priority", req.Priority)

	estimated := EstimatedCallTime(req.Priority)

	// Fire-and-forget: the response does not wait for the email, and a send
	// failure never changes the submission outcome.
	if s.notifier != nil {
		go func(req entity.CallbackRequest) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			s.notifier.NotifyCallback(notifyCtx, &req, estimated)
		}(*req)
	}

	return &CallbackReceipt{
		RequestID:         req.ID,
		Name:              req.Name,
		SelectedService:   req.SelectedService,
		Status:            req.Status,
		Priority:          req.Priority,
		CreatedAt:         req.CreatedAt,
		EstimatedCallTime: estimated,
	}, nil
}

// Get returns a single callback request.
func (s *CallbackService) Get(ctx context.Context, id string) (*entity.CallbackRequest, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies an admin patch. A transition to "called" additionally bumps
// the call-attempt counter and records the attempt time.
func (s *CallbackService) Update(ctx context.Context, id string, patch entity.CallbackUpdate) (*entity.CallbackRequest, error) {
	markCalled := patch.Status != nil && *patch.Status == entity.StatusCalled
	return s.repo.Update(ctx, id, patch, markCalled)
}

// Delete removes a callback request permanently.
func (s *CallbackService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// List returns a filtered, paginated page plus a status breakdown computed
// over the same filtered set.
func (s *CallbackService) List(ctx context.Context, query ListCallbacksQuery) (*CallbackList, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	requests, total, err := s.repo.List(ctx, query.Filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list callback requests: %w", err)
	}
	if requests == nil {
		requests = []*entity.CallbackRequest{}
	}

	statusCounts, err := s.repo.CountByStatus(ctx, query.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count statuses: %w", err)
	}

	return &CallbackList{
		Requests:     requests,
		Pagination:   newPagination(page, limit, total),
		StatusCounts: statusCounts,
	}, nil
}

// Stats computes the dashboard statistics, independent of any list filter.
func (s *CallbackService) Stats(ctx context.Context) (*entity.CallbackStats, error) {
	startOfDay, startOfWeek, startOfMonth := statsWindows(s.now())

	today, err := s.repo.CountByStatus(ctx, entity.CallbackFilter{FromDate: &startOfDay})
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily stats: %w", err)
	}
	thisWeek, err := s.repo.CountByStatus(ctx, entity.CallbackFilter{FromDate: &startOfWeek})
	if err != nil {
		return nil, fmt.Errorf("failed to compute weekly stats: %w", err)
	}
	thisMonth, err := s.repo.CountByStatus(ctx, entity.CallbackFilter{FromDate: &startOfMonth})
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly stats: %w", err)
	}
	byService, err := s.repo.CountByService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute service stats: %w", err)
	}
	byPriority, err := s.repo.CountByPriority(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute priority stats: %w", err)
	}

	return &entity.CallbackStats{
		Today:      today,
		ThisWeek:   thisWeek,
		ThisMonth:  thisMonth,
		ByService:  byService,
		ByPriority: byPriority,
	}, nil
}

// newPagination computes the page descriptor with ceiling division.
func newPagination(page, limit int, total int64) entity.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return entity.Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalRequests: total,
		HasNext:       page < totalPages,
		HasPrev:       page > 1,
	}
}

// statsWindows returns the cutoffs for the dashboard windows: local midnight,
// the trailing seven days, and the first of the current calendar month.
func statsWindows(now time.Time) (startOfDay, startOfWeek, startOfMonth time.Time) {
	startOfDay = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek = now.Add(-7 * 24 * time.Hour)
	startOfMonth = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return
}
